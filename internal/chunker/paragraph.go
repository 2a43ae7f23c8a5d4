package chunker

import "github.com/splitkit/splitkit/pkg/types"

// paragraphSegmenter greedily packs whole paragraphs into chunks, joining
// paragraphs within a chunk by a blank line. Oversized single paragraphs are
// accepted whole, as with sentences.
type paragraphSegmenter struct{}

func (p *paragraphSegmenter) Name() types.Strategy { return types.StrategyParagraph }

func (p *paragraphSegmenter) Segment(text string, cfg types.ChunkConfig) []types.TextChunk {
	paragraphs := splitParagraphs(text)
	groups := groupBySize(paragraphs, cfg.ChunkSize, "\n\n")
	return accumulate(types.StrategyParagraph, groups, paragraphSepWidth)
}
