package chunker

import "github.com/splitkit/splitkit/pkg/types"

// sentenceSegmenter greedily packs whole sentences into chunks. A chunk
// boundary never falls inside a sentence; a single sentence longer than
// ChunkSize is emitted as an oversized chunk on its own.
type sentenceSegmenter struct{}

func (s *sentenceSegmenter) Name() types.Strategy { return types.StrategySentence }

func (s *sentenceSegmenter) Segment(text string, cfg types.ChunkConfig) []types.TextChunk {
	sentences := splitSentences(text)
	groups := groupBySize(sentences, cfg.ChunkSize, " ")
	return accumulate(types.StrategySentence, groups, sentenceSepWidth)
}
