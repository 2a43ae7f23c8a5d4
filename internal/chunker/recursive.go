package chunker

import (
	"strings"

	"github.com/splitkit/splitkit/pkg/types"
)

// recursiveSegmenter divides a span hierarchically: paragraphs first, then
// greedy sentence groups within a paragraph, then whitespace-delimited words
// within a single oversized sentence. Word accumulation is the guaranteed
// base case that bounds recursion depth; an individual word longer than
// ChunkSize is accepted whole.
//
// Offsets are accumulated from consumed span lengths plus assumed separator
// widths rather than re-located in the original document, so they can drift
// when original separators are wider.
type recursiveSegmenter struct{}

func (r *recursiveSegmenter) Name() types.Strategy { return types.StrategyRecursive }

func (r *recursiveSegmenter) Segment(text string, cfg types.ChunkConfig) []types.TextChunk {
	var chunks []types.TextChunk
	r.split(text, 0, cfg.ChunkSize, &chunks)
	return chunks
}

func (r *recursiveSegmenter) split(span string, offset, chunkSize int, out *[]types.TextChunk) {
	if charLen(span) <= chunkSize {
		content := strings.TrimSpace(span)
		if content == "" {
			return
		}
		r.emit(content, offset, out)
		return
	}

	paragraphs := splitParagraphs(span)
	if len(paragraphs) > 1 {
		pos := offset
		for _, p := range paragraphs {
			r.split(p, pos, chunkSize, out)
			pos += charLen(p) + paragraphSepWidth
		}
		return
	}

	sentences := splitSentences(span)
	if len(sentences) > 1 {
		pos := offset
		for _, g := range groupBySize(sentences, chunkSize, " ") {
			r.split(g, pos, chunkSize, out)
			pos += charLen(g) + sentenceSepWidth
		}
		return
	}

	// Single sentence with no internal boundaries: fall back to words
	pos := offset
	for _, g := range groupBySize(strings.Fields(span), chunkSize, " ") {
		r.emit(g, pos, out)
		pos += charLen(g) + wordSepWidth
	}
}

func (r *recursiveSegmenter) emit(content string, offset int, out *[]types.TextChunk) {
	end := offset + charLen(content)
	*out = append(*out, types.NewTextChunk(types.StrategyRecursive, len(*out)+1, content, offset, end))
}
