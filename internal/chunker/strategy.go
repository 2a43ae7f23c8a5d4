package chunker

import (
	"fmt"

	"github.com/splitkit/splitkit/pkg/types"
)

// Segmenter is one chunking algorithm. Implementations share a single
// contract: consume the raw text plus configuration and produce an ordered
// sequence of non-empty, position-tracked chunks. Implementations keep no
// state between calls.
type Segmenter interface {
	// Name returns the strategy discriminant this segmenter implements
	Name() types.Strategy

	// Segment splits text into ordered chunks. text is assumed non-blank;
	// cfg is assumed validated.
	Segment(text string, cfg types.ChunkConfig) []types.TextChunk
}

// NewSegmenter returns the segmenter for a strategy discriminant
func NewSegmenter(s types.Strategy) (Segmenter, error) {
	switch s {
	case types.StrategyFixed:
		return &fixedSegmenter{}, nil
	case types.StrategySentence:
		return &sentenceSegmenter{}, nil
	case types.StrategyParagraph:
		return &paragraphSegmenter{}, nil
	case types.StrategyRecursive:
		return &recursiveSegmenter{}, nil
	case types.StrategySemantic:
		return &semanticSegmenter{}, nil
	default:
		return nil, fmt.Errorf("%w: %w %q", types.ErrInvalidConfig, types.ErrUnknownStrategy, string(s))
	}
}

// accumulate emits one chunk per pre-sized group, tracking approximate
// offsets by adding up flushed group lengths plus the join width. Shared by
// the sentence and paragraph segmenters.
func accumulate(strategy types.Strategy, groups []string, sepWidth int) []types.TextChunk {
	chunks := make([]types.TextChunk, 0, len(groups))
	offset := 0
	for _, g := range groups {
		end := offset + charLen(g)
		chunks = append(chunks, types.NewTextChunk(strategy, len(chunks)+1, g, offset, end))
		offset = end + sepWidth
	}
	return chunks
}
