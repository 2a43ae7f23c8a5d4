package chunker

import (
	"strings"

	"github.com/splitkit/splitkit/pkg/types"
)

// fixedSegmenter slides a window of ChunkSize characters across the text,
// advancing by ChunkSize-Overlap each step. The final window may be shorter;
// every other window is exactly ChunkSize characters before trimming.
type fixedSegmenter struct{}

func (f *fixedSegmenter) Name() types.Strategy { return types.StrategyFixed }

func (f *fixedSegmenter) Segment(text string, cfg types.ChunkConfig) []types.TextChunk {
	runes := []rune(text)
	step := cfg.ChunkSize - cfg.Overlap // positive: config validation rejects overlap >= size

	var chunks []types.TextChunk
	for start := 0; start < len(runes); start += step {
		end := start + cfg.ChunkSize
		if end > len(runes) {
			end = len(runes)
		}
		content := strings.TrimSpace(string(runes[start:end]))
		if content == "" {
			continue
		}
		// Offsets reference the untrimmed window bounds in the original text
		chunk := types.NewTextChunk(types.StrategyFixed, len(chunks)+1, content, start, end)
		if len(chunks) > 0 {
			chunk.OverlapWithPrevious = min(cfg.Overlap, chunks[len(chunks)-1].CharacterCount)
		}
		chunks = append(chunks, chunk)
	}
	return chunks
}
