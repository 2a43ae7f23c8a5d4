package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitkit/splitkit/pkg/types"
)

func TestFixed_SlidingWindowWithOverlap(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog. The dog was sleeping."
	require.Equal(t, 66, len(text))

	seg := &fixedSegmenter{}
	chunks := seg.Segment(text, types.ChunkConfig{ChunkSize: 20, Overlap: 5, Strategy: types.StrategyFixed})

	// step = 15, so windows start at 0, 15, 30, 45, 60
	require.Len(t, chunks, 5)
	assert.Equal(t, "The quick brown fox", chunks[0].Content)
	assert.Equal(t, "fox jumps over the", chunks[1].Content)
	assert.Equal(t, "the lazy dog. The d", chunks[2].Content)
	assert.Equal(t, "The dog was sleeping", chunks[3].Content)
	assert.Equal(t, "eping.", chunks[4].Content)

	// Offsets reference the untrimmed window bounds
	assert.Equal(t, 0, chunks[0].StartIndex)
	assert.Equal(t, 20, chunks[0].EndIndex)
	assert.Equal(t, 15, chunks[1].StartIndex)
	assert.Equal(t, 60, chunks[4].StartIndex)
	assert.Equal(t, 66, chunks[4].EndIndex)

	assert.Equal(t, 0, chunks[0].OverlapWithPrevious)
	for _, c := range chunks[1:] {
		assert.Equal(t, 5, c.OverlapWithPrevious)
	}
}

func TestFixed_ZeroOverlapReconstructsText(t *testing.T) {
	text := "abcdefghijklmnopqrstuvwxyz0123456789"

	seg := &fixedSegmenter{}
	chunks := seg.Segment(text, types.ChunkConfig{ChunkSize: 10, Strategy: types.StrategyFixed})

	require.Len(t, chunks, 4) // ceil(36/10)
	var rebuilt strings.Builder
	for _, c := range chunks {
		rebuilt.WriteString(c.Content)
	}
	assert.Equal(t, text, rebuilt.String())
}

func TestFixed_ChunkCountFormula(t *testing.T) {
	text := strings.Repeat("a", 66)
	seg := &fixedSegmenter{}
	chunks := seg.Segment(text, types.ChunkConfig{ChunkSize: 20, Strategy: types.StrategyFixed})
	assert.Len(t, chunks, 4) // ceil(66/20)
}

func TestFixed_SizeBound(t *testing.T) {
	text := strings.Repeat("lorem ipsum dolor sit amet ", 40)
	seg := &fixedSegmenter{}
	chunks := seg.Segment(text, types.ChunkConfig{ChunkSize: 100, Overlap: 20, Strategy: types.StrategyFixed})

	require.NotEmpty(t, chunks)
	for i, c := range chunks {
		assert.LessOrEqual(t, c.CharacterCount, 100, "chunk %d", i)
		if i < len(chunks)-1 {
			assert.Equal(t, 80, chunks[i+1].StartIndex-c.StartIndex)
		}
	}
}

func TestFixed_OverlapClampedToPreviousLength(t *testing.T) {
	// The previous chunk's trimmed content can be shorter than the overlap
	text := "ab      cdefghij"
	seg := &fixedSegmenter{}
	chunks := seg.Segment(text, types.ChunkConfig{ChunkSize: 4, Overlap: 3, Strategy: types.StrategyFixed})

	require.GreaterOrEqual(t, len(chunks), 2)
	assert.Equal(t, "ab", chunks[0].Content)
	assert.Equal(t, 2, chunks[1].OverlapWithPrevious)
}

func TestFixed_WhitespaceOnlyWindowSkipped(t *testing.T) {
	text := "abcd        efgh"
	seg := &fixedSegmenter{}
	chunks := seg.Segment(text, types.ChunkConfig{ChunkSize: 4, Strategy: types.StrategyFixed})

	for _, c := range chunks {
		assert.NotEmpty(t, strings.TrimSpace(c.Content))
	}
	assert.Len(t, chunks, 2)
}

func TestFixed_ShortTextSingleChunk(t *testing.T) {
	seg := &fixedSegmenter{}
	chunks := seg.Segment("tiny", types.ChunkConfig{ChunkSize: 100, Strategy: types.StrategyFixed})

	require.Len(t, chunks, 1)
	assert.Equal(t, "tiny", chunks[0].Content)
	assert.Equal(t, "fixed-1", chunks[0].ID)
	assert.Equal(t, 0, chunks[0].StartIndex)
	assert.Equal(t, 4, chunks[0].EndIndex)
}
