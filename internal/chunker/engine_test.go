package chunker

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitkit/splitkit/pkg/types"
)

const sampleText = "The quick brown fox jumps over the lazy dog. The dog was sleeping.\n\n" +
	"A second paragraph talks about something else entirely. It has two sentences."

func TestEngine_RejectsUnknownStrategy(t *testing.T) {
	engine := New()
	_, err := engine.Chunk(sampleText, types.ChunkConfig{ChunkSize: 100, Strategy: "mystery"})

	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidConfig)
	assert.ErrorIs(t, err, types.ErrUnknownStrategy)
	assert.Contains(t, err.Error(), "mystery")
}

func TestEngine_RejectsNonPositiveChunkSize(t *testing.T) {
	engine := New()
	for _, size := range []int{0, -5} {
		_, err := engine.Chunk(sampleText, types.ChunkConfig{ChunkSize: size, Strategy: types.StrategyFixed})
		assert.ErrorIs(t, err, types.ErrInvalidConfig)
	}
}

func TestEngine_RejectsOverlapAtOrAboveChunkSize(t *testing.T) {
	engine := New()
	for _, overlap := range []int{20, 25} {
		_, err := engine.Chunk(sampleText, types.ChunkConfig{ChunkSize: 20, Overlap: overlap, Strategy: types.StrategyFixed})
		assert.ErrorIs(t, err, types.ErrInvalidConfig)
	}
}

func TestEngine_RejectsNegativeOverlap(t *testing.T) {
	engine := New()
	_, err := engine.Chunk(sampleText, types.ChunkConfig{ChunkSize: 20, Overlap: -1, Strategy: types.StrategyFixed})
	assert.ErrorIs(t, err, types.ErrInvalidConfig)
}

func TestEngine_EmptyInputIsSuccess(t *testing.T) {
	engine := New()
	for _, strategy := range types.Strategies() {
		for _, text := range []string{"", "   ", "\n\t \n"} {
			result, err := engine.Chunk(text, types.ChunkConfig{ChunkSize: 100, Strategy: strategy})
			require.NoError(t, err, "strategy %s", strategy)
			assert.Empty(t, result.Chunks)
			assert.Equal(t, 0, result.TotalChunks)
			assert.Equal(t, 0, result.AverageChunkSize)
			assert.Equal(t, strategy, result.Strategy)
		}
	}
}

func TestEngine_ResultInvariants(t *testing.T) {
	engine := New()
	for _, strategy := range types.Strategies() {
		cfg := types.ChunkConfig{ChunkSize: 40, Strategy: strategy}
		if strategy == types.StrategyFixed {
			cfg.Overlap = 10
		}
		result, err := engine.Chunk(sampleText, cfg)
		require.NoError(t, err, "strategy %s", strategy)
		require.NotEmpty(t, result.Chunks, "strategy %s", strategy)

		assert.Equal(t, len(result.Chunks), result.TotalChunks)
		assert.True(t, sort.SliceIsSorted(result.Chunks, func(i, j int) bool {
			return result.Chunks[i].StartIndex < result.Chunks[j].StartIndex
		}), "strategy %s: chunks not in document order", strategy)

		seen := make(map[string]bool)
		for _, c := range result.Chunks {
			assert.NoError(t, c.Validate(), "strategy %s", strategy)
			assert.Equal(t, strategy, c.Strategy)
			assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
			seen[c.ID] = true
			if strategy != types.StrategyFixed {
				assert.Zero(t, c.OverlapWithPrevious)
			}
		}
	}
}

func TestEngine_AverageChunkSize(t *testing.T) {
	engine := New()
	result, err := engine.Chunk(sampleText, types.ChunkConfig{ChunkSize: 50, Strategy: types.StrategySentence})
	require.NoError(t, err)
	require.NotEmpty(t, result.Chunks)

	total := 0
	for _, c := range result.Chunks {
		total += c.CharacterCount
	}
	want := (total + len(result.Chunks)/2) / len(result.Chunks)
	assert.InDelta(t, want, result.AverageChunkSize, 1)
}

func TestEngine_CompareAll(t *testing.T) {
	engine := New()
	results, err := engine.CompareAll(context.Background(), sampleText, 40, 10)
	require.NoError(t, err)
	require.Len(t, results, len(types.Strategies()))

	for _, strategy := range types.Strategies() {
		res, ok := results[strategy]
		require.True(t, ok, "missing result for %s", strategy)
		assert.Equal(t, strategy, res.Strategy)
		assert.NotEmpty(t, res.Chunks)
	}
}

func TestEngine_CompareAllPropagatesConfigError(t *testing.T) {
	engine := New()
	_, err := engine.CompareAll(context.Background(), sampleText, 10, 10)
	assert.ErrorIs(t, err, types.ErrInvalidConfig)
}

func TestEngine_StatelessAcrossCalls(t *testing.T) {
	engine := New()
	cfg := types.ChunkConfig{ChunkSize: 30, Strategy: types.StrategyRecursive}

	first, err := engine.Chunk(sampleText, cfg)
	require.NoError(t, err)
	second, err := engine.Chunk(sampleText, cfg)
	require.NoError(t, err)

	require.Equal(t, first.TotalChunks, second.TotalChunks)
	for i := range first.Chunks {
		assert.Equal(t, first.Chunks[i].Content, second.Chunks[i].Content)
		assert.Equal(t, first.Chunks[i].ID, second.Chunks[i].ID)
	}
}
