package types

import (
	"math"
	"time"
)

// ChunkingResult aggregates the chunks produced by one engine invocation.
// Chunks are ordered left to right by StartIndex.
type ChunkingResult struct {
	Chunks           []TextChunk
	TotalChunks      int
	AverageChunkSize int
	ProcessingTime   time.Duration
	Strategy         Strategy
}

// NewChunkingResult wraps an ordered chunk sequence with aggregate statistics.
// AverageChunkSize is the mean CharacterCount rounded to the nearest integer,
// 0 when no chunks were produced.
func NewChunkingResult(strategy Strategy, chunks []TextChunk, elapsed time.Duration) *ChunkingResult {
	avg := 0
	if len(chunks) > 0 {
		total := 0
		for i := range chunks {
			total += chunks[i].CharacterCount
		}
		avg = int(math.Round(float64(total) / float64(len(chunks))))
	}
	return &ChunkingResult{
		Chunks:           chunks,
		TotalChunks:      len(chunks),
		AverageChunkSize: avg,
		ProcessingTime:   elapsed,
		Strategy:         strategy,
	}
}
