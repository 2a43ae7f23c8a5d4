// Package types provides shared type definitions for the splitkit chunking
// engine.
//
// # Core Types
//
// ChunkConfig selects and bounds a chunking run:
//
//	cfg := types.ChunkConfig{
//	    ChunkSize: 1000,
//	    Overlap:   200,
//	    Strategy:  types.StrategyFixed,
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
// TextChunk is one bounded, position-tracked span of the original text:
//
//	chunk := types.NewTextChunk(types.StrategySentence, 1, content, start, end)
//
// ChunkingResult wraps an ordered chunk sequence with aggregate statistics
// (total count, average character size, processing time).
//
// # Offsets and Counts
//
// All counts and offsets are measured in characters (runes), not bytes.
// StartIndex and EndIndex reference the original input text; for strategies
// that re-assemble sentences or paragraphs the offsets are approximate,
// accumulated from consumed span lengths plus assumed separator widths.
//
// # Validation
//
// Configuration errors wrap ErrInvalidConfig and are reported before any
// processing starts:
//
//	if errors.Is(err, types.ErrInvalidConfig) {
//	    // reject, never retry
//	}
package types
