// Package chunker splits extracted document text into bounded-size,
// position-tracked chunks suitable for downstream indexing.
//
// # Basic Usage
//
//	engine := chunker.New()
//	result, err := engine.Chunk(text, types.ChunkConfig{
//	    ChunkSize: 1000,
//	    Overlap:   200,
//	    Strategy:  types.StrategyRecursive,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, chunk := range result.Chunks {
//	    fmt.Printf("%s: %d chars at [%d,%d)\n",
//	        chunk.ID, chunk.CharacterCount, chunk.StartIndex, chunk.EndIndex)
//	}
//
// # Strategies
//
// Five interchangeable strategies implement one Segmenter contract:
//
//   - fixed: sliding window of ChunkSize characters, stepping by
//     ChunkSize-Overlap. The only strategy that produces overlap.
//   - sentence: greedy accumulation of whole sentences; a boundary never
//     falls inside a sentence.
//   - paragraph: the same accumulation over blank-line-separated paragraphs.
//   - recursive: paragraphs, then sentence groups, then words. The word
//     fallback bounds recursion on spans with no interior boundaries.
//   - semantic: sentence accumulation with a lexical topic heuristic
//     (keyword-set overlap plus discourse markers) deciding each boundary.
//     This is a surface heuristic, not an embedding-based analysis.
//
// # Contract
//
// Every strategy emits chunks in document order with non-empty trimmed
// content. Offsets reference the original input; strategies that re-assemble
// sentences or paragraphs approximate them by accumulating consumed lengths
// plus assumed separator widths, which can drift when original separators
// are wider than assumed.
//
// # Errors
//
// An unknown strategy, a non-positive chunk size or an overlap at or above
// the chunk size is rejected up front with types.ErrInvalidConfig. Empty
// input is not an error; it yields an empty result. Degenerate tokenization
// (no sentence or paragraph boundaries) falls through to the documented
// fallbacks and never fails.
package chunker
