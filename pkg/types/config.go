package types

import "fmt"

// Strategy identifies a chunking algorithm
type Strategy string

const (
	// StrategyFixed slides a fixed-size window with optional overlap
	StrategyFixed Strategy = "fixed"
	// StrategySentence accumulates whole sentences up to the size limit
	StrategySentence Strategy = "sentence"
	// StrategyParagraph accumulates whole paragraphs up to the size limit
	StrategyParagraph Strategy = "paragraph"
	// StrategyRecursive splits paragraphs, then sentences, then words
	StrategyRecursive Strategy = "recursive"
	// StrategySemantic splits at heuristic topic boundaries
	StrategySemantic Strategy = "semantic"
)

// Strategies lists every supported strategy in stable order
func Strategies() []Strategy {
	return []Strategy{
		StrategyFixed,
		StrategySentence,
		StrategyParagraph,
		StrategyRecursive,
		StrategySemantic,
	}
}

// Valid reports whether s is a recognized strategy discriminant
func (s Strategy) Valid() bool {
	switch s {
	case StrategyFixed, StrategySentence, StrategyParagraph, StrategyRecursive, StrategySemantic:
		return true
	default:
		return false
	}
}

// ChunkConfig configures a single chunking invocation. Values are read-only
// once handed to the engine.
type ChunkConfig struct {
	// ChunkSize is the target maximum chunk length in characters
	ChunkSize int

	// Overlap is the number of characters repeated between consecutive
	// windows. Only the fixed strategy uses it.
	Overlap int

	// Strategy selects the chunking algorithm
	Strategy Strategy
}

// Validate checks the configuration before any processing starts.
// Overlap must stay below ChunkSize: a non-positive window step would
// never terminate.
func (c ChunkConfig) Validate() error {
	if !c.Strategy.Valid() {
		return fmt.Errorf("%w: %w %q", ErrInvalidConfig, ErrUnknownStrategy, string(c.Strategy))
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("%w: chunk size must be positive, got %d", ErrInvalidConfig, c.ChunkSize)
	}
	if c.Overlap < 0 {
		return fmt.Errorf("%w: overlap must be non-negative, got %d", ErrInvalidConfig, c.Overlap)
	}
	if c.Overlap >= c.ChunkSize {
		return fmt.Errorf("%w: overlap %d must be less than chunk size %d", ErrInvalidConfig, c.Overlap, c.ChunkSize)
	}
	return nil
}
