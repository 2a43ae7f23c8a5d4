package types

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// TextChunk is a bounded, position-tracked span of the original input text.
// StartIndex and EndIndex are character (rune) offsets into the original
// text marking where the span was taken from, even when Content itself has
// been trimmed. Chunks are never mutated after being placed in a result.
type TextChunk struct {
	// ID is a strategy-prefixed ordinal, unique within a result (e.g. "fixed-1")
	ID string

	// Content is the trimmed text span
	Content string

	// Location in the original input, in characters
	StartIndex int
	EndIndex   int

	// CharacterCount is the character length of Content
	CharacterCount int

	// WordCount is the whitespace-delimited token count of Content
	WordCount int

	// OverlapWithPrevious is the number of characters shared with the
	// preceding chunk. Zero except for the fixed strategy.
	OverlapWithPrevious int

	// Strategy records which algorithm produced the chunk
	Strategy Strategy
}

// NewTextChunk builds a chunk for a trimmed content span, computing the
// character and word counts. ordinal is 1-based.
func NewTextChunk(strategy Strategy, ordinal int, content string, start, end int) TextChunk {
	return TextChunk{
		ID:             fmt.Sprintf("%s-%d", strategy, ordinal),
		Content:        content,
		StartIndex:     start,
		EndIndex:       end,
		CharacterCount: utf8.RuneCountInString(content),
		WordCount:      len(strings.Fields(content)),
		Strategy:       strategy,
	}
}

// Validate checks the chunk invariants shared by every strategy
func (c *TextChunk) Validate() error {
	if strings.TrimSpace(c.Content) == "" {
		return ErrEmptyContent
	}
	if c.EndIndex < c.StartIndex {
		return ErrInvalidOffsets
	}
	if !c.Strategy.Valid() {
		return fmt.Errorf("%w %q", ErrUnknownStrategy, string(c.Strategy))
	}
	return nil
}
