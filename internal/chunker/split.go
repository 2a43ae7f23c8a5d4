package chunker

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Assumed separator widths used when accumulating offsets for re-assembled
// spans. These can drift from true offsets when the original document uses
// wider separators (three newlines between paragraphs, double spaces).
const (
	paragraphSepWidth = 2
	sentenceSepWidth  = 1
	wordSepWidth      = 1
)

// charLen counts characters, not bytes
func charLen(s string) int {
	return utf8.RuneCountInString(s)
}

func isSentenceTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// splitSentences tokenizes text into sentences. A boundary is sentence-ending
// punctuation (., !, ?) followed by whitespace or end of input. Empty
// fragments are discarded; punctuation stays with its sentence.
func splitSentences(text string) []string {
	runes := []rune(text)
	var sentences []string
	start := 0
	for i := 0; i < len(runes); i++ {
		if !isSentenceTerminator(runes[i]) {
			continue
		}
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue
		}
		if s := strings.TrimSpace(string(runes[start : i+1])); s != "" {
			sentences = append(sentences, s)
		}
		start = i + 1
	}
	if start < len(runes) {
		if s := strings.TrimSpace(string(runes[start:])); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// splitParagraphs splits text into paragraphs separated by blank lines
func splitParagraphs(text string) []string {
	parts := strings.Split(text, "\n\n")
	var paragraphs []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// groupBySize greedily joins units into groups no longer than chunkSize
// characters including separators. A single unit longer than chunkSize is
// never split further; it forms an oversized group of its own.
func groupBySize(units []string, chunkSize int, sep string) []string {
	sepLen := charLen(sep)
	var groups []string
	var current []string
	currentLen := 0
	for _, u := range units {
		next := currentLen + charLen(u)
		if len(current) > 0 {
			next += sepLen
		}
		if next > chunkSize && len(current) > 0 {
			groups = append(groups, strings.Join(current, sep))
			current = current[:0]
			next = charLen(u)
		}
		current = append(current, u)
		currentLen = next
	}
	if len(current) > 0 {
		groups = append(groups, strings.Join(current, sep))
	}
	return groups
}
