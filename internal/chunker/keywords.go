package chunker

import (
	"strings"
	"unicode"
)

// maxKeywords caps the extracted set so comparisons stay cheap on long spans
const maxKeywords = 20

// stopWords are common function words excluded from keyword comparison.
// Tokens of two characters or fewer are dropped before this lookup, so only
// longer entries appear here.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {},
	"was": {}, "were": {}, "been": {}, "being": {}, "has": {}, "have": {},
	"had": {}, "does": {}, "did": {}, "will": {}, "would": {}, "could": {},
	"should": {}, "shall": {}, "may": {}, "might": {}, "must": {}, "can": {},
	"this": {}, "that": {}, "these": {}, "those": {}, "there": {}, "then": {},
	"than": {}, "with": {}, "from": {}, "into": {}, "onto": {}, "upon": {},
	"about": {}, "after": {}, "before": {}, "because": {}, "while": {},
	"you": {}, "your": {}, "she": {}, "her": {}, "him": {}, "his": {},
	"they": {}, "them": {}, "their": {}, "its": {}, "our": {}, "who": {},
	"whom": {}, "what": {}, "when": {}, "where": {}, "which": {}, "all": {},
	"any": {}, "each": {}, "some": {}, "such": {}, "also": {}, "very": {},
	"just": {}, "only": {}, "more": {}, "most": {}, "other": {},
}

// extractKeywords normalizes a text span into a bounded set of content
// words: lowercased, stripped of non-word runes, short tokens and stop
// words dropped, capped at maxKeywords entries.
func extractKeywords(text string) map[string]struct{} {
	keywords := make(map[string]struct{}, maxKeywords)
	for _, field := range strings.Fields(strings.ToLower(text)) {
		word := stripNonWord(field)
		if charLen(word) <= 2 {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		keywords[word] = struct{}{}
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}

func stripNonWord(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}
