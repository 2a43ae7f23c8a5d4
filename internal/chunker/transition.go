package chunker

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// transitionMarkers is the fixed table of discourse markers whose presence
// at the start of a sentence flags a likely topic boundary. Loaded once,
// never mutated.
var transitionMarkers = []string{
	"however",
	"moreover",
	"furthermore",
	"nevertheless",
	"nonetheless",
	"meanwhile",
	"conversely",
	"additionally",
	"alternatively",
	"similarly",
	"finally",
	"first",
	"firstly",
	"second",
	"secondly",
	"third",
	"thirdly",
	"lastly",
	"next",
	"in conclusion",
	"in summary",
	"in contrast",
	"in addition",
	"on the other hand",
	"as a result",
	"for example",
	"for instance",
	"to summarize",
	"turning to",
}

// headingPattern matches structural headers like "Chapter 3" or "Section 2"
var headingPattern = regexp.MustCompile(`^(?:chapter|section|part)\s+\d+`)

// hasTopicTransition reports whether a sentence's leading tokens match a
// known discourse marker or a chapter/section header.
func hasTopicTransition(sentence string) bool {
	lead := strings.ToLower(strings.TrimSpace(sentence))
	if lead == "" {
		return false
	}
	for _, marker := range transitionMarkers {
		if strings.HasPrefix(lead, marker) && !continuesWord(lead, len(marker)) {
			return true
		}
	}
	return headingPattern.MatchString(lead)
}

// continuesWord reports whether the rune at byte offset i extends the
// preceding word, ruling out prefix hits like "however" in "howevers"
func continuesWord(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
