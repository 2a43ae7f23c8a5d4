package chunker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSentences_Basic(t *testing.T) {
	sentences := splitSentences("Hello world. How are you? Fine!")
	assert.Equal(t, []string{"Hello world.", "How are you?", "Fine!"}, sentences)
}

func TestSplitSentences_NoTerminator(t *testing.T) {
	sentences := splitSentences("a fragment with no ending")
	assert.Equal(t, []string{"a fragment with no ending"}, sentences)
}

func TestSplitSentences_PunctuationWithoutSpace(t *testing.T) {
	// A period not followed by whitespace is not a boundary
	sentences := splitSentences("Version 1.2 shipped. It works.")
	assert.Equal(t, []string{"Version 1.2 shipped.", "It works."}, sentences)
}

func TestSplitSentences_Ellipsis(t *testing.T) {
	sentences := splitSentences("Wait... what")
	assert.Equal(t, []string{"Wait...", "what"}, sentences)
}

func TestSplitSentences_Empty(t *testing.T) {
	assert.Empty(t, splitSentences(""))
	assert.Empty(t, splitSentences("   \n\t  "))
}

func TestSplitParagraphs_Basic(t *testing.T) {
	paragraphs := splitParagraphs("first para\n\nsecond para\n\n\nthird para")
	assert.Equal(t, []string{"first para", "second para", "third para"}, paragraphs)
}

func TestSplitParagraphs_SingleParagraph(t *testing.T) {
	paragraphs := splitParagraphs("one line\nanother line")
	assert.Equal(t, []string{"one line\nanother line"}, paragraphs)
}

func TestSplitParagraphs_Empty(t *testing.T) {
	assert.Empty(t, splitParagraphs("\n\n\n\n"))
}

func TestGroupBySize_PacksGreedily(t *testing.T) {
	groups := groupBySize([]string{"aaaa", "bbbb", "cccc"}, 9, " ")
	assert.Equal(t, []string{"aaaa bbbb", "cccc"}, groups)
}

func TestGroupBySize_OversizedUnitKeptWhole(t *testing.T) {
	groups := groupBySize([]string{"short", "averyveryverylongunit", "tail"}, 10, " ")
	assert.Equal(t, []string{"short", "averyveryverylongunit", "tail"}, groups)
}

func TestGroupBySize_Empty(t *testing.T) {
	assert.Empty(t, groupBySize(nil, 10, " "))
}

func TestCharLen_CountsRunes(t *testing.T) {
	assert.Equal(t, 4, charLen("日本語x"))
}
