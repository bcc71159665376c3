package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", []string{""}},
		{"whitespace only", "  \n\t ", []string{""}},
		{"no boundary", "no punctuation here", []string{"no punctuation here"}},
		{"simple", "A. B. C", []string{"A.", "B.", "C"}},
		{"mixed marks", "Really? Yes! Done.", []string{"Really?", "Yes!", "Done."}},
		{"newline boundary", "First.\nSecond.", []string{"First.", "Second."}},
		{"trailing period", "One. Two.", []string{"One.", "Two."}},
		{"double punctuation", "Wow!! Next.", []string{"Wow!!", "Next."}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitSentences(tt.text))
		})
	}
}

func TestCountLines(t *testing.T) {
	assert.Equal(t, 0, countLines(""))
	assert.Equal(t, 0, countLines("\n \n\t\n"))
	assert.Equal(t, 1, countLines("one line"))
	assert.Equal(t, 3, countLines("a\nb\nc"))
	assert.Equal(t, 2, countLines("a\n\n\nb\n"))
}

func TestCheckLineCount(t *testing.T) {
	n, msgs := checkLineCount("a\nb\nc", 3)
	assert.Equal(t, 3, n)
	assert.Empty(t, msgs)

	n, msgs = checkLineCount("a\nb", 3)
	assert.Equal(t, 2, n)
	require.Len(t, msgs, 1)
}

func TestCheckPunctuation_LastSegmentExempt(t *testing.T) {
	// Only "A." and "B." are checked; "C" is the last segment and exempt.
	assert.Empty(t, checkPunctuation("A. B. C"))
}

func TestCheckPunctuation_FlagsOffendersIndividually(t *testing.T) {
	msgs := checkPunctuation("Is this ok? Sure! Fine.")
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[0], `"Is this ok?"`)
	assert.Contains(t, msgs[1], `"Sure!"`)
}

func TestCheckPunctuation_EmptyTextPasses(t *testing.T) {
	// The empty text is a single (last) segment and therefore exempt.
	assert.Empty(t, checkPunctuation(""))
	assert.Empty(t, checkPunctuation("   \n "))
}

func TestCheckWhitespace_SingleMessage(t *testing.T) {
	assert.Empty(t, checkWhitespace("no extra spaces"))

	msgs := checkWhitespace("foo  bar")
	require.Len(t, msgs, 1)

	// Multiple runs still yield one message.
	msgs = checkWhitespace("foo  bar  baz   qux")
	require.Len(t, msgs, 1)
}

func TestCheckSpelling(t *testing.T) {
	dict := DefaultWordList()

	words, msgs := checkSpelling("", dict)
	assert.Empty(t, words)
	assert.Empty(t, msgs)

	words, msgs = checkSpelling("...!!!", dict)
	assert.Empty(t, words, "no word-like tokens means no misspellings")
	assert.Empty(t, msgs)

	words, msgs = checkSpelling("Helo wrld this is fine", dict)
	assert.Equal(t, []string{"helo", "wrld"}, words)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "helo, wrld")
}

func TestCheckSpelling_Deduplicates(t *testing.T) {
	dict := DefaultWordList()
	words, _ := checkSpelling("zork Zork ZORK", dict)
	assert.Equal(t, []string{"zork"}, words)
}
