package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_CleanText(t *testing.T) {
	v := New()
	report := v.Validate("The quick brown fox.\nThis is fine.\nAll good here.")

	assert.Empty(t, report.MisspelledWords)
	assert.Equal(t, 3, report.LineCount)
	assert.Empty(t, report.Errors)
	assert.True(t, report.IsValid)
}

func TestValidate_EmptyText(t *testing.T) {
	v := New()
	report := v.Validate("")

	assert.Empty(t, report.MisspelledWords, "empty input yields no tokens")
	assert.Equal(t, 0, report.LineCount)
	require.Len(t, report.Errors, 1, "only the line-count check fires")
	assert.False(t, report.IsValid)
}

func TestValidate_LineCountBoundary(t *testing.T) {
	v := New()

	report := v.Validate("one line.\ntwo here.\nthree now")
	assert.Equal(t, 3, report.LineCount)
	assert.True(t, report.IsValid)

	report = v.Validate("one line.\ntwo here")
	assert.Equal(t, 2, report.LineCount)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "too short")
}

func TestValidate_OCRScenario(t *testing.T) {
	v := New()
	report := v.Validate("Helo wrld.\nThis is fine.\nEnd")

	assert.Subset(t, report.MisspelledWords, []string{"helo", "wrld"})
	assert.Equal(t, 3, report.LineCount)
	// Punctuation passes: "Helo wrld." and "This is fine." end with a
	// period, "End" is the exempt last segment. No whitespace issue.
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "misspelled")
	assert.False(t, report.IsValid)
}

func TestValidate_ErrorOrdering(t *testing.T) {
	v := New()
	// Trip all four checks: a misspelling, a single line, a sentence not
	// ending in a period, and a double space.
	report := v.Validate("zork  here! more text.")

	require.Len(t, report.Errors, 4)
	assert.Contains(t, report.Errors[0], "misspelled")
	assert.Contains(t, report.Errors[1], "too short")
	assert.Contains(t, report.Errors[2], "punctuation")
	assert.Contains(t, report.Errors[3], "whitespace")
}

func TestValidate_Idempotent(t *testing.T) {
	v := New()
	text := "Helo wrld.\nsome  spacing"

	first := v.Validate(text)
	second := v.Validate(text)
	assert.Equal(t, first, second)
}

func TestValidate_WithMinLines(t *testing.T) {
	v := New(WithMinLines(1))
	report := v.Validate("just the one line.")
	assert.True(t, report.IsValid)

	v = New(WithMinLines(0))
	report = v.Validate("")
	assert.True(t, report.IsValid, "zero threshold accepts empty text")
}

func TestValidate_WithDictionary(t *testing.T) {
	custom := &WordList{words: map[string]struct{}{"zork": {}}}
	v := New(WithDictionary(custom))

	report := v.Validate("zork zork.\nzork zork.\nzork")
	assert.Empty(t, report.MisspelledWords)
	assert.True(t, report.IsValid)
}
