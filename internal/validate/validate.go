// Package validate runs rule checks over OCR-extracted text and aggregates
// the findings into a pass/fail report. The checks are independent and pure;
// failing one is an expected outcome, not an error.
package validate

import (
	"golang.org/x/text/unicode/norm"
)

// DefaultMinLines is the minimum number of non-blank lines a scanned
// paragraph is expected to have.
const DefaultMinLines = 3

// Report is the immutable result of validating one text. Errors are ordered
// by detection: spelling, line count, punctuation, whitespace.
type Report struct {
	MisspelledWords []string `json:"misspelled_words" yaml:"misspelled_words"`
	LineCount       int      `json:"line_count" yaml:"line_count"`
	Errors          []string `json:"errors" yaml:"errors"`
	IsValid         bool     `json:"is_valid" yaml:"is_valid"`
}

// Validator runs the four text checks with a fixed dictionary and policy.
type Validator struct {
	dict     Dictionary
	minLines int
}

// Option configures a Validator.
type Option func(*Validator)

// WithDictionary replaces the built-in dictionary.
func WithDictionary(d Dictionary) Option {
	return func(v *Validator) {
		if d != nil {
			v.dict = d
		}
	}
}

// WithMinLines overrides the minimum non-blank line count.
func WithMinLines(n int) Option {
	return func(v *Validator) {
		if n >= 0 {
			v.minLines = n
		}
	}
}

// New creates a Validator with the built-in English dictionary and default
// line policy.
func New(opts ...Option) *Validator {
	v := &Validator{dict: DefaultWordList(), minLines: DefaultMinLines}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate runs all four checks over the text and returns the aggregated
// report. No check short-circuits another; messages are concatenated in
// check order. Calling Validate twice on the same text yields equal reports.
func (v *Validator) Validate(text string) Report {
	// OCR output can carry decomposed code points; normalize before matching.
	text = norm.NFC.String(text)

	misspelled, spellMsgs := checkSpelling(text, v.dict)
	lineCount, lineMsgs := checkLineCount(text, v.minLines)
	punctMsgs := checkPunctuation(text)
	spaceMsgs := checkWhitespace(text)

	errs := make([]string, 0, len(spellMsgs)+len(lineMsgs)+len(punctMsgs)+len(spaceMsgs))
	errs = append(errs, spellMsgs...)
	errs = append(errs, lineMsgs...)
	errs = append(errs, punctMsgs...)
	errs = append(errs, spaceMsgs...)

	return Report{
		MisspelledWords: misspelled,
		LineCount:       lineCount,
		Errors:          errs,
		IsValid:         len(errs) == 0,
	}
}
