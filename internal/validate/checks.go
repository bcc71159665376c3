package validate

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	wordPattern      = regexp.MustCompile(`\w+`)
	boundaryPattern  = regexp.MustCompile(`[.!?]\s+`)
	doubleSpacePattn = regexp.MustCompile(` {2,}`)
)

// checkSpelling tokenizes the text into word-like runs and collects the
// tokens missing from the dictionary, lowercased and deduplicated in
// first-seen order. A non-empty set yields one aggregate message.
func checkSpelling(text string, dict Dictionary) ([]string, []string) {
	var misspelled []string
	seen := make(map[string]struct{})
	for _, tok := range wordPattern.FindAllString(text, -1) {
		w := strings.ToLower(tok)
		if dict.Contains(w) {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		misspelled = append(misspelled, w)
	}
	if len(misspelled) == 0 {
		return nil, nil
	}
	msg := fmt.Sprintf("misspelled words found: %s", strings.Join(misspelled, ", "))
	return misspelled, []string{msg}
}

// countLines counts lines that contain any non-whitespace character.
func countLines(text string) int {
	count := 0
	for line := range strings.SplitSeq(text, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}

// checkLineCount flags texts with fewer non-blank lines than minLines.
func checkLineCount(text string, minLines int) (int, []string) {
	n := countLines(text)
	if n < minLines {
		return n, []string{"paragraph is too short or line spacing may be off"}
	}
	return n, nil
}

// splitSentences splits the trimmed text into sentence-like segments on
// whitespace that immediately follows '.', '!' or '?'. A text without such a
// boundary is a single segment, including the empty string.
func splitSentences(text string) []string {
	trimmed := strings.TrimSpace(text)
	locs := boundaryPattern.FindAllStringIndex(trimmed, -1)
	if len(locs) == 0 {
		return []string{trimmed}
	}
	segments := make([]string, 0, len(locs)+1)
	prev := 0
	for _, loc := range locs {
		// The boundary starts at the punctuation mark; the segment keeps it.
		segments = append(segments, trimmed[prev:loc[0]+1])
		prev = loc[1]
	}
	segments = append(segments, trimmed[prev:])
	return segments
}

// checkPunctuation verifies that every sentence except the last ends with a
// period. The last segment is exempt: OCR often truncates the final line.
func checkPunctuation(text string) []string {
	segments := splitSentences(text)
	var msgs []string
	for _, seg := range segments[:len(segments)-1] {
		if !strings.HasSuffix(seg, ".") {
			msgs = append(msgs, fmt.Sprintf("missing terminal punctuation: %q (sentences must end with a period)", seg))
		}
	}
	return msgs
}

// checkWhitespace flags a run of two or more consecutive spaces, once per
// text regardless of how many runs exist.
func checkWhitespace(text string) []string {
	if doubleSpacePattn.MatchString(text) {
		return []string{"extraneous whitespace (consecutive spaces) found"}
	}
	return nil
}
