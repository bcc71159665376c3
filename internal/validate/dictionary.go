package validate

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
)

//go:embed wordlist.txt
var embeddedWordList []byte

// Dictionary answers membership queries for the spelling check. Lookups are
// case-insensitive; implementations must be safe for repeated reads.
type Dictionary interface {
	Contains(word string) bool
	Size() int
}

// WordList is a set-backed Dictionary loaded from line-per-word files.
type WordList struct {
	words map[string]struct{}
}

// removeBOM removes a UTF-8 BOM if present on the first line.
func removeBOM(line string, isFirstLine bool) string {
	if isFirstLine {
		return strings.TrimPrefix(line, "\uFEFF")
	}
	return line
}

// scanWords reads one lowercased word per non-empty line into the set.
func scanWords(scanner *bufio.Scanner, words map[string]struct{}) error {
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(removeBOM(scanner.Text(), lineNum == 1))
		if line == "" {
			continue
		}
		words[strings.ToLower(line)] = struct{}{}
	}
	return scanner.Err()
}

// DefaultWordList returns the built-in English dictionary.
func DefaultWordList() *WordList {
	words := make(map[string]struct{}, 1024)
	// The embedded list is well-formed; scanning it cannot fail.
	_ = scanWords(bufio.NewScanner(bytes.NewReader(embeddedWordList)), words)
	return &WordList{words: words}
}

// LoadWordList loads a dictionary file where each non-empty line is a word.
// Leading/trailing whitespace is trimmed and a UTF-8 BOM is removed.
func LoadWordList(path string) (*WordList, error) {
	if path == "" {
		return nil, errors.New("dictionary path cannot be empty")
	}
	f, err := os.Open(path) //nolint:gosec // G304: Opening user-provided dictionary file is expected
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing dictionary file: %v\n", err)
		}
	}()

	words := make(map[string]struct{}, 512)
	if err := scanWords(bufio.NewScanner(f), words); err != nil {
		return nil, fmt.Errorf("failed reading dictionary: %w", err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("dictionary is empty: %s", path)
	}
	return &WordList{words: words}, nil
}

// LoadWordLists merges the built-in dictionary with additional word files.
// With no paths, the result is the built-in dictionary alone.
func LoadWordLists(paths []string) (*WordList, error) {
	merged := DefaultWordList()
	for _, p := range paths {
		if p == "" {
			continue
		}
		wl, err := LoadWordList(p)
		if err != nil {
			return nil, err
		}
		for w := range wl.words {
			merged.words[w] = struct{}{}
		}
	}
	return merged, nil
}

// Contains reports whether the word is known, ignoring case.
func (w *WordList) Contains(word string) bool {
	if w == nil {
		return false
	}
	_, ok := w.words[strings.ToLower(word)]
	return ok
}

// Size returns the number of distinct words.
func (w *WordList) Size() int { return len(w.words) }
