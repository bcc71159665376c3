package validate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWordList(t *testing.T) {
	wl := DefaultWordList()
	require.Positive(t, wl.Size())

	assert.True(t, wl.Contains("the"))
	assert.True(t, wl.Contains("The"), "lookup must ignore case")
	assert.True(t, wl.Contains("END"))
	assert.False(t, wl.Contains("helo"))
	assert.False(t, wl.Contains("wrld"))
}

func TestLoadWordList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("Frobnicate\n\n  zorble  \n"), 0o600))

	wl, err := LoadWordList(path)
	require.NoError(t, err)
	assert.Equal(t, 2, wl.Size())
	assert.True(t, wl.Contains("frobnicate"))
	assert.True(t, wl.Contains("ZORBLE"))
}

func TestLoadWordList_Errors(t *testing.T) {
	_, err := LoadWordList("")
	assert.Error(t, err)

	_, err = LoadWordList(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(empty, []byte("\n\n"), 0o600))
	_, err = LoadWordList(empty)
	assert.Error(t, err)
}

func TestLoadWordLists_MergesWithBuiltin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.txt")
	require.NoError(t, os.WriteFile(path, []byte("zorble\n"), 0o600))

	wl, err := LoadWordLists([]string{path, ""})
	require.NoError(t, err)
	assert.True(t, wl.Contains("zorble"))
	assert.True(t, wl.Contains("the"), "built-in words are retained")
}

func TestLoadWordLists_NoPaths(t *testing.T) {
	wl, err := LoadWordLists(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultWordList().Size(), wl.Size())
}

func TestWordList_NilSafe(t *testing.T) {
	var wl *WordList
	assert.False(t, wl.Contains("anything"))
}
