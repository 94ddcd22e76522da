package lexicon

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func header() string {
	return strings.Repeat(";\n", HeaderLines)
}

func writeLexicon(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "lex.txt")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestParseSkipsHeaderAndLowercases(t *testing.T) {
	lex, err := Parse(strings.NewReader(header() + "words\nGood\ngreat\n\nwell-made\ngood\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, lex.Len())
	assert.True(t, lex.Contains("good"))
	assert.True(t, lex.Contains("well-made"))
	assert.False(t, lex.Contains("Good"))
}

func TestParseHeaderLinesAreNotWords(t *testing.T) {
	// A word placed inside the header block must be ignored.
	body := "superb\n" + strings.Repeat(";\n", HeaderLines-1) + "words\nfine\n"
	lex, err := Parse(strings.NewReader(body))
	require.NoError(t, err)
	assert.False(t, lex.Contains("superb"))
	assert.True(t, lex.Contains("fine"))
}

func TestParseWordsColumnAmongOthers(t *testing.T) {
	lex, err := Parse(strings.NewReader(header() + "id,words\n1,Nice\n2\n3,calm\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, lex.Len())
	assert.True(t, lex.Contains("nice"))
	assert.True(t, lex.Contains("calm"))
}

func TestParseErrors(t *testing.T) {
	_, err := Parse(strings.NewReader(";\n;\n"))
	require.Error(t, err)

	_, err = Parse(strings.NewReader(header() + "term\nfoo\n"))
	require.ErrorIs(t, err, ErrNoWordsColumn)

	_, err = Parse(strings.NewReader(header()))
	require.ErrorIs(t, err, ErrNoWordsColumn)
}

func TestLoadMissingFileIsLoadError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.txt")
	_, err := Load(missing)
	require.Error(t, err)
	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, missing, le.Path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSourceUsesFilesWhenConfigured(t *testing.T) {
	pos := writeLexicon(t, header()+"words\nsunny\n")
	src := Source{PositivePath: pos}

	p, err := src.Positive()
	require.NoError(t, err)
	assert.Equal(t, 1, p.Len())
	assert.True(t, p.Contains("sunny"))

	// negative side falls back to the embedded list
	n, err := src.Negative()
	require.NoError(t, err)
	assert.True(t, n.Contains("bad"))
}

func TestEmbeddedDefaults(t *testing.T) {
	src := Default()
	p, err := src.Positive()
	require.NoError(t, err)
	n, err := src.Negative()
	require.NoError(t, err)

	for _, w := range []string{"good", "great", "well", "amazing", "beautiful", "love"} {
		assert.True(t, p.Contains(w), w)
	}
	for _, w := range []string{"bad", "worst", "terrible"} {
		assert.True(t, n.Contains(w), w)
	}
	assert.False(t, p.Contains("words"))
	assert.False(t, n.Contains("bad") && p.Contains("bad"))
	assert.Greater(t, p.Len(), 1000)
	assert.Greater(t, n.Len(), 1000)
}

func TestEmbeddedPositiveIsComplete(t *testing.T) {
	p, err := Default().Positive()
	require.NoError(t, err)
	assert.Equal(t, 2006, p.Len())
	for _, w := range []string{"accomodative", "afordable", "counter-attacks", "groundbreaking"} {
		assert.True(t, p.Contains(w), w)
	}
}

func TestNilLexicon(t *testing.T) {
	var l *Lexicon
	assert.False(t, l.Contains("good"))
	assert.Zero(t, l.Len())
}
