// Package lexicon loads the positive and negative opinion word lists used for
// polarity counting.
package lexicon

import (
	"bufio"
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// HeaderLines is the number of comment lines preceding the "words" heading.
const HeaderLines = 34

// WordsColumn is the heading of the column holding the lexicon entries.
const WordsColumn = "words"

//go:embed data/positive-words.txt data/negative-words.txt
var data embed.FS

const (
	embeddedPositive = "data/positive-words.txt"
	embeddedNegative = "data/negative-words.txt"
)

// ErrNoWordsColumn is returned when the first row after the header block has no
// "words" heading.
var ErrNoWordsColumn = errors.New("missing words column")

// LoadError reports a lexicon that could not be read or parsed.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e == nil {
		return "lexicon load failed"
	}
	return fmt.Sprintf("load lexicon %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Lexicon is an immutable set of lowercase words.
type Lexicon struct {
	words mapset.Set[string]
}

// Contains reports whether w is a member of the lexicon.
func (l *Lexicon) Contains(w string) bool {
	if l == nil {
		return false
	}
	return l.words.Contains(w)
}

// Len returns the number of distinct words.
func (l *Lexicon) Len() int {
	if l == nil {
		return 0
	}
	return l.words.Cardinality()
}

// Source locates the two lexicon files. An empty path selects the embedded list.
type Source struct {
	PositivePath string
	NegativePath string
}

// Default returns a Source backed by the embedded lists.
func Default() Source { return Source{} }

// Positive loads the positive lexicon.
func (s Source) Positive() (*Lexicon, error) {
	if s.PositivePath == "" {
		return loadEmbedded(embeddedPositive)
	}
	return Load(s.PositivePath)
}

// Negative loads the negative lexicon.
func (s Source) Negative() (*Lexicon, error) {
	if s.NegativePath == "" {
		return loadEmbedded(embeddedNegative)
	}
	return Load(s.NegativePath)
}

// Load reads a lexicon file from disk.
func Load(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()
	lex, err := Parse(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return lex, nil
}

func loadEmbedded(name string) (*Lexicon, error) {
	f, err := data.Open(name)
	if err != nil {
		return nil, &LoadError{Path: name, Err: err}
	}
	defer f.Close()
	lex, err := Parse(f)
	if err != nil {
		return nil, &LoadError{Path: name, Err: err}
	}
	return lex, nil
}

// Parse skips HeaderLines raw lines, then reads the remainder as delimited rows
// whose first row names the columns. Entries of the "words" column are
// lowercased; blank entries are ignored.
func Parse(r io.Reader) (*Lexicon, error) {
	br := bufio.NewReader(r)
	for i := 0; i < HeaderLines; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("header: expected %d lines, got %d", HeaderLines, i)
			}
			return nil, fmt.Errorf("header: %w", err)
		}
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	head, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoWordsColumn
		}
		return nil, fmt.Errorf("read heading: %w", err)
	}
	col := -1
	for i, h := range head {
		if strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")) == WordsColumn {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, ErrNoWordsColumn
	}

	words := mapset.NewThreadUnsafeSet[string]()
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if col >= len(rec) {
			continue
		}
		w := strings.ToLower(strings.TrimSpace(rec[col]))
		if w == "" {
			continue
		}
		words.Add(w)
	}
	return &Lexicon{words: words}, nil
}
