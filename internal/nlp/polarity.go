package nlp

import (
	"regexp"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Result column names for polarity counts.
const (
	ColPositive = "positive_words"
	ColNegative = "negative_words"
)

// wordRe matches a word character followed by word characters or hyphens.
// Trailing hyphens are trimmed afterwards so a match ends on a word character.
var wordRe = regexp.MustCompile(`[\p{L}\p{N}_][\p{L}\p{N}_-]*`)

// PolarityResult counts lexicon hits in a column.
type PolarityResult struct {
	Column      string       `json:"column,omitempty" yaml:"column,omitempty"`
	Positive    int          `json:"positive_words" yaml:"positive_words"`
	Negative    int          `json:"negative_words" yaml:"negative_words"`
	Unavailable *Unavailable `json:"unavailable,omitempty" yaml:"unavailable,omitempty"`
}

// Frame renders the result as a one-row DataFrame.
func (r *PolarityResult) Frame() dataframe.DataFrame {
	return dataframe.New(
		series.New([]int{r.Positive}, series.Int, ColPositive),
		series.New([]int{r.Negative}, series.Int, ColNegative),
	)
}

// Words lowercases text and extracts word-like tokens: letters, digits,
// underscores and inner hyphens.
func Words(text string) []string {
	matches := wordRe.FindAllString(strings.ToLower(text), -1)
	out := matches[:0]
	for _, m := range matches {
		m = strings.TrimRight(m, "-")
		if m != "" {
			out = append(out, m)
		}
	}
	return out
}

// Polarity counts tokens found in the positive and negative lexicons. Cells
// are joined with ", " first. A token present in both lexicons counts toward
// both totals. Lexicons are loaded on every call.
func (f *Frame) Polarity(column string) (*PolarityResult, error) {
	start := time.Now()
	column, text, err := f.corpus(column, ", ")
	if err != nil {
		return nil, err
	}
	pos, err := f.lexicons.Positive()
	if err != nil {
		return nil, err
	}
	neg, err := f.lexicons.Negative()
	if err != nil {
		return nil, err
	}

	res := &PolarityResult{Column: column}
	for _, w := range Words(text) {
		if pos.Contains(w) {
			res.Positive++
		}
		if neg.Contains(w) {
			res.Negative++
		}
	}
	f.log.Debug().Str("column", column).Int("positive", res.Positive).Int("negative", res.Negative).
		Dur("took", time.Since(start)).Msg("polarity")
	return res, nil
}
