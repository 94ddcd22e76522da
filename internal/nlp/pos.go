package nlp

import (
	"math"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/KaramelBytes/nlpsummarize/internal/textproc"
)

// Part-of-speech categories reported by PartOfSpeech.
const (
	Adjective   = "adjective"
	Adposition  = "adposition"
	Adverb      = "adverb"
	Conjunction = "conjunction"
	Article     = "article"
	Noun        = "noun"
	Numeral     = "numeral"
	Particle    = "particle"
	Pronoun     = "pronoun"
	Verb        = "verb"
	Punctuation = "punctuation"
)

// AllCategories lists every category in natural tagset order.
var AllCategories = []string{
	Adjective, Adposition, Adverb, Conjunction, Article, Noun,
	Numeral, Particle, Pronoun, Verb, Punctuation,
}

// DefaultPOSFilter is the category subset reported when none is requested.
var DefaultPOSFilter = []string{Adjective, Noun, Verb}

var universalCategory = map[string]string{
	textproc.UniAdj:  Adjective,
	textproc.UniAdp:  Adposition,
	textproc.UniAdv:  Adverb,
	textproc.UniConj: Conjunction,
	textproc.UniDet:  Article,
	textproc.UniNoun: Noun,
	textproc.UniNum:  Numeral,
	textproc.UniPrt:  Particle,
	textproc.UniPron: Pronoun,
	textproc.UniVerb: Verb,
	textproc.UniPunc: Punctuation,
}

// POSProportion is the share of tagged tokens falling into one category.
type POSProportion struct {
	Category string  `json:"category" yaml:"category"`
	Value    float64 `json:"value" yaml:"value"`
}

// POSResult holds category proportions in filter order.
type POSResult struct {
	Column      string          `json:"column,omitempty" yaml:"column,omitempty"`
	Tokens      int             `json:"tokens" yaml:"tokens"`
	Proportions []POSProportion `json:"proportions" yaml:"proportions"`
	Unavailable *Unavailable    `json:"unavailable,omitempty" yaml:"unavailable,omitempty"`
}

// Get returns the proportion for a category and whether it was reported.
func (r *POSResult) Get(category string) (float64, bool) {
	for _, p := range r.Proportions {
		if p.Category == category {
			return p.Value, true
		}
	}
	return 0, false
}

// Frame renders the result as a one-row DataFrame with one column per category.
func (r *POSResult) Frame() dataframe.DataFrame {
	cols := make([]series.Series, len(r.Proportions))
	for i, p := range r.Proportions {
		cols[i] = series.New([]float64{p.Value}, series.Float, p.Category)
	}
	return dataframe.New(cols...)
}

// normalizeFilter validates labels and drops duplicates. An empty filter
// selects every category.
func normalizeFilter(filter []string) ([]string, error) {
	if len(filter) == 0 {
		return append([]string(nil), AllCategories...), nil
	}
	known := make(map[string]bool, len(AllCategories))
	for _, c := range AllCategories {
		known[c] = true
	}
	seen := map[string]bool{}
	out := make([]string, 0, len(filter))
	for _, label := range filter {
		if !known[label] {
			return nil, &InvalidFilterError{Label: label}
		}
		if seen[label] {
			continue
		}
		seen[label] = true
		out = append(out, label)
	}
	return out, nil
}

// ParseFilter parses a comma-separated category list such as
// "adjective, noun". Blank input selects every category.
func ParseFilter(s string) ([]string, error) {
	var out []string
	for _, part := range strings.Split(s, ",") {
		label := strings.ToLower(strings.TrimSpace(part))
		if label == "" {
			continue
		}
		out = append(out, label)
	}
	return normalizeFilter(out)
}

// PartOfSpeech tags the column's text and reports, per requested category,
// the share of all tagged tokens in that category rounded to four decimals.
// Cells are joined with newlines first. A nil or empty filter reports every
// category.
func (f *Frame) PartOfSpeech(filter []string, column string) (*POSResult, error) {
	if f.tagger == nil {
		return &POSResult{Unavailable: f.unavailable("part-of-speech tagger", "not configured")}, nil
	}
	start := time.Now()
	column, text, err := f.corpus(column, "\n")
	if err != nil {
		return nil, err
	}
	categories, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}

	tokens := f.tagger.Tag(text)
	counts := make(map[string]int, len(categories))
	for _, t := range tokens {
		if c, ok := universalCategory[t.Universal]; ok {
			counts[c]++
		}
	}
	res := &POSResult{Column: column, Tokens: len(tokens), Proportions: make([]POSProportion, len(categories))}
	for i, c := range categories {
		res.Proportions[i] = POSProportion{Category: c, Value: proportion(counts[c], len(tokens))}
	}
	f.log.Debug().Str("column", column).Int("tokens", len(tokens)).Dur("took", time.Since(start)).Msg("part-of-speech proportions")
	return res, nil
}

func proportion(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(n)/float64(total)*1e4) / 1e4
}
