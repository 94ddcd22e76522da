package nlp

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

const (
	// DefaultTopWords is the number of frequent words reported by the
	// standalone frequency statistics.
	DefaultTopWords = 3
	// SummaryTopWords is the number of frequent words reported inside a
	// summary.
	SummaryTopWords = 5
)

// Result column names for frequency statistics.
const (
	ColSentences = "Number of sentences"
	ColStopWords = "Stop words"
	ColFrequency = "Frequency"
)

// WordCount is one entry of the frequency ranking.
type WordCount struct {
	Count int    `json:"count" yaml:"count"`
	Word  string `json:"word" yaml:"word"`
}

func (w WordCount) String() string { return fmt.Sprintf("(%d, %s)", w.Count, w.Word) }

// FrequencyResult holds sentence, stopword and word frequency statistics.
type FrequencyResult struct {
	Column      string       `json:"column,omitempty" yaml:"column,omitempty"`
	Sentences   int          `json:"sentences" yaml:"sentences"`
	StopWords   int          `json:"stop_words" yaml:"stop_words"`
	Top         []WordCount  `json:"top" yaml:"top"`
	Unavailable *Unavailable `json:"unavailable,omitempty" yaml:"unavailable,omitempty"`
}

// FrequencyString renders the ranking as "[(2, is), (1, a)]".
func (r *FrequencyResult) FrequencyString() string {
	parts := make([]string, len(r.Top))
	for i, w := range r.Top {
		parts[i] = w.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Frame renders the result as a one-row DataFrame.
func (r *FrequencyResult) Frame() dataframe.DataFrame {
	return dataframe.New(
		series.New([]int{r.Sentences}, series.Int, ColSentences),
		series.New([]int{r.StopWords}, series.Int, ColStopWords),
		series.New([]string{r.FrequencyString()}, series.String, ColFrequency),
	)
}

// SentenceStopwords counts sentences, reports the stopword list size and ranks
// the topN most frequent whitespace-delimited tokens of a column. Sentences
// are counted over the cells joined with ". "; tokens are taken from each cell
// so the joining separator never sticks to a word. An empty column selects
// the frame's default.
func (f *Frame) SentenceStopwords(topN int, column string) (*FrequencyResult, error) {
	if f.segmenter == nil {
		return &FrequencyResult{Unavailable: f.unavailable("sentence segmenter", "not configured")}, nil
	}
	if f.stopwords == nil {
		return &FrequencyResult{Unavailable: f.unavailable("stopword list", "not configured")}, nil
	}
	start := time.Now()
	column, cells, err := f.cells(column)
	if err != nil {
		return nil, err
	}
	var tokens []string
	for _, c := range cells {
		tokens = append(tokens, strings.Fields(c)...)
	}
	res := &FrequencyResult{
		Column:    column,
		Sentences: len(f.segmenter.Sentences(strings.Join(cells, ". "))),
		StopWords: f.stopwords.Count(),
		Top:       TopWords(tokens, topN),
	}
	f.log.Debug().Str("column", column).Dur("took", time.Since(start)).Msg("frequency statistics")
	return res, nil
}

// TopWords counts tokens exactly (case-sensitive) and returns the n most
// frequent, ordered by count descending then token descending. n <= 0 yields
// an empty ranking.
func TopWords(tokens []string, n int) []WordCount {
	if n <= 0 {
		return []WordCount{}
	}
	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	ranked := make([]WordCount, 0, len(counts))
	for w, c := range counts {
		ranked = append(ranked, WordCount{Count: c, Word: w})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Word > ranked[j].Word
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
