package nlp

import (
	"errors"

	"github.com/go-gota/gota/dataframe"
)

// SummaryOptions tunes the analyzers run by Summary.
type SummaryOptions struct {
	// TopWords is the frequency ranking length; 0 means SummaryTopWords.
	TopWords int
	// POS is the category filter; nil means DefaultPOSFilter.
	POS []string
}

// Summary combines every analyzer's result for one column. Parts whose
// capability was unavailable are nil.
type Summary struct {
	Column    string           `json:"column" yaml:"column"`
	Language  *LanguageResult  `json:"language,omitempty" yaml:"language,omitempty"`
	Frequency *FrequencyResult `json:"frequency,omitempty" yaml:"frequency,omitempty"`
	POS       *POSResult       `json:"pos,omitempty" yaml:"pos,omitempty"`
	Polarity  *PolarityResult  `json:"polarity,omitempty" yaml:"polarity,omitempty"`
	// Skipped lists the capabilities that were unavailable.
	Skipped []Unavailable `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// Empty reports whether no analyzer produced a result.
func (s *Summary) Empty() bool {
	return s == nil || (s.Language == nil && s.Frequency == nil && s.POS == nil && s.Polarity == nil)
}

// Columns lists the result column names in output order.
func (s *Summary) Columns() []string {
	if s.Empty() {
		return nil
	}
	return s.Frame().Names()
}

// Frame concatenates the available one-row results side by side: language,
// frequency, part of speech, polarity. An empty summary yields a frame with
// no columns.
func (s *Summary) Frame() dataframe.DataFrame {
	var parts []dataframe.DataFrame
	if s == nil {
		return dataframe.DataFrame{}
	}
	if s.Language != nil {
		parts = append(parts, s.Language.Frame())
	}
	if s.Frequency != nil {
		parts = append(parts, s.Frequency.Frame())
	}
	if s.POS != nil && len(s.POS.Proportions) > 0 {
		parts = append(parts, s.POS.Frame())
	}
	if s.Polarity != nil {
		parts = append(parts, s.Polarity.Frame())
	}
	if len(parts) == 0 {
		return dataframe.DataFrame{}
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out = out.CBind(p)
	}
	return out
}

// Summary runs language detection, frequency statistics, part-of-speech
// proportions and polarity on one column. When no column can be resolved, or
// the named column does not exist, it logs a warning and returns an empty
// summary with a nil error. Other failures are returned.
func (f *Frame) Summary(opts SummaryOptions, column string) (*Summary, error) {
	resolved, err := f.resolve(column)
	if err != nil {
		if errors.Is(err, ErrMissingColumn) || errors.Is(err, ErrColumnNotFound) {
			f.log.Warn().Err(err).Msg("summary skipped")
			return &Summary{}, nil
		}
		return nil, err
	}
	topN := opts.TopWords
	if topN == 0 {
		topN = SummaryTopWords
	}
	filter := opts.POS
	if filter == nil {
		filter = DefaultPOSFilter
	}

	out := &Summary{Column: resolved}
	lang, err := f.DetectLanguage(resolved)
	if err != nil {
		return nil, err
	}
	if lang.Unavailable != nil {
		out.Skipped = append(out.Skipped, *lang.Unavailable)
	} else {
		out.Language = lang
	}

	freq, err := f.SentenceStopwords(topN, resolved)
	if err != nil {
		return nil, err
	}
	if freq.Unavailable != nil {
		out.Skipped = append(out.Skipped, *freq.Unavailable)
	} else {
		out.Frequency = freq
	}

	pos, err := f.PartOfSpeech(filter, resolved)
	if err != nil {
		return nil, err
	}
	if pos.Unavailable != nil {
		out.Skipped = append(out.Skipped, *pos.Unavailable)
	} else {
		out.POS = pos
	}

	pol, err := f.Polarity(resolved)
	if err != nil {
		return nil, err
	}
	out.Polarity = pol
	return out, nil
}
