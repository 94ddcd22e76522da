package nlp

import (
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/KaramelBytes/nlpsummarize/internal/textproc"
)

// ColLanguage is the result column holding the language name.
const ColLanguage = "language"

// UnknownLanguage is reported when the classifier cannot decide.
const UnknownLanguage = "Unknown"

// LanguageResult is the detected language of a column.
type LanguageResult struct {
	Column      string       `json:"column,omitempty" yaml:"column,omitempty"`
	Code        string       `json:"code" yaml:"code"`
	Name        string       `json:"name" yaml:"name"`
	Unavailable *Unavailable `json:"unavailable,omitempty" yaml:"unavailable,omitempty"`
}

// Frame renders the result as a one-row DataFrame.
func (r *LanguageResult) Frame() dataframe.DataFrame {
	return dataframe.New(series.New([]string{r.Name}, series.String, ColLanguage))
}

// DetectLanguage classifies the column's cells concatenated without a
// separator and resolves the predicted code to an English language name.
func (f *Frame) DetectLanguage(column string) (*LanguageResult, error) {
	if f.classifier == nil {
		return &LanguageResult{Unavailable: f.unavailable("language classifier", "not configured")}, nil
	}
	start := time.Now()
	column, text, err := f.corpus(column, "")
	if err != nil {
		return nil, err
	}
	res := &LanguageResult{Column: column, Name: UnknownLanguage}
	if code, ok := f.classifier.Detect(text); ok && code != "" {
		res.Code = code
		res.Name = textproc.LanguageName(code)
	}
	f.log.Debug().Str("column", column).Str("code", res.Code).Dur("took", time.Since(start)).Msg("language detection")
	return res, nil
}
