package textproc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pemistahl/lingua-go"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// ErrUnknownLanguage is returned for codes that do not name a supported
// language.
var ErrUnknownLanguage = errors.New("unknown language code")

// Lingua identifies the language of a text with lingua-go's statistical
// models.
type Lingua struct {
	detector lingua.LanguageDetector
}

// NewLingua builds a classifier restricted to the given ISO 639-1 codes. An
// empty list enables every language lingua supports. Restricting the set
// speeds detection and lowers memory use; at least two codes are required.
func NewLingua(codes []string) (*Lingua, error) {
	builder := lingua.NewLanguageDetectorBuilder()
	if len(codes) == 0 {
		return &Lingua{detector: builder.FromAllLanguages().Build()}, nil
	}
	langs, err := languagesFor(codes)
	if err != nil {
		return nil, err
	}
	if len(langs) < 2 {
		return nil, fmt.Errorf("language detection needs at least two languages, got %d", len(langs))
	}
	return &Lingua{detector: builder.FromLanguages(langs...).Build()}, nil
}

func languagesFor(codes []string) ([]lingua.Language, error) {
	byCode := map[string]lingua.Language{}
	for _, l := range lingua.AllLanguages() {
		byCode[strings.ToLower(l.IsoCode639_1().String())] = l
	}
	seen := map[lingua.Language]bool{}
	var out []lingua.Language
	for _, c := range codes {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		l, ok := byCode[c]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownLanguage, c)
		}
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	return out, nil
}

// Detect returns the lowercase ISO 639-1 code of the most likely language.
// ok is false when no language could be determined.
func (c *Lingua) Detect(text string) (string, bool) {
	if c == nil || c.detector == nil || strings.TrimSpace(text) == "" {
		return "", false
	}
	lang, ok := c.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}

// LanguageName returns the English name for an ISO 639-1 code, or the
// upper-cased code when no name is registered.
func LanguageName(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	tag, err := language.Parse(code)
	if err == nil {
		if name := display.English.Languages().Name(tag); name != "" {
			return name
		}
	}
	return strings.ToUpper(code)
}
