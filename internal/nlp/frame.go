// Package nlp summarizes one free-text column of a table: language, sentence
// and word frequency statistics, part-of-speech proportions and lexicon
// polarity.
package nlp

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/KaramelBytes/nlpsummarize/internal/lexicon"
	"github.com/KaramelBytes/nlpsummarize/internal/stopwords"
	"github.com/KaramelBytes/nlpsummarize/internal/table"
	"github.com/KaramelBytes/nlpsummarize/internal/textproc"
)

// Segmenter splits text into sentences.
type Segmenter interface {
	Sentences(text string) []string
}

// Tagger tokenizes text and assigns each token a universal-tagset category.
type Tagger interface {
	Tag(text string) []textproc.Token
}

// Classifier predicts the ISO 639-1 code of the dominant language of a text.
// ok is false when no language can be determined.
type Classifier interface {
	Detect(text string) (code string, ok bool)
}

// Stopwords reports the size of a stopword list.
type Stopwords interface {
	Count() int
}

// Frame wraps a table with the capabilities needed to summarize its text.
// The default column is chosen once, in NewFrame.
type Frame struct {
	table      *table.Table
	column     string
	segmenter  Segmenter
	tagger     Tagger
	classifier Classifier
	stopwords  Stopwords
	lexicons   lexicon.Source
	log        zerolog.Logger
}

// Option configures a Frame.
type Option func(*frameConfig)

type frameConfig struct {
	column     string
	segmenter  Segmenter
	tagger     Tagger
	classifier Classifier
	stopwords  Stopwords
	lexicons   lexicon.Source
	logger     *zerolog.Logger
}

// WithColumn names the default column. A name missing from the table falls
// back to automatic detection.
func WithColumn(name string) Option {
	return func(c *frameConfig) { c.column = name }
}

// WithSegmenter replaces the sentence segmenter. nil disables frequency
// statistics.
func WithSegmenter(s Segmenter) Option {
	return func(c *frameConfig) { c.segmenter = s }
}

// WithTagger replaces the part-of-speech tagger. nil disables POS proportions.
func WithTagger(t Tagger) Option {
	return func(c *frameConfig) { c.tagger = t }
}

// WithClassifier sets the language classifier. Without one, language detection
// reports itself unavailable.
func WithClassifier(cl Classifier) Option {
	return func(c *frameConfig) { c.classifier = cl }
}

// WithStopwords replaces the stopword list. nil disables frequency statistics.
func WithStopwords(s Stopwords) Option {
	return func(c *frameConfig) { c.stopwords = s }
}

// WithLexicons sets where polarity lexicons are loaded from.
func WithLexicons(src lexicon.Source) Option {
	return func(c *frameConfig) { c.lexicons = src }
}

// WithLogger sets the logger used for notices.
func WithLogger(l zerolog.Logger) Option {
	return func(c *frameConfig) { c.logger = &l }
}

// NewFrame wraps t and resolves its default text column.
func NewFrame(t *table.Table, opts ...Option) *Frame {
	cfg := frameConfig{
		segmenter: textproc.Prose{},
		tagger:    textproc.Prose{},
		stopwords: stopwords.List{},
		lexicons:  lexicon.Default(),
	}
	for _, o := range opts {
		o(&cfg)
	}
	logger := log.Logger
	if cfg.logger != nil {
		logger = *cfg.logger
	}
	f := &Frame{
		table:      t,
		segmenter:  cfg.segmenter,
		tagger:     cfg.tagger,
		classifier: cfg.classifier,
		stopwords:  cfg.stopwords,
		lexicons:   cfg.lexicons,
		log:        logger,
	}
	f.column = resolveDefaultColumn(t, cfg.column, logger)
	return f
}

// resolveDefaultColumn returns name when it exists in t, otherwise the first
// text column, otherwise "".
func resolveDefaultColumn(t *table.Table, name string, logger zerolog.Logger) string {
	if t == nil {
		return ""
	}
	if name != "" && t.HasColumn(name) {
		return name
	}
	logger.Info().Str("requested", name).Msg("column not given or not present; picking one automatically")
	text := t.TextColumns()
	if len(text) == 0 {
		logger.Info().Msg("no column containing text found")
		return ""
	}
	logger.Info().Strs("candidates", text).Str("column", text[0]).Msg("picked first text column")
	return text[0]
}

// Column returns the default column chosen at construction, or "".
func (f *Frame) Column() string { return f.column }

// Table returns the wrapped table.
func (f *Frame) Table() *table.Table { return f.table }

// resolve applies an optional override to the default column and checks that
// the result names an existing column.
func (f *Frame) resolve(override string) (string, error) {
	column := override
	if column == "" {
		column = f.column
	}
	if column == "" {
		return "", ErrMissingColumn
	}
	if f.table == nil || !f.table.HasColumn(column) {
		return "", &ColumnNotFoundError{Column: column}
	}
	return column, nil
}

// cells resolves the column and returns its non-missing values.
func (f *Frame) cells(override string) (string, []string, error) {
	column, err := f.resolve(override)
	if err != nil {
		return "", nil, err
	}
	cells, err := f.table.Cells(column)
	if err != nil {
		return "", nil, &ColumnNotFoundError{Column: column}
	}
	return column, cells, nil
}

// corpus resolves the column and joins its non-missing cells with sep.
func (f *Frame) corpus(override, sep string) (string, string, error) {
	column, cells, err := f.cells(override)
	if err != nil {
		return "", "", err
	}
	return column, strings.Join(cells, sep), nil
}

// unavailable logs and builds the soft-failure marker.
func (f *Frame) unavailable(dependency, reason string) *Unavailable {
	f.log.Warn().Str("dependency", dependency).Str("reason", reason).Msg("dependencies are not met; skipping")
	return &Unavailable{Dependency: dependency, Reason: reason}
}
