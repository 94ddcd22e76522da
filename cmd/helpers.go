package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/nlpsummarize/internal/lexicon"
	"github.com/KaramelBytes/nlpsummarize/internal/nlp"
	"github.com/KaramelBytes/nlpsummarize/internal/report"
	"github.com/KaramelBytes/nlpsummarize/internal/table"
	"github.com/KaramelBytes/nlpsummarize/internal/textproc"
	"github.com/KaramelBytes/nlpsummarize/internal/utils"
)

// settings is the configuration merged with command-line overrides.
type settings struct {
	// column is the configured default; a missing name falls back to the
	// first text column. override comes from --column and must exist.
	column    string
	override  string
	format    report.Format
	load      table.Options
	lexicons  lexicon.Source
	languages []string
	detect    bool
	topWords  int
	summaryN  int
	posFilter []string
}

// resolveSettings applies flags over the loaded configuration.
func resolveSettings() (settings, error) {
	c := cfg
	if c == nil {
		return settings{}, fmt.Errorf("configuration not loaded")
	}
	s := settings{
		column:    c.Column,
		override:  flagColumn,
		load:      table.DefaultOptions(),
		lexicons:  lexicon.Source{PositivePath: c.PositiveLexicon, NegativePath: c.NegativeLexicon},
		languages: c.Languages,
		detect:    c.LanguageDetection && !flagNoLanguage,
		topWords:  c.TopWords,
		summaryN:  c.SummaryTopWords,
	}
	format := c.OutputFormat
	if flagFormat != "" {
		format = flagFormat
	}
	f, err := report.ParseFormat(format)
	if err != nil {
		return settings{}, err
	}
	s.format = f

	if c.MaxRows > 0 {
		s.load.MaxRows = c.MaxRows
	}
	if flagMaxRows > 0 {
		s.load.MaxRows = flagMaxRows
	}
	delim := c.Delimiter
	if flagDelimiter != "" {
		delim = flagDelimiter
	}
	if s.load.Delimiter, err = parseDelimiter(delim); err != nil {
		return settings{}, err
	}
	s.load.SheetName = flagSheetName
	s.load.SheetIndex = flagSheetIndex

	if flagPositiveLex != "" {
		s.lexicons.PositivePath = flagPositiveLex
	}
	if flagNegativeLex != "" {
		s.lexicons.NegativePath = flagNegativeLex
	}

	if len(c.POSFilter) > 0 {
		if s.posFilter, err = nlp.ParseFilter(strings.Join(c.POSFilter, ",")); err != nil {
			return settings{}, fmt.Errorf("config pos_filter: %w", err)
		}
	}
	return s, nil
}

// parseDelimiter maps a flag value to a CSV separator. Empty means sniff by
// extension.
func parseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case ",":
		return ',', nil
	case "\t", "tab":
		return '\t', nil
	case ";":
		return ';', nil
	case "|", "pipe":
		return '|', nil
	}
	return 0, fmt.Errorf("unsupported --delimiter: %s", s)
}

// frameBuilder builds Frames that share one language detector.
type frameBuilder struct {
	s          settings
	classifier *textproc.Lingua
}

// newFrameBuilder builds the detector when enabled. A detector that cannot be
// built leaves language detection unavailable; the other analyses still run.
func newFrameBuilder(s settings) *frameBuilder {
	b := &frameBuilder{s: s}
	if !s.detect {
		return b
	}
	cl, err := textproc.NewLingua(s.languages)
	if err != nil {
		log.Warn().Err(err).Strs("languages", s.languages).Msg("language detection disabled")
		return b
	}
	b.classifier = cl
	return b
}

// open loads a table and wraps it in a Frame.
func (b *frameBuilder) open(path string) (*nlp.Frame, error) {
	t, err := table.Open(path, b.s.load)
	if err != nil {
		return nil, err
	}
	opts := []nlp.Option{
		nlp.WithColumn(b.s.column),
		nlp.WithLexicons(b.s.lexicons),
		nlp.WithLogger(log.Logger.With().Str("file", filepath.Base(path)).Logger()),
	}
	if b.classifier != nil {
		opts = append(opts, nlp.WithClassifier(b.classifier))
	}
	return nlp.NewFrame(t, opts...), nil
}

// emit writes out to path when set, otherwise to the command's stdout.
func emit(cmd *cobra.Command, out []byte, path string) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(ensureNewline(out))
		return err
	}
	if err := utils.SafeWriteFile(path, out); err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "✓ Wrote %s\n", path)
	}
	return nil
}

func ensureNewline(b []byte) []byte {
	if len(b) == 0 || b[len(b)-1] == '\n' {
		return b
	}
	return append(b, '\n')
}

// progress prints a status line unless --quiet is set.
func progress(w io.Writer, format string, args ...any) {
	if quiet {
		return
	}
	fmt.Fprintf(w, format, args...)
}

// extFor is the output file extension for a format.
func extFor(f report.Format) string {
	switch f {
	case report.FormatJSON:
		return ".json"
	case report.FormatYAML:
		return ".yaml"
	case report.FormatTable:
		return ".txt"
	}
	return ".md"
}
