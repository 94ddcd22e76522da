// Package report wraps a text summary with run metadata and renders it as
// Markdown, JSON, YAML or a plain table.
package report

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/nlpsummarize/internal/nlp"
	"github.com/KaramelBytes/nlpsummarize/internal/utils"
)

// Format selects an output rendering.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatTable    Format = "table"
)

// ParseFormat accepts a format name, case-insensitively, plus the aliases
// "md" and "yml". Empty selects Markdown.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "table":
		return FormatTable, nil
	}
	return "", fmt.Errorf("unsupported format: %s (use markdown|json|yaml|table)", s)
}

// Report is one summarized source.
type Report struct {
	ID          string       `json:"id" yaml:"id"`
	Source      string       `json:"source" yaml:"source"`
	Column      string       `json:"column,omitempty" yaml:"column,omitempty"`
	Rows        int          `json:"rows" yaml:"rows"`
	GeneratedAt time.Time    `json:"generated_at" yaml:"generated_at"`
	Summary     *nlp.Summary `json:"summary" yaml:"summary"`
}

// New stamps a summary with a fresh run ID and the current time.
func New(source string, rows int, s *nlp.Summary) *Report {
	if s == nil {
		s = &nlp.Summary{}
	}
	return &Report{
		ID:          uuid.NewString(),
		Source:      source,
		Column:      s.Column,
		Rows:        rows,
		GeneratedAt: time.Now().UTC(),
		Summary:     s,
	}
}

// Render encodes the report in the requested format.
func (r *Report) Render(f Format) ([]byte, error) {
	switch f {
	case FormatMarkdown, "":
		return []byte(r.Markdown()), nil
	case FormatTable:
		return []byte(r.Table()), nil
	}
	return Encode(r, f)
}

// Markdown renders a compact bracketed-section report.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("[TEXT SUMMARY]\n")
	if r.Source != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", r.Source))
	}
	if r.Column != "" {
		b.WriteString(fmt.Sprintf("Column: %s\n", safeVal(r.Column)))
	}
	b.WriteString(fmt.Sprintf("Rows: %d\n", r.Rows))
	b.WriteString(fmt.Sprintf("Generated: %s\n", r.GeneratedAt.Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf("Run: %s\n", r.ID))

	s := r.Summary
	if s.Language != nil {
		b.WriteString("\n[LANGUAGE]\n")
		if s.Language.Code != "" {
			b.WriteString(fmt.Sprintf("- %s (%s)\n", s.Language.Name, s.Language.Code))
		} else {
			b.WriteString(fmt.Sprintf("- %s\n", s.Language.Name))
		}
	}
	if s.Frequency != nil {
		b.WriteString("\n[FREQUENCY]\n")
		b.WriteString(fmt.Sprintf("- %s: %d\n", nlp.ColSentences, s.Frequency.Sentences))
		b.WriteString(fmt.Sprintf("- %s: %d\n", nlp.ColStopWords, s.Frequency.StopWords))
		b.WriteString(fmt.Sprintf("- Top words: %s\n", safeVal(s.Frequency.FrequencyString())))
	}
	if s.POS != nil && len(s.POS.Proportions) > 0 {
		b.WriteString("\n[PART OF SPEECH]\n")
		for _, p := range s.POS.Proportions {
			b.WriteString(fmt.Sprintf("- %s: %.4f\n", p.Category, p.Value))
		}
	}
	if s.Polarity != nil {
		b.WriteString("\n[POLARITY]\n")
		b.WriteString(fmt.Sprintf("- %s: %d\n", nlp.ColPositive, s.Polarity.Positive))
		b.WriteString(fmt.Sprintf("- %s: %d\n", nlp.ColNegative, s.Polarity.Negative))
	}

	var notes []string
	if s.Empty() {
		notes = append(notes, "no text column to summarize")
	}
	for i := range s.Skipped {
		notes = append(notes, s.Skipped[i].String())
	}
	if len(notes) > 0 {
		b.WriteString("\n[NOTES]\n")
		for _, n := range notes {
			b.WriteString("- ")
			b.WriteString(n)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Table renders the summary's one-row frame transposed, one result column
// per line.
func (r *Report) Table() string {
	if r.Summary.Empty() {
		return fmt.Sprintf("%s: no text column to summarize\n", r.Source)
	}
	return fmt.Sprintf("%s\n%s", r.Source, frameTable(r.Summary.Frame()))
}

// Encode marshals v as JSON or YAML.
func Encode(v any, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		b, err := utils.PrettyJSON(v)
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	case FormatYAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("marshal yaml: %w", err)
		}
		return b, nil
	}
	return nil, fmt.Errorf("format %s cannot encode values", f)
}

// Framer is a result that lays itself out as a one-row DataFrame.
type Framer interface {
	Frame() dataframe.DataFrame
}

// RenderResult renders a single analyzer result. Markdown lists each column of
// the result frame under a bracketed title.
func RenderResult(title string, v Framer, f Format) ([]byte, error) {
	switch f {
	case FormatJSON, FormatYAML:
		return Encode(v, f)
	case FormatTable:
		return []byte(frameTable(v.Frame())), nil
	}
	df := v.Frame()
	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s]\n", strings.ToUpper(title)))
	for _, kv := range frameRow(df) {
		b.WriteString(fmt.Sprintf("- %s: %s\n", kv[0], safeVal(kv[1])))
	}
	return []byte(b.String()), nil
}

// frameRow returns name/value pairs of the first row in column order.
func frameRow(df dataframe.DataFrame) [][2]string {
	if df.Nrow() == 0 {
		return nil
	}
	names := df.Names()
	out := make([][2]string, 0, len(names))
	for _, n := range names {
		col := df.Col(n)
		val := col.Elem(0).String()
		if col.Type() == series.Float && !col.Elem(0).IsNA() {
			val = fmt.Sprintf("%.4f", col.Elem(0).Float())
		}
		out = append(out, [2]string{n, val})
	}
	return out
}

// frameTable aligns the first row of df as name/value pairs.
func frameTable(df dataframe.DataFrame) string {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "COLUMN\tVALUE")
	for _, kv := range frameRow(df) {
		fmt.Fprintf(tw, "%s\t%s\n", kv[0], safeVal(kv[1]))
	}
	_ = tw.Flush()
	return b.String()
}

// Columns describes the columns of a table for listing.
type Columns struct {
	Source string   `json:"source" yaml:"source"`
	Rows   int      `json:"rows" yaml:"rows"`
	All    []string `json:"columns" yaml:"columns"`
	Text   []string `json:"text_columns" yaml:"text_columns"`
}

// Markdown lists the columns, marking textual ones.
func (c *Columns) Markdown() string {
	text := make(map[string]bool, len(c.Text))
	for _, t := range c.Text {
		text[t] = true
	}
	var b strings.Builder
	b.WriteString("[COLUMNS]\n")
	b.WriteString(fmt.Sprintf("File: %s\nRows: %d\n", c.Source, c.Rows))
	for _, n := range c.All {
		kind := "other"
		if text[n] {
			kind = "text"
		}
		b.WriteString(fmt.Sprintf("- %s: %s\n", safeName(n), kind))
	}
	return b.String()
}

func safeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "(unnamed)"
	}
	return s
}

func safeVal(s string) string { return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/") }
