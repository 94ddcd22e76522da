package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resetFlags restores every flag to its default so invocations don't leak
// state into each other.
func resetFlags(c *cobra.Command) {
	reset := func(fl *pflag.Flag) {
		_ = fl.Value.Set(fl.DefValue)
		fl.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// execute runs the root command with args and returns stdout and the error.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// runCmd is a helper to execute the root command with args.
func runCmd(t *testing.T, args ...string) string {
	t.Helper()
	out, err := execute(t, args...)
	if err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
	return out
}

// isolate points HOME at a temp dir so no user config is read.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func writeInput(t *testing.T, dir, name, body string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

const reviewsCSV = "id,review,stars\n" +
	"1,The food was good and the staff were great.,5\n" +
	"2,Terrible service. The soup was bad.,1\n" +
	"3,A well made dessert.,4\n"

func TestCLI_SummarizeMarkdown(t *testing.T) {
	home := isolate(t)
	path := writeInput(t, home, "reviews.csv", reviewsCSV)

	out := runCmd(t, "summarize", path, "--no-language", "-q")
	for _, want := range []string{
		"[TEXT SUMMARY]",
		"File: " + path,
		"Column: review",
		"Rows: 3",
		"[FREQUENCY]",
		"- Stop words: 179",
		"[PART OF SPEECH]\n- adjective: ",
		"[POLARITY]",
		"- language classifier unavailable: not configured",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "[LANGUAGE]") {
		t.Fatalf("language section should be skipped:\n%s", out)
	}
}

func TestCLI_SummarizeWithoutTextColumn(t *testing.T) {
	home := isolate(t)
	path := writeInput(t, home, "numbers.csv", "a,b\n1,2\n3,4\n")

	out := runCmd(t, "summarize", path, "--no-language", "-q")
	if !strings.Contains(out, "[NOTES]\n- no text column to summarize") {
		t.Fatalf("expected empty-summary note, got:\n%s", out)
	}
}

func TestCLI_SummarizeBatchToDirectory(t *testing.T) {
	home := isolate(t)
	writeInput(t, filepath.Join(home, "d1"), "reviews.csv", reviewsCSV)
	writeInput(t, filepath.Join(home, "d2"), "reviews.csv", reviewsCSV)
	outDir := filepath.Join(home, "out")

	runCmd(t, "summarize", filepath.Join(home, "d*", "reviews.csv"),
		"--no-language", "-q", "--format", "json", "--output", outDir)

	first := filepath.Join(outDir, "reviews.summary.json")
	second := filepath.Join(outDir, "reviews__2.summary.json")
	for _, p := range []string{first, second} {
		b, err := os.ReadFile(p)
		if err != nil {
			t.Fatalf("missing report %s: %v", p, err)
		}
		var decoded struct {
			ID      string `json:"id"`
			Column  string `json:"column"`
			Summary struct {
				Polarity struct {
					Positive int `json:"positive_words"`
				} `json:"polarity"`
			} `json:"summary"`
		}
		if err := json.Unmarshal(b, &decoded); err != nil {
			t.Fatalf("decode %s: %v", p, err)
		}
		if decoded.ID == "" || decoded.Column != "review" {
			t.Fatalf("unexpected envelope in %s: %+v", p, decoded)
		}
		if decoded.Summary.Polarity.Positive < 2 {
			t.Fatalf("expected positive words in %s, got %d", p, decoded.Summary.Polarity.Positive)
		}
	}
}

func TestCLI_Frequency(t *testing.T) {
	home := isolate(t)
	path := writeInput(t, home, "words.csv", "text\na a b\nb c\n")

	out := runCmd(t, "frequency", path, "-c", "text", "--top", "2", "-q")
	if !strings.Contains(out, "[FREQUENCY]") || !strings.Contains(out, "- Frequency: [(2, b), (2, a)]") {
		t.Fatalf("unexpected frequency output:\n%s", out)
	}
}

func TestCLI_PolarityJSONToFile(t *testing.T) {
	home := isolate(t)
	path := writeInput(t, home, "reviews.csv", reviewsCSV)
	dest := filepath.Join(home, "reports", "polarity.json")

	runCmd(t, "polarity", path, "-f", "json", "-o", dest, "-q")
	b, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var res struct {
		Column   string `json:"column"`
		Positive int    `json:"positive_words"`
		Negative int    `json:"negative_words"`
	}
	if err := json.Unmarshal(b, &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Column != "review" || res.Positive == 0 || res.Negative == 0 {
		t.Fatalf("unexpected polarity: %+v", res)
	}
}

func TestCLI_POSFilter(t *testing.T) {
	home := isolate(t)
	path := writeInput(t, home, "reviews.csv", reviewsCSV)

	out := runCmd(t, "pos", path, "--filter", "noun,punctuation", "-q")
	if !strings.Contains(out, "- noun: ") || !strings.Contains(out, "- punctuation: ") {
		t.Fatalf("unexpected pos output:\n%s", out)
	}
	if strings.Contains(out, "- verb: ") {
		t.Fatalf("verb was not requested:\n%s", out)
	}

	if _, err := execute(t, "pos", path, "--filter", "noun,bogus", "-q"); err == nil {
		t.Fatalf("expected invalid filter error")
	}
}

func TestCLI_Language(t *testing.T) {
	home := isolate(t)
	path := writeInput(t, home, "notes.txt",
		"The weather was lovely this morning and everyone went outside.\n"+
			"We walked along the river and talked about the summer holidays.\n")

	runCmd(t, "config", "set", "languages", "en,fr")
	out := runCmd(t, "language", path, "-q")
	if !strings.Contains(out, "- language: English") {
		t.Fatalf("unexpected language output:\n%s", out)
	}
}

func TestCLI_ColumnErrors(t *testing.T) {
	home := isolate(t)
	path := writeInput(t, home, "reviews.csv", reviewsCSV)

	_, err := execute(t, "polarity", path, "-c", "nope", "-q")
	if err == nil || !strings.Contains(err.Error(), `"nope" doesn't exist`) {
		t.Fatalf("expected column-not-found error, got %v", err)
	}

	numbers := writeInput(t, home, "numbers.csv", "a,b\n1,2\n")
	if _, err := execute(t, "frequency", numbers, "-q"); err == nil {
		t.Fatalf("expected missing-column error")
	}

	unsupported := writeInput(t, home, "data.parquet", "x")
	if _, err := execute(t, "summarize", unsupported, "-q"); err == nil {
		t.Fatalf("expected unsupported format error")
	}
}

func TestCLI_Columns(t *testing.T) {
	home := isolate(t)
	path := writeInput(t, home, "reviews.csv", reviewsCSV)

	out := runCmd(t, "columns", path, "-f", "json", "-q")
	var cols struct {
		All  []string `json:"columns"`
		Text []string `json:"text_columns"`
	}
	if err := json.Unmarshal([]byte(out), &cols); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if strings.Join(cols.All, ",") != "id,review,stars" || strings.Join(cols.Text, ",") != "review" {
		t.Fatalf("unexpected columns: %+v", cols)
	}
}

func TestCLI_ConfigSetShow(t *testing.T) {
	home := isolate(t)

	runCmd(t, "config", "set", "top_words", "7")
	runCmd(t, "config", "set", "output_format", "yml")
	if _, err := os.Stat(filepath.Join(home, ".nlpsummarize", "config.yaml")); err != nil {
		t.Fatalf("config not saved: %v", err)
	}
	out := runCmd(t, "config", "show")
	if !strings.Contains(out, "top_words: 7") || !strings.Contains(out, "output_format: yaml") {
		t.Fatalf("unexpected config:\n%s", out)
	}

	for _, args := range [][]string{
		{"config", "set", "bogus", "1"},
		{"config", "set", "top_words", "-1"},
		{"config", "set", "pos_filter", "noun,bogus"},
		{"config", "set", "languages", "en,qq"},
		{"config", "set", "delimiter", "#"},
	} {
		if _, err := execute(t, args...); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}

func TestCLI_LanguageDetectorBuildFailure(t *testing.T) {
	home := isolate(t)
	path := writeInput(t, home, "reviews.csv", reviewsCSV)

	for _, langs := range []string{"xx", "en"} {
		t.Setenv("NLPSUMMARIZE_LANGUAGES", langs)

		out := runCmd(t, "polarity", path, "-q")
		if !strings.Contains(out, "[POLARITY]\n- positive_words: ") {
			t.Fatalf("languages=%s: unexpected polarity output:\n%s", langs, out)
		}

		out = runCmd(t, "summarize", path, "-q")
		for _, want := range []string{"[FREQUENCY]", "[POLARITY]", "- language classifier unavailable: not configured"} {
			if !strings.Contains(out, want) {
				t.Fatalf("languages=%s: expected %q in output:\n%s", langs, want, out)
			}
		}
		if strings.Contains(out, "[LANGUAGE]") {
			t.Fatalf("languages=%s: language section should be skipped:\n%s", langs, out)
		}

		if out := runCmd(t, "language", path, "-q"); out != "" {
			t.Fatalf("languages=%s: expected no language result, got:\n%s", langs, out)
		}
	}
}

func TestCLI_MalformedConfigKeepsDefaults(t *testing.T) {
	home := isolate(t)
	bad := writeInput(t, home, "bad.yaml", "top_words: [unclosed\n")

	out := runCmd(t, "config", "show", "--config", bad)
	for _, want := range []string{"top_words: 3", "language_detection: true", "- en", "output_format: markdown"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in fallback config:\n%s", want, out)
		}
	}
}

func TestCLI_FrequencyRejectsNegativeTop(t *testing.T) {
	home := isolate(t)
	path := writeInput(t, home, "words.csv", "text\na a b\n")

	for _, cmd := range []string{"frequency", "summarize"} {
		_, err := execute(t, cmd, path, "--top", "-1", "--no-language", "-q")
		if err == nil || !strings.Contains(err.Error(), "invalid --top: -1") {
			t.Fatalf("%s: expected invalid --top error, got %v", cmd, err)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"":         zerolog.InfoLevel,
		"trace":    zerolog.TraceLevel,
		"DEBUG":    zerolog.DebugLevel,
		"warn":     zerolog.WarnLevel,
		"fatal":    zerolog.FatalLevel,
		"panic":    zerolog.PanicLevel,
		"disabled": zerolog.Disabled,
	}
	for in, want := range cases {
		got, err := parseLogLevel(in)
		if err != nil || got != want {
			t.Fatalf("parseLogLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if got, err := parseLogLevel("loud"); err == nil || got != zerolog.InfoLevel {
		t.Fatalf("expected error and info fallback, got %v, %v", got, err)
	}

	isolate(t)
	runCmd(t, "config", "set", "log_level", "fatal")
	out := runCmd(t, "config", "show")
	if !strings.Contains(out, "log_level: fatal") {
		t.Fatalf("expected saved level, got:\n%s", out)
	}
	if zerolog.GlobalLevel() != zerolog.FatalLevel {
		t.Fatalf("expected fatal global level, got %v", zerolog.GlobalLevel())
	}
	if _, err := execute(t, "config", "set", "log_level", "loud"); err == nil {
		t.Fatalf("expected invalid log_level error")
	}
}
