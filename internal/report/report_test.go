package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/nlpsummarize/internal/nlp"
)

func sampleSummary() *nlp.Summary {
	return &nlp.Summary{
		Column:   "review",
		Language: &nlp.LanguageResult{Column: "review", Code: "en", Name: "English"},
		Frequency: &nlp.FrequencyResult{
			Column:    "review",
			Sentences: 2,
			StopWords: 179,
			Top:       []nlp.WordCount{{Count: 2, Word: "b"}, {Count: 2, Word: "a"}},
		},
		POS: &nlp.POSResult{
			Column: "review",
			Tokens: 6,
			Proportions: []nlp.POSProportion{
				{Category: nlp.Adjective, Value: 0.1667},
				{Category: nlp.Noun, Value: 0.3333},
			},
		},
		Polarity: &nlp.PolarityResult{Column: "review", Positive: 3, Negative: 1},
	}
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"":         FormatMarkdown,
		"md":       FormatMarkdown,
		"Markdown": FormatMarkdown,
		"json":     FormatJSON,
		"YML":      FormatYAML,
		"table":    FormatTable,
	}
	for in, want := range cases {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("html")
	assert.Error(t, err)
}

func TestNew_StampsIDAndColumn(t *testing.T) {
	r := New("reviews.csv", 4, sampleSummary())
	_, err := uuid.Parse(r.ID)
	require.NoError(t, err)
	assert.Equal(t, "review", r.Column)
	assert.False(t, r.GeneratedAt.IsZero())

	other := New("reviews.csv", 4, sampleSummary())
	assert.NotEqual(t, r.ID, other.ID)
}

func TestMarkdown_Sections(t *testing.T) {
	r := New("reviews.csv", 4, sampleSummary())
	md := r.Markdown()
	for _, want := range []string{
		"[TEXT SUMMARY]",
		"File: reviews.csv",
		"Column: review",
		"Rows: 4",
		"[LANGUAGE]\n- English (en)",
		"[FREQUENCY]",
		"- Number of sentences: 2",
		"- Stop words: 179",
		"- Top words: [(2, b), (2, a)]",
		"[PART OF SPEECH]\n- adjective: 0.1667\n- noun: 0.3333",
		"[POLARITY]\n- positive_words: 3\n- negative_words: 1",
	} {
		assert.Contains(t, md, want)
	}
	assert.NotContains(t, md, "[NOTES]")
}

func TestMarkdown_EmptyAndSkipped(t *testing.T) {
	md := New("empty.csv", 0, &nlp.Summary{}).Markdown()
	assert.Contains(t, md, "[NOTES]\n- no text column to summarize")
	assert.NotContains(t, md, "[LANGUAGE]")

	s := sampleSummary()
	s.Language = nil
	s.Skipped = []nlp.Unavailable{{Dependency: "language classifier", Reason: "not configured"}}
	md = New("reviews.csv", 4, s).Markdown()
	assert.Contains(t, md, "- language classifier unavailable: not configured")
	assert.NotContains(t, md, "no text column")
}

func TestRender_JSONAndYAML(t *testing.T) {
	r := New("reviews.csv", 4, sampleSummary())

	b, err := r.Render(FormatJSON)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, r.ID, decoded["id"])
	summary := decoded["summary"].(map[string]any)
	assert.Equal(t, "review", summary["column"])
	assert.Equal(t, float64(3), summary["polarity"].(map[string]any)["positive_words"])

	b, err = r.Render(FormatYAML)
	require.NoError(t, err)
	var y map[string]any
	require.NoError(t, yaml.Unmarshal(b, &y))
	assert.Equal(t, "reviews.csv", y["source"])
}

func TestRender_Table(t *testing.T) {
	out, err := New("reviews.csv", 4, sampleSummary()).Render(FormatTable)
	require.NoError(t, err)
	s := string(out)
	assert.True(t, strings.HasPrefix(s, "reviews.csv\n"))
	for _, col := range []string{"language", "Number of sentences", "adjective", "positive_words"} {
		assert.Contains(t, s, col)
	}
	assert.Regexp(t, `(?m)^positive_words\s+3$`, s)
	assert.Regexp(t, `(?m)^Frequency\s+\[\(2, b\), \(2, a\)\]$`, s)
	assert.Regexp(t, `(?m)^adjective\s+0\.1667$`, s)

	out, err = New("empty.csv", 0, nil).Render(FormatTable)
	require.NoError(t, err)
	assert.Equal(t, "empty.csv: no text column to summarize\n", string(out))
}

func TestRenderResult(t *testing.T) {
	res := &nlp.PolarityResult{Column: "review", Positive: 2, Negative: 5}

	md, err := RenderResult("polarity", res, FormatMarkdown)
	require.NoError(t, err)
	assert.Equal(t, "[POLARITY]\n- positive_words: 2\n- negative_words: 5\n", string(md))

	js, err := RenderResult("polarity", res, FormatJSON)
	require.NoError(t, err)
	assert.Contains(t, string(js), `"negative_words": 5`)

	tbl, err := RenderResult("polarity", res, FormatTable)
	require.NoError(t, err)
	assert.Regexp(t, `(?m)^negative_words\s+5$`, string(tbl))
}

func TestColumnsMarkdown(t *testing.T) {
	c := &Columns{Source: "a.csv", Rows: 2, All: []string{"id", "text", " "}, Text: []string{"text"}}
	md := c.Markdown()
	assert.Contains(t, md, "- id: other\n")
	assert.Contains(t, md, "- text: text\n")
	assert.Contains(t, md, "- (unnamed): other\n")
}
