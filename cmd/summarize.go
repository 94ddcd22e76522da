package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/nlpsummarize/internal/nlp"
	"github.com/KaramelBytes/nlpsummarize/internal/report"
	"github.com/KaramelBytes/nlpsummarize/internal/utils"
)

var sumTop int

var summarizeCmd = &cobra.Command{
	Use:   "summarize <files...>",
	Short: "Summarize the text column of one or more CSV/TSV/XLSX/TXT/DOCX files",
	Long: `Summarize runs language detection, frequency statistics, part-of-speech
proportions and polarity counts on the text column of each file. Globs are
expanded. With several inputs, --output names a directory that receives one
report per file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := utils.ExpandInputs(args)
		if err != nil {
			return err
		}
		s, err := resolveSettings()
		if err != nil {
			return err
		}
		opts := nlp.SummaryOptions{TopWords: s.summaryN, POS: s.posFilter}
		if cmd.Flags().Changed("top") {
			opts.TopWords = sumTop
		}
		if opts.TopWords < 0 {
			return fmt.Errorf("invalid --top: %d", opts.TopWords)
		}
		builder := newFrameBuilder(s)

		total := len(files)
		for i, path := range files {
			if total > 1 {
				progress(cmd.ErrOrStderr(), "[%d/%d] Processing %s...\n", i+1, total, filepath.Base(path))
			}
			frame, err := builder.open(path)
			if err != nil {
				return err
			}
			sum, err := frame.Summary(opts, s.override)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			rep := report.New(path, frame.Table().Rows(), sum)
			out, err := rep.Render(s.format)
			if err != nil {
				return err
			}
			dest := flagOutput
			if dest != "" && total > 1 {
				if dest, err = reportPath(flagOutput, path, s.format); err != nil {
					return err
				}
			}
			if err := emit(cmd, out, dest); err != nil {
				return err
			}
		}
		return nil
	},
}

// reportPath names a per-input report inside dir, adding a numeric suffix when
// a file of that name already exists.
func reportPath(dir, input string, f report.Format) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	base := filepath.Base(input)
	safe := strings.TrimSuffix(base, filepath.Ext(base))
	ext := extFor(f)
	out := filepath.Join(dir, safe+".summary"+ext)
	if _, err := os.Stat(out); err != nil {
		return out, nil
	}
	for idx := 2; ; idx++ {
		cand := filepath.Join(dir, fmt.Sprintf("%s__%d.summary%s", safe, idx, ext))
		if _, err := os.Stat(cand); os.IsNotExist(err) {
			return cand, nil
		}
	}
}

func init() {
	rootCmd.AddCommand(summarizeCmd)
	summarizeCmd.Flags().IntVar(&sumTop, "top", nlp.SummaryTopWords, "number of frequent words in the summary (default: config summary_top_words)")
}
