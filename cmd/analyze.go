package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/nlpsummarize/internal/nlp"
	"github.com/KaramelBytes/nlpsummarize/internal/report"
)

var (
	freqTop   int
	posFilter string
)

// analyzer runs one analysis on a frame and returns its result with the
// soft-failure marker, if any.
type analyzer func(cmd *cobra.Command, f *nlp.Frame, s settings) (report.Framer, *nlp.Unavailable, error)

// runAnalyzer loads a single file and renders one analyzer's result.
func runAnalyzer(title string, fn analyzer) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := resolveSettings()
		if err != nil {
			return err
		}
		frame, err := newFrameBuilder(s).open(args[0])
		if err != nil {
			return err
		}
		res, unavailable, err := fn(cmd, frame, s)
		if err != nil {
			return err
		}
		if unavailable != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "⚠ Skipped: %s\n", unavailable.String())
			return nil
		}
		out, err := report.RenderResult(title, res, s.format)
		if err != nil {
			return err
		}
		return emit(cmd, out, flagOutput)
	}
}

var frequencyCmd = &cobra.Command{
	Use:   "frequency <file>",
	Short: "Count sentences and rank the most frequent words of the text column",
	Args:  cobra.ExactArgs(1),
	RunE: runAnalyzer("frequency", func(cmd *cobra.Command, f *nlp.Frame, s settings) (report.Framer, *nlp.Unavailable, error) {
		top := nlp.DefaultTopWords
		if s.topWords > 0 {
			top = s.topWords
		}
		if cmd.Flags().Changed("top") {
			top = freqTop
		}
		if top < 0 {
			return nil, nil, fmt.Errorf("invalid --top: %d", top)
		}
		res, err := f.SentenceStopwords(top, s.override)
		if err != nil {
			return nil, nil, err
		}
		return res, res.Unavailable, nil
	}),
}

var posCmd = &cobra.Command{
	Use:   "pos <file>",
	Short: "Report part-of-speech proportions of the text column",
	Args:  cobra.ExactArgs(1),
	RunE: runAnalyzer("part of speech", func(cmd *cobra.Command, f *nlp.Frame, s settings) (report.Framer, *nlp.Unavailable, error) {
		filter := s.posFilter
		if filter == nil {
			filter = nlp.DefaultPOSFilter
		}
		if cmd.Flags().Changed("filter") {
			parsed, err := nlp.ParseFilter(posFilter)
			if err != nil {
				return nil, nil, err
			}
			filter = parsed
		}
		res, err := f.PartOfSpeech(filter, s.override)
		if err != nil {
			return nil, nil, err
		}
		return res, res.Unavailable, nil
	}),
}

var languageCmd = &cobra.Command{
	Use:   "language <file>",
	Short: "Detect the dominant language of the text column",
	Args:  cobra.ExactArgs(1),
	RunE: runAnalyzer("language", func(_ *cobra.Command, f *nlp.Frame, s settings) (report.Framer, *nlp.Unavailable, error) {
		res, err := f.DetectLanguage(s.override)
		if err != nil {
			return nil, nil, err
		}
		return res, res.Unavailable, nil
	}),
}

var polarityCmd = &cobra.Command{
	Use:   "polarity <file>",
	Short: "Count positive and negative lexicon words in the text column",
	Args:  cobra.ExactArgs(1),
	RunE: runAnalyzer("polarity", func(_ *cobra.Command, f *nlp.Frame, s settings) (report.Framer, *nlp.Unavailable, error) {
		res, err := f.Polarity(s.override)
		if err != nil {
			return nil, nil, err
		}
		return res, res.Unavailable, nil
	}),
}

func init() {
	rootCmd.AddCommand(frequencyCmd, posCmd, languageCmd, polarityCmd)
	frequencyCmd.Flags().IntVar(&freqTop, "top", nlp.DefaultTopWords, "number of frequent words to report (default: config top_words)")
	posCmd.Flags().StringVar(&posFilter, "filter", "", "comma-separated categories, e.g. 'adjective,noun,verb' (empty = all)")
}
