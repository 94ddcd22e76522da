package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/nlpsummarize/internal/config"
)

var (
	cfgFile  string
	logLevel string
	quiet    bool

	// Input and output flags shared by every analysis command; zero values
	// defer to the loaded configuration.
	flagColumn      string
	flagFormat      string
	flagOutput      string
	flagDelimiter   string
	flagMaxRows     int
	flagSheetName   string
	flagSheetIndex  int
	flagPositiveLex string
	flagNegativeLex string
	flagNoLanguage  bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "nlpsummarize",
	Short: "Summarize the free-text column of a CSV, XLSX or text file",
	Long: `nlpsummarize loads a table, picks its text column and reports the dominant
language, sentence and word frequency statistics, part-of-speech proportions
and positive/negative lexicon counts.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)

	f := rootCmd.PersistentFlags()
	f.StringVar(&cfgFile, "config", "", "config file (default is ~/.nlpsummarize/config.yaml)")
	f.StringVar(&logLevel, "log-level", "", "log level: trace|debug|info|warn|error|fatal|panic|disabled (overrides config)")
	f.BoolVarP(&quiet, "quiet", "q", false, "suppress progress and log output")

	f.StringVarP(&flagColumn, "column", "c", "", "text column to analyze; must exist (default: config column, then first text column)")
	f.StringVarP(&flagFormat, "format", "f", "", "output format: markdown|json|yaml|table")
	f.StringVarP(&flagOutput, "output", "o", "", "write output to this path (a directory when summarizing several files)")
	f.StringVar(&flagDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab' | '|'")
	f.IntVar(&flagMaxRows, "max-rows", 0, "maximum rows to load (0 = config value)")
	f.StringVar(&flagSheetName, "sheet-name", "", "XLSX: sheet name to analyze")
	f.IntVar(&flagSheetIndex, "sheet-index", 1, "XLSX: 1-based sheet index (used if --sheet-name not provided)")
	f.StringVar(&flagPositiveLex, "positive-lexicon", "", "positive word list (default: embedded)")
	f.StringVar(&flagNegativeLex, "negative-lexicon", "", "negative word list (default: embedded)")
	f.BoolVar(&flagNoLanguage, "no-language", false, "skip language detection")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = cfgpkg.Defaults()
	}
	cfg = c
	initLogging()
}

// initLogging configures the global logger
func initLogging() {
	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	if quiet {
		level = "disabled"
	}
	lvl, err := parseLogLevel(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠ Warning: %v, using info\n", err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

// parseLogLevel accepts the zerolog level names. Empty means info.
func parseLogLevel(s string) (zerolog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
	return lvl, nil
}
