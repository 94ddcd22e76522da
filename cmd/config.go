package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	cfgpkg "github.com/KaramelBytes/nlpsummarize/internal/config"
	"github.com/KaramelBytes/nlpsummarize/internal/nlp"
	"github.com/KaramelBytes/nlpsummarize/internal/report"
	"github.com/KaramelBytes/nlpsummarize/internal/textproc"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set nlpsummarize configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "No config loaded")
			return nil
		}
		b, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(b)
		return err
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		if err := setKey(cfg, key, val); err != nil {
			return err
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

// setKey validates val and assigns it to the named key.
func setKey(c *cfgpkg.Global, key, val string) error {
	switch key {
	case "column":
		c.Column = val
	case "top_words", "summary_top_words", "max_rows":
		i, err := strconv.Atoi(val)
		if err != nil || i < 0 {
			return fmt.Errorf("invalid int for %s: %v", key, val)
		}
		switch key {
		case "top_words":
			c.TopWords = i
		case "summary_top_words":
			c.SummaryTopWords = i
		default:
			c.MaxRows = i
		}
	case "pos_filter":
		filter, err := nlp.ParseFilter(val)
		if err != nil {
			return err
		}
		c.POSFilter = filter
	case "positive_lexicon":
		c.PositiveLexicon = val
	case "negative_lexicon":
		c.NegativeLexicon = val
	case "languages":
		codes := splitList(val)
		if len(codes) > 0 {
			if _, err := textproc.NewLingua(codes); err != nil {
				return err
			}
		}
		c.Languages = codes
	case "language_detection":
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("invalid bool for language_detection: %v", val)
		}
		c.LanguageDetection = b
	case "output_format":
		f, err := report.ParseFormat(val)
		if err != nil {
			return err
		}
		c.OutputFormat = string(f)
	case "delimiter":
		if _, err := parseDelimiter(val); err != nil {
			return err
		}
		c.Delimiter = val
	case "log_level":
		if _, err := parseLogLevel(val); err != nil {
			return fmt.Errorf("invalid log_level: %s", val)
		}
		c.LogLevel = strings.ToLower(val)
	default:
		return fmt.Errorf("unknown key: %s", key)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, strings.ToLower(p))
		}
	}
	return out
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
