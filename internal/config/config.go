package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultLanguages is the candidate set for language detection when the
// config does not name one. Restricting the set keeps the detector's memory
// footprint small.
var DefaultLanguages = []string{"en", "es", "fr", "de", "it", "pt", "nl", "ru", "zh", "ja", "ar"}

// Global configuration structure.
type Global struct {
	// Column is the default text column; empty picks the first textual one.
	Column          string   `mapstructure:"column" yaml:"column"`
	TopWords        int      `mapstructure:"top_words" yaml:"top_words"`
	SummaryTopWords int      `mapstructure:"summary_top_words" yaml:"summary_top_words"`
	POSFilter       []string `mapstructure:"pos_filter" yaml:"pos_filter"`

	// Lexicon paths; empty uses the embedded lists.
	PositiveLexicon string `mapstructure:"positive_lexicon" yaml:"positive_lexicon"`
	NegativeLexicon string `mapstructure:"negative_lexicon" yaml:"negative_lexicon"`

	Languages         []string `mapstructure:"languages" yaml:"languages"`
	LanguageDetection bool     `mapstructure:"language_detection" yaml:"language_detection"`

	OutputFormat string `mapstructure:"output_format" yaml:"output_format"`
	Delimiter    string `mapstructure:"delimiter" yaml:"delimiter"`
	MaxRows      int    `mapstructure:"max_rows" yaml:"max_rows"`
	LogLevel     string `mapstructure:"log_level" yaml:"log_level"`
}

// Dir returns ~/.nlpsummarize.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".nlpsummarize"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.nlpsummarize/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		dir, err := Dir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Defaults returns the configuration used when no file or environment
// overrides apply.
func Defaults() *Global {
	v := viper.New()
	setDefaults(v)
	var c Global
	// Defaults are plain values; decoding them cannot fail.
	_ = v.Unmarshal(&c)
	return &c
}

// setDefaults registers every key; env lookups only apply to known keys.
func setDefaults(v *viper.Viper) {
	v.SetDefault("column", "")
	v.SetDefault("top_words", 3)
	v.SetDefault("summary_top_words", 5)
	v.SetDefault("pos_filter", []string{"adjective", "noun", "verb"})
	v.SetDefault("positive_lexicon", "")
	v.SetDefault("negative_lexicon", "")
	v.SetDefault("languages", append([]string(nil), DefaultLanguages...))
	v.SetDefault("language_detection", true)
	v.SetDefault("output_format", "markdown")
	v.SetDefault("delimiter", "")
	v.SetDefault("max_rows", 100000)
	v.SetDefault("log_level", "info")
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults. Command flags are applied on top
// by the caller.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("NLPSUMMARIZE")
	v.AutomaticEnv()
	setDefaults(v)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// optional read
		_ = v.ReadInConfig()
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
