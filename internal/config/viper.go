// Package config: Viper-based hierarchical configuration for the audit
// pipeline.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultKeywords are the red-flag narration keywords used when no keyword
// file overrides them.
var DefaultKeywords = []string{
	"ADVISORY", "ADVISE", "MANAGEMENT", "BROKER", "BROKING",
	"CONSULTANCY", "FEES", "WEALTH", "WEALTH MANAGEMENT",
}

// DefaultThreshold is the high-value amount cutoff for the unmatched report,
// in currency units.
const DefaultThreshold = 5000

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Audit struct {
		// BrokerList is the path to the server-local broker name list.
		BrokerList string `mapstructure:"broker_list" yaml:"broker_list"`
		// Threshold is the high-value cutoff for the unmatched report.
		Threshold float64 `mapstructure:"threshold" yaml:"threshold"`
		// Keywords are the red-flag narration keywords.
		Keywords []string `mapstructure:"keywords" yaml:"keywords"`
		// KeywordsFile optionally overrides Keywords from a YAML file.
		KeywordsFile string `mapstructure:"keywords_file" yaml:"keywords_file"`
	} `mapstructure:"audit" yaml:"audit"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config file, then environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.bank-statement-audit")
	v.AddConfigPath(".bank-statement-audit")
	v.AddConfigPath(".")

	v.SetEnvPrefix("AUDIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if config.Audit.KeywordsFile != "" {
		keywords, err := LoadKeywordsFile(config.Audit.KeywordsFile)
		if err != nil {
			return nil, err
		}
		config.Audit.Keywords = keywords
	}
	return &config, nil
}

// LoadKeywordsFile reads a keyword list from a YAML file of the form
// `keywords: [A, B, ...]`.
func LoadKeywordsFile(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keywords file: %w", err)
	}
	var doc struct {
		Keywords []string `yaml:"keywords"`
	}
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("parsing keywords file %s: %w", path, err)
	}
	return doc.Keywords, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("audit.broker_list", "brokers.xlsx")
	v.SetDefault("audit.threshold", DefaultThreshold)
	v.SetDefault("audit.keywords", DefaultKeywords)
	v.SetDefault("audit.keywords_file", "")
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}
	if config.Audit.Threshold < 0 {
		return fmt.Errorf("audit.threshold must not be negative, got: %f", config.Audit.Threshold)
	}
	return nil
}
