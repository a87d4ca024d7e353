// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"fjacquet/finvision/internal/logging"
	"fjacquet/finvision/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding configuration keys,
// e.g. FINVISION_LOG_LEVEL for log.level.
const EnvPrefix = "FINVISION"

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// CSVConfig holds CSV output settings.
type CSVConfig struct {
	Delimiter      string `mapstructure:"delimiter" yaml:"delimiter"`
	IncludeHeaders bool   `mapstructure:"include_headers" yaml:"include_headers"`
}

// CategoriesConfig points at an optional taxonomy file replacing the built-in one.
type CategoriesConfig struct {
	File string `mapstructure:"file" yaml:"file"`
}

// OutputConfig holds the default report format.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr"`
	Mode string `mapstructure:"mode" yaml:"mode"`
}

// BatchConfig holds batch conversion settings.
type BatchConfig struct {
	Extension string `mapstructure:"extension" yaml:"extension"`
	// Workers bounds concurrent conversions; 0 uses one per CPU.
	Workers int `mapstructure:"workers" yaml:"workers"`
}

// Config represents the complete application configuration
type Config struct {
	Log        LogConfig        `mapstructure:"log" yaml:"log"`
	CSV        CSVConfig        `mapstructure:"csv" yaml:"csv"`
	Categories CategoriesConfig `mapstructure:"categories" yaml:"categories"`
	Output     OutputConfig     `mapstructure:"output" yaml:"output"`
	Server     ServerConfig     `mapstructure:"server" yaml:"server"`
	Batch      BatchConfig      `mapstructure:"batch" yaml:"batch"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then config.yaml from the standard locations, then environment variables.
func InitializeConfig() (*Config, error) {
	return InitializeConfigFromFile("")
}

// InitializeConfigFromFile is like InitializeConfig but reads configFile instead of
// searching the standard locations. An explicit file that cannot be read is an error.
func InitializeConfigFromFile(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.finvision")
		v.AddConfigPath(".finvision")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. Read config file (optional unless given explicitly)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configFile != "" {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the configuration used when nothing overrides the defaults.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var config Config
	// Unmarshalling plain defaults cannot fail.
	_ = v.Unmarshal(&config)
	return &config
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// CSV defaults
	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("csv.include_headers", true)

	// Categories defaults (empty means built-in taxonomy)
	v.SetDefault("categories.file", "")

	// Output defaults
	v.SetDefault("output.format", models.FormatJSON)

	// Server defaults
	v.SetDefault("server.addr", ":8000")
	v.SetDefault("server.mode", "release")

	// Batch defaults
	v.SetDefault("batch.extension", ".txt")
	v.SetDefault("batch.workers", 0)
}

// Validate checks the configuration values, e.g. after command-line overrides.
func (c *Config) Validate() error {
	return validateConfig(c)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len([]rune(config.CSV.Delimiter)) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	switch config.Output.Format {
	case models.FormatCSV, models.FormatJSON, models.FormatYAML:
	default:
		return fmt.Errorf("invalid output format: %s (must be 'csv', 'json' or 'yaml')", config.Output.Format)
	}

	switch config.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid server mode: %s (must be 'debug', 'release' or 'test')", config.Server.Mode)
	}

	if config.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}

	if !strings.HasPrefix(config.Batch.Extension, ".") {
		return fmt.Errorf("batch.extension must start with '.', got: %s", config.Batch.Extension)
	}

	if config.Batch.Workers < 0 {
		return fmt.Errorf("batch.workers must not be negative, got: %d", config.Batch.Workers)
	}

	return nil
}

// ConfigureLoggingFromConfig builds the application logger from the Config struct
func ConfigureLoggingFromConfig(config *Config) logging.Logger {
	return logging.NewLogrusAdapter(config.Log.Level, config.Log.Format)
}

// DelimiterRune returns the CSV delimiter as a rune, or ',' when unset.
func (c *Config) DelimiterRune() rune {
	runes := []rune(c.CSV.Delimiter)
	if len(runes) == 0 {
		return ','
	}
	return runes[0]
}
