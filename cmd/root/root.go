// Package root contains the root command for the application
package root

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"fjacquet/finvision/internal/config"
	"fjacquet/finvision/internal/container"
	"fjacquet/finvision/internal/fileutils"
	"fjacquet/finvision/internal/logging"
	"fjacquet/finvision/internal/models"
	"fjacquet/finvision/internal/report"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input      string
	Output     string
	Format     string
	ConfigFile string
	EnvFile    string
	LogLevel   string
}

// EnvFileVariable names the environment variable consulted when --env-file is not given.
const EnvFileVariable = config.EnvPrefix + "_ENV_FILE"

var (
	// Log is the shared logger instance for commands
	Log = logging.NewLogrusAdapter("info", "text")

	// AppConfig is the configuration loaded before any subcommand runs
	AppConfig *config.Config

	// AppContainer holds the wired application dependencies
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "finvision",
		Short: "A CLI tool to extract line items and totals from OCR receipt text.",
		Long: `finvision is a CLI tool that reads OCR-extracted receipt text, extracts
the purchased items with their prices, assigns each item to a category and finds
the final amount of the bill.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to finvision!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: Initialize,
	}

	// SharedFlags holds the values of the persistent flags
	SharedFlags = CommonFlags{}

	initOnce sync.Once
)

// Init initializes the root command and all flags
func Init() {
	initOnce.Do(func() {
		flags := Cmd.PersistentFlags()
		flags.StringVarP(&SharedFlags.Input, "input", "i", "", "Input receipt text file (default: stdin)")
		flags.StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (default: stdout)")
		flags.StringVarP(&SharedFlags.Format, "format", "f", "", "Output format: json, yaml or csv (default from config)")
		flags.StringVar(&SharedFlags.ConfigFile, "config", "", "Config file (default: config.yaml in $HOME/.finvision, .finvision or .)")
		flags.StringVar(&SharedFlags.EnvFile, "env-file", "", "Environment file to load (default: $FINVISION_ENV_FILE, else .env if present)")
		flags.StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level: trace, debug, info, warn or error")
	})
}

// Initialize loads the environment and configuration, applies flag overrides
// and wires the application container.
func Initialize(cmd *cobra.Command, args []string) error {
	envFile := SharedFlags.EnvFile
	if envFile == "" {
		envFile = config.GetEnv(EnvFileVariable, "")
	}
	if _, err := config.LoadEnv(envFile); err != nil {
		return fmt.Errorf("failed to load environment file: %w", err)
	}

	cfg, err := config.InitializeConfigFromFile(SharedFlags.ConfigFile)
	if err != nil {
		return err
	}

	if SharedFlags.LogLevel != "" {
		cfg.Log.Level = SharedFlags.LogLevel
	}
	if SharedFlags.Format != "" {
		cfg.Output.Format = strings.ToLower(SharedFlags.Format)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	app, err := container.NewContainer(cfg)
	if err != nil {
		return err
	}

	AppConfig = cfg
	AppContainer = app
	Log = app.GetLogger()
	return nil
}

// GetContainer returns the application container.
func GetContainer() (*container.Container, error) {
	if AppContainer == nil {
		return nil, fmt.Errorf("container not initialized")
	}
	return AppContainer, nil
}

// ReadInput returns the receipt text from path, or from the command's input
// stream when path is empty. The returned source is the path, or "stdin".
func ReadInput(cmd *cobra.Command, path string) (source, text string, err error) {
	if path == "" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("error reading standard input: %w", err)
		}
		return "stdin", string(data), nil
	}

	data, err := fileutils.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	return path, string(data), nil
}

// WriteOutput writes data to path, or to the command's output stream when
// path is empty.
func WriteOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	return fileutils.WriteFile(path, data, models.PermissionReportFile)
}

// ValidateFormat returns an error for formats the report generator cannot render.
func ValidateFormat(format string) error {
	if !report.IsSupportedFormat(format) {
		return fmt.Errorf("unsupported output format %q (must be one of %s)",
			format, strings.Join(report.SupportedFormats(), ", "))
	}
	return nil
}
