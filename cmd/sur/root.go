package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"sargam-hq/surescript/pkg/cli"
	"sargam-hq/surescript/pkg/config"
	"sargam-hq/surescript/pkg/sur/parser"
	"sargam-hq/surescript/pkg/telemetry/logging"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "sur",
	Short: "Sur - toolchain for SureScript music notation",
	Long: `Sur is the command-line toolchain for SureScript (.sur) files, a
plain-text notation for Indian classical music.

It provides:
  - Canonical formatting of compositions (fmt)
  - Structural validation with precise locations (lint)
  - Composition summaries and JSON export (inspect)
  - Scaffolding for new compositions (new)

Parsing is lenient: malformed fragments are skipped with a logged
diagnostic instead of failing the whole file, so a stray bracket never
hides the rest of a composition.`,
	Version: Version,

	// Errors are printed once by Execute, with the exit code an
	// ExitError carries. Commands like `fmt --check` fail without
	// usage output.
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default: built-in defaults plus SUR_* environment)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// loadToolConfig loads the toolchain configuration honoring --config,
// SUR_* environment overrides, and --verbose, and installs the
// configured logger as the process default.
func loadToolConfig() (*config.Config, error) {
	if err := config.Initialize(cfgFile); err != nil {
		return nil, cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}
	cfg := config.GetConfig()

	if verbose {
		cfg.Logging.Level = "debug"
	}

	logger, err := logging.New(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.AddSource,
	})
	if err != nil {
		return nil, cli.NewConfigError("logging", err.Error())
	}
	slog.SetDefault(logger.Slog())

	return cfg, nil
}

// newParser builds a parser honoring the configured file size limit.
// Skip diagnostics go to the default logger, which loadToolConfig has
// already installed.
func newParser(cfg *config.Config) *parser.Parser {
	return parser.NewParser().WithMaxFileSize(cfg.Parser.MaxFileSize)
}
