package config

import "time"

// Default values for configuration fields.
const (
	// Parser defaults
	DefaultParserMaxFileSize = int64(10 * 1024 * 1024) // 10MB

	// Lint defaults
	DefaultLintStrict = false

	// Output defaults
	DefaultOutputFormat = "text"

	// Watch defaults
	DefaultWatchDebounce = 500 * time.Millisecond

	// Logging defaults
	DefaultLoggingLevel  = "info"
	DefaultLoggingFormat = "text"
)

// DefaultWatchExtensions is the default list of watched file extensions.
func DefaultWatchExtensions() []string {
	return []string{".sur"}
}

// ApplyDefaults applies default values to a Config struct.
// It sets defaults for any fields that have zero values.
// This function is idempotent and safe to call multiple times.
func ApplyDefaults(cfg *Config) {
	if cfg.Parser.MaxFileSize == 0 {
		cfg.Parser.MaxFileSize = DefaultParserMaxFileSize
	}

	if cfg.Output.Format == "" {
		cfg.Output.Format = DefaultOutputFormat
	}

	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = DefaultWatchDebounce
	}
	if len(cfg.Watch.Extensions) == 0 {
		cfg.Watch.Extensions = DefaultWatchExtensions()
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLoggingFormat
	}
}

// DefaultConfig returns a Config populated with all default values.
// This is what commands run with when no configuration file is given.
func DefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
