package config

import "time"

// Config is the root configuration structure for the SureScript
// toolchain. It contains all configuration sections for the parser,
// lint checks, command output, watch mode, and logging.
type Config struct {
	// Parser contains configuration for the lenient parser, including
	// the maximum file size it will read.
	Parser ParserConfig `yaml:"parser"`

	// Lint contains configuration for the lint command.
	Lint LintConfig `yaml:"lint"`

	// Output contains configuration for command output formatting.
	Output OutputConfig `yaml:"output"`

	// Watch contains configuration for watch mode, which re-runs a
	// command when notation files change on disk.
	Watch WatchConfig `yaml:"watch"`

	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
}

// ParserConfig contains configuration for the parser.
type ParserConfig struct {
	// MaxFileSize is the maximum size, in bytes, of a .sur file the
	// parser will read. Larger files fail with an I/O error.
	// Default: 10485760 (10MB)
	MaxFileSize int64 `yaml:"max_file_size"`
}

// LintConfig contains configuration for the lint command.
type LintConfig struct {
	// Strict treats skipped fragments as lint failures. When false,
	// skipped fragments are reported as warnings and only structural
	// validation errors fail the lint.
	// Default: false
	Strict bool `yaml:"strict"`
}

// OutputConfig contains configuration for command output.
type OutputConfig struct {
	// Format controls the output format for commands that support it.
	// Options: "text", "json"
	// Default: "text"
	Format string `yaml:"format"`

	// NoColor disables colored terminal output for text format.
	// Default: false (color on)
	NoColor bool `yaml:"no_color"`
}

// WatchConfig contains configuration for watch mode.
type WatchConfig struct {
	// Debounce is how long to wait after the last filesystem event
	// before re-running the command. Editors often emit several events
	// per save.
	// Default: 500ms
	Debounce time.Duration `yaml:"debounce"`

	// Extensions is the list of file extensions to watch.
	// Default: [".sur"]
	Extensions []string `yaml:"extensions"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level to emit.
	// Options: "debug", "info", "warn", "error"
	// Default: "info"
	Level string `yaml:"level"`

	// Format controls the log output format.
	// Options: "json", "text", "console"
	// Default: "text"
	Format string `yaml:"format"`

	// AddSource includes file and line number in log entries.
	// Default: false
	AddSource bool `yaml:"add_source"`
}
