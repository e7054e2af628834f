// Package logging provides structured logging for the toolchain.
//
// # Overview
//
// The logging package wraps Go's standard log/slog package to provide:
//   - Structured logging with JSON, text, and console formats
//   - Configurable log levels (debug, info, warn, error)
//   - Logs on stderr by default, keeping command output on stdout clean
//
// # Usage
//
//	// Create a logger
//	logger, err := logging.New(logging.Config{
//	    Level:  "info",
//	    Format: "text",
//	})
//
//	// Log structured data
//	logger.Warn("skipped malformed fragment",
//	    "location", "song.sur:4:7",
//	    "fragment", "[S R",
//	)
//
//	// Hand the sink to the parser
//	p := parser.NewParser().WithLogger(logger.Slog())
package logging
