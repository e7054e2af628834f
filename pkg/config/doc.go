// Package config provides configuration management for the SureScript
// toolchain.
//
// This package handles loading, validating, and managing configuration from
// YAML files with environment variable overrides. It provides a type-safe
// configuration system with validation and sensible defaults.
//
// # Configuration Loading
//
// Configuration can be loaded in three ways:
//
//  1. From a YAML file only:
//     cfg, err := config.LoadConfig("sur.yaml")
//
//  2. From a YAML file with environment variable overrides:
//     cfg, err := config.LoadConfigWithEnvOverrides("sur.yaml")
//
//  3. Defaults plus environment overrides when no file is given:
//     cfg, err := config.LoadOrDefault("")
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention SUR_SECTION_FIELD.
// For example:
//
//   - SUR_OUTPUT_FORMAT overrides output.format
//   - SUR_LINT_STRICT overrides lint.strict
//   - SUR_LOGGING_LEVEL overrides logging.level
//
// Environment variables always take precedence over file-based configuration.
//
// # Configuration Precedence
//
// Configuration values are applied in the following order (later overrides earlier):
//
//  1. Default values (defined in defaults.go)
//  2. Values from YAML file
//  3. Environment variable overrides
//  4. Validation (fails fast if invalid)
//
// # Singleton Pattern
//
// For application-wide configuration access, use the singleton pattern:
//
//	// At application startup
//	if err := config.Initialize("sur.yaml"); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Anywhere in the application
//	cfg := config.GetConfig()
//	fmt.Println(cfg.Output.Format)
//
// For testing, prefer dependency injection with explicit Config instances
// rather than the global singleton.
//
// # Example Configuration
//
// Here is a complete configuration file:
//
//	parser:
//	  max_file_size: 10485760
//
//	lint:
//	  strict: false
//
//	output:
//	  format: "text"
//
//	watch:
//	  debounce: 500ms
//	  extensions: [".sur"]
//
//	logging:
//	  level: "info"
//	  format: "text"
//
// # Thread Safety
//
// All configuration access is thread-safe. The singleton pattern uses
// read-write locks to allow concurrent reads while protecting against
// concurrent writes during reload operations.
package config
