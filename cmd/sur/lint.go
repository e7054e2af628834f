package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sargam-hq/surescript/pkg/cli"
	"sargam-hq/surescript/pkg/sur"
	surerrors "sargam-hq/surescript/pkg/sur/errors"
	"sargam-hq/surescript/pkg/sur/parser"
)

var lintFlags struct {
	file   string
	dir    string
	strict bool
	format string
	watch  bool
}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Validate composition files",
	Long: `Validate SureScript files and report problems.

The lint command parses compositions leniently and performs structural
validation:
  - Fragments the parser had to skip are reported as warnings
  - Missing required metadata ('name'), empty scales, and empty
    compositions are errors
  - Unknown pitch symbols and out-of-range octaves are errors, with
    suggestions where a close valid spelling exists

Examples:
  # Lint single file
  sur lint --file song.sur

  # Lint directory
  sur lint --dir songs/

  # Strict mode (skipped fragments fail the lint)
  sur lint --file song.sur --strict

  # JSON output for CI/CD
  sur lint --file song.sur --format json

  # Re-lint as files change
  sur lint --dir songs/ --watch`,
	RunE: lintFiles,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().StringVarP(&lintFlags.file, "file", "f", "", "composition file to validate")
	lintCmd.Flags().StringVarP(&lintFlags.dir, "dir", "d", "", "directory of composition files")
	lintCmd.Flags().BoolVar(&lintFlags.strict, "strict", false, "treat warnings as errors")
	lintCmd.Flags().StringVar(&lintFlags.format, "format", "", "output format: text, json (default from config)")
	lintCmd.Flags().BoolVar(&lintFlags.watch, "watch", false, "re-lint files as they change")
}

func lintFiles(cmd *cobra.Command, args []string) error {
	cfg, err := loadToolConfig()
	if err != nil {
		return err
	}

	if lintFlags.file == "" && lintFlags.dir == "" {
		return fmt.Errorf("either --file or --dir must be specified")
	}

	strict := lintFlags.strict || cfg.Lint.Strict

	formatName := lintFlags.format
	if formatName == "" {
		formatName = cfg.Output.Format
	}
	outFormat, err := cli.ParseFormat(formatName)
	if err != nil {
		return err
	}

	var explicit []string
	if lintFlags.file != "" {
		explicit = append(explicit, lintFlags.file)
	}
	files, err := collectSurFiles(explicit, lintFlags.dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no composition files found")
	}

	p := newParser(cfg)
	color := !cfg.Output.NoColor

	runOnce := func(paths []string) error {
		results := make([]LintResult, 0, len(paths))
		for _, file := range paths {
			results = append(results, lintFile(p, file))
		}
		if outFormat == cli.FormatJSON {
			return outputLintJSON(results, strict)
		}
		return outputLintText(results, strict, color)
	}

	if lintFlags.watch {
		// Initial pass, then re-lint each changed file.
		if err := runOnce(files); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		return watchFiles(cfg, explicit, lintFlags.dir, func(path string) error {
			return runOnce([]string{path})
		})
	}

	return runOnce(files)
}

// LintResult represents the lint outcome for a single composition file.
type LintResult struct {
	File     string      `json:"file"`
	Valid    bool        `json:"valid"`
	Errors   []LintIssue `json:"errors,omitempty"`
	Warnings []LintIssue `json:"warnings,omitempty"`
}

// LintIssue represents a single lint error or warning.
type LintIssue struct {
	Line       int    `json:"line,omitempty"`
	Column     int    `json:"column,omitempty"`
	Message    string `json:"message"`
	Severity   string `json:"severity"`
	Type       string `json:"type,omitempty"`
	Fragment   string `json:"fragment,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func lintFile(p *parser.Parser, path string) LintResult {
	result := LintResult{
		File:  path,
		Valid: true,
	}

	doc, diags, err := p.ParseFileWithDiagnostics(path)
	if err != nil {
		result.Valid = false

		if surErr, ok := err.(*surerrors.Error); ok {
			result.Errors = append(result.Errors, LintIssue{
				Line:     surErr.Location.Line,
				Column:   surErr.Location.Column,
				Message:  surErr.Message,
				Severity: "error",
				Type:     string(surErr.Type),
			})
		} else {
			result.Errors = append(result.Errors, LintIssue{
				Message:  err.Error(),
				Severity: "error",
			})
		}
		return result
	}

	// Skipped fragments are warnings: the parser recovered, but the
	// author probably wants to know what was dropped.
	for _, d := range diags {
		result.Warnings = append(result.Warnings, LintIssue{
			Line:     d.Location.Line,
			Column:   d.Location.Column,
			Message:  d.Reason,
			Severity: "warning",
			Type:     "syntax",
			Fragment: d.Fragment,
		})
	}

	if err := sur.Validate(doc); err != nil {
		result.Valid = false

		if errList, ok := err.(*surerrors.ErrorList); ok {
			for _, e := range errList.Errors {
				result.Errors = append(result.Errors, LintIssue{
					Line:       e.Location.Line,
					Column:     e.Location.Column,
					Message:    e.Message,
					Severity:   "error",
					Type:       string(e.Type),
					Suggestion: e.Suggestion,
				})
			}
		} else {
			result.Errors = append(result.Errors, LintIssue{
				Message:  err.Error(),
				Severity: "error",
			})
		}
	}

	return result
}

// ANSI color codes for lint marks.
const (
	ansiRed    = "31"
	ansiGreen  = "32"
	ansiYellow = "33"
)

// paint wraps s in an ANSI color sequence when color is enabled.
func paint(s, code string, enabled bool) string {
	if !enabled {
		return s
	}
	return "\033[" + code + "m" + s + "\033[0m"
}

func outputLintText(results []LintResult, strict, color bool) error {
	totalErrors := 0
	totalWarnings := 0

	for _, result := range results {
		fmt.Printf("Checking %s...\n", result.File)

		if len(result.Errors) == 0 && len(result.Warnings) == 0 {
			fmt.Printf("%s parsed cleanly\n", paint("✓", ansiGreen, color))
			fmt.Printf("%s structure valid\n", paint("✓", ansiGreen, color))
		}

		for _, warn := range result.Warnings {
			fmt.Printf("%s  Warning: %s", paint("⚠", ansiYellow, color), warn.Message)
			if warn.Fragment != "" {
				fmt.Printf(" %q", warn.Fragment)
			}
			if warn.Line > 0 {
				fmt.Printf(" (line %d", warn.Line)
				if warn.Column > 0 {
					fmt.Printf(", col %d", warn.Column)
				}
				fmt.Print(")")
			}
			fmt.Println()
			totalWarnings++
		}

		for _, err := range result.Errors {
			fmt.Printf("%s Error: %s", paint("✗", ansiRed, color), err.Message)
			if err.Line > 0 {
				fmt.Printf(" (line %d", err.Line)
				if err.Column > 0 {
					fmt.Printf(", col %d", err.Column)
				}
				fmt.Print(")")
			}
			if err.Type != "" {
				fmt.Printf(" [%s]", err.Type)
			}
			fmt.Println()
			if err.Suggestion != "" {
				fmt.Printf("     suggestion: %s\n", err.Suggestion)
			}
			totalErrors++
		}

		fmt.Println()
	}

	fmt.Println("Summary:")
	fmt.Printf("  %d error(s), %d warning(s)\n", totalErrors, totalWarnings)

	if strict && totalWarnings > 0 {
		fmt.Println("  Strict mode enabled: treating warnings as errors")
		return cli.NewExitError(1, "lint failed")
	}

	if totalErrors > 0 {
		return cli.NewExitError(1, "lint failed")
	}

	return nil
}

func outputLintJSON(results []LintResult, strict bool) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(results); err != nil {
		return err
	}

	for _, result := range results {
		if len(result.Errors) > 0 || (strict && len(result.Warnings) > 0) {
			return cli.NewExitError(1, "lint failed")
		}
	}
	return nil
}
