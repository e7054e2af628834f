/*
Package cli provides command-line interface utilities for the sur command.

The cli package includes output formatters, error types, and signal
handling shared by the sur subcommands.

Output Formatting:

The cli package supports text and JSON output for displaying command
results:

	formatter := cli.NewFormatter(cli.FormatJSON)
	data := LintResult{...}
	if err := formatter.FormatTo(os.Stdout, data); err != nil {
		return err
	}

Exit Codes:

Commands that check files (fmt --check, lint) report failure through
ExitError so main can exit non-zero without cobra printing usage:

	return cli.NewExitError(1, "2 files need formatting")

Signal Handling:

For clean shutdown of watch mode on SIGINT/SIGTERM:

	ctx, cancel := cli.SetupSignalHandler()
	defer cancel()
*/
package cli
