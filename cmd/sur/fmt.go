package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"sargam-hq/surescript/pkg/cli"
	"sargam-hq/surescript/pkg/config"
	"sargam-hq/surescript/pkg/sur"
	"sargam-hq/surescript/pkg/sur/parser"
	"sargam-hq/surescript/pkg/watcher"
)

var fmtFlags struct {
	write bool
	check bool
	dir   string
	watch bool
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format compositions in canonical notation",
	Long: `Format SureScript files in canonical notation.

Canonical notation uses %%-prefixed block markers, sorts CONFIG and
SCALE entries, collapses all-note beats to their dense spelling (SRG),
and brackets every beat that carries lyrics. Formatting is idempotent,
and reparsing formatted output yields the same document.

Without --write the formatted text is printed to stdout. Beats the
parser had to skip are dropped from the output; run lint first if you
want to see what would be lost.

Examples:
  # Print canonical form
  sur fmt song.sur

  # Rewrite files in place
  sur fmt --write song.sur other.sur

  # Format every .sur file under a directory
  sur fmt --write --dir songs/

  # Fail (exit 1) if anything is not canonically formatted
  sur fmt --check --dir songs/

  # Keep files formatted as you edit
  sur fmt --write --watch --dir songs/`,
	RunE: formatFiles,
}

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().BoolVarP(&fmtFlags.write, "write", "w", false, "rewrite files in place")
	fmtCmd.Flags().BoolVar(&fmtFlags.check, "check", false, "exit non-zero if files are not canonically formatted")
	fmtCmd.Flags().StringVarP(&fmtFlags.dir, "dir", "d", "", "format all .sur files under a directory")
	fmtCmd.Flags().BoolVar(&fmtFlags.watch, "watch", false, "reformat files as they change (requires --write)")
}

func formatFiles(cmd *cobra.Command, args []string) error {
	cfg, err := loadToolConfig()
	if err != nil {
		return err
	}

	if fmtFlags.check && fmtFlags.write {
		return fmt.Errorf("--check and --write are mutually exclusive")
	}
	if fmtFlags.watch && !fmtFlags.write {
		return fmt.Errorf("--watch requires --write")
	}

	files, err := collectSurFiles(args, fmtFlags.dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .sur files found (pass files or --dir)")
	}

	p := newParser(cfg)

	needWork := 0
	for _, file := range files {
		changed, err := formatOne(p, file)
		if err != nil {
			return cli.NewCommandError("fmt", err)
		}
		if changed {
			needWork++
		}
	}

	if fmtFlags.check {
		if needWork > 0 {
			return cli.NewExitError(1, fmt.Sprintf("%d file(s) need formatting", needWork))
		}
		fmt.Printf("✓ %d file(s) already formatted\n", len(files))
		return nil
	}

	if fmtFlags.watch {
		return watchFiles(cfg, args, fmtFlags.dir, func(path string) error {
			_, err := formatOne(p, path)
			return err
		})
	}

	return nil
}

// formatOne formats a single file. It reports whether the file differed
// from its canonical form.
func formatOne(p *parser.Parser, path string) (bool, error) {
	original, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	doc, err := p.ParseFile(path)
	if err != nil {
		return false, err
	}
	formatted := sur.Format(doc)
	changed := string(original) != formatted

	switch {
	case fmtFlags.check:
		if changed {
			fmt.Printf("✗ %s needs formatting\n", path)
		}
	case fmtFlags.write:
		if changed {
			if err := os.WriteFile(path, []byte(formatted), 0644); err != nil {
				return true, err
			}
			fmt.Printf("formatted %s\n", path)
		}
	default:
		fmt.Print(formatted)
	}

	return changed, nil
}

// collectSurFiles gathers the files named explicitly plus every .sur
// file under dir, sorted and deduplicated.
func collectSurFiles(args []string, dir string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, arg := range args {
		add(arg)
	}

	if dir != "" {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			name := d.Name()
			if d.IsDir() {
				if strings.HasPrefix(name, ".") && path != dir {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.EqualFold(filepath.Ext(name), ".sur") && !strings.HasPrefix(name, ".") {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list notation files: %w", err)
		}
	}

	sort.Strings(files)
	return files, nil
}

// watchFiles runs onChange for every change to the watched files until
// interrupted. With --dir the whole tree is watched; otherwise the
// watch target is the single named file.
func watchFiles(cfg *config.Config, args []string, dir string, onChange func(path string) error) error {
	target := dir
	if target == "" {
		if len(args) != 1 {
			return fmt.Errorf("--watch needs --dir or exactly one file")
		}
		target = args[0]
	}

	w, err := watcher.New(&watcher.Config{
		Path:       target,
		Debounce:   cfg.Watch.Debounce,
		Extensions: cfg.Watch.Extensions,
		SkipHidden: true,
	}, slog.Default())
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	ctx, cancel := cli.SetupSignalHandler()
	defer cancel()

	fmt.Printf("watching %s (Ctrl-C to stop)\n", target)
	return w.Watch(ctx, onChange)
}
