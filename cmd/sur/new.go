package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"sargam-hq/surescript/pkg/cli"
	"sargam-hq/surescript/pkg/sur"
	"sargam-hq/surescript/pkg/sur/ast"
	"sargam-hq/surescript/pkg/sur/builder"
)

var newFlags struct {
	name   string
	raag   string
	taal   string
	tempo  string
	output string
	force  bool
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Scaffold a new composition",
	Long: `Create a new composition file with the standard scale and a
starter Sthayi section.

The scaffold carries the full twelve-symbol scale (komal variants in
lowercase, teevra Ma as M) and one ascending row to replace. Each new
composition gets a unique id in its CONFIG block.

Examples:
  # Minimal scaffold; writes eri-aali.sur
  sur new --name "Eri Aali"

  # Set raag, taal, and tempo metadata
  sur new --name "Eri Aali" --raag yaman --taal ektaal --tempo vilambit

  # Choose the output path
  sur new --name "Eri Aali" -o drafts/eri.sur`,
	RunE: newComposition,
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().StringVarP(&newFlags.name, "name", "n", "", "composition name (required)")
	newCmd.Flags().StringVar(&newFlags.raag, "raag", "", "raag metadata")
	newCmd.Flags().StringVar(&newFlags.taal, "taal", "", "taal metadata")
	newCmd.Flags().StringVar(&newFlags.tempo, "tempo", "", "tempo metadata")
	newCmd.Flags().StringVarP(&newFlags.output, "output", "o", "", "output path (default: derived from the name)")
	newCmd.Flags().BoolVar(&newFlags.force, "force", false, "overwrite an existing file")
	_ = newCmd.MarkFlagRequired("name")
}

func newComposition(cmd *cobra.Command, args []string) error {
	if _, err := loadToolConfig(); err != nil {
		return err
	}

	path := newFlags.output
	if path == "" {
		stem := slugify(newFlags.name)
		if stem == "" {
			stem = "composition"
		}
		path = stem + ".sur"
	}

	if !newFlags.force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("refusing to overwrite %s (use --force)", path)
		}
	}

	b := builder.NewBuilder().
		Name(newFlags.name).
		Metadata("id", uuid.NewString()).
		Scale(builder.DefaultScale())
	if newFlags.raag != "" {
		b.Metadata("raag", newFlags.raag)
	}
	if newFlags.taal != "" {
		b.Metadata("taal", newFlags.taal)
	}
	if newFlags.tempo != "" {
		b.Metadata("tempo", newFlags.tempo)
	}

	// Starter row: the ascending scale up to the upper Sa.
	b.Section("Sthayi")
	for _, pitch := range []ast.Pitch{
		ast.PitchSa, ast.PitchRe, ast.PitchGa, ast.PitchMa,
		ast.PitchPa, ast.PitchDha, ast.PitchNi,
	} {
		b.Note(pitch, ast.OctaveMiddle)
	}
	b.Note(ast.PitchSa, ast.OctaveUpper)

	doc, err := b.Build()
	if err != nil {
		return cli.NewCommandError("new", err)
	}

	if err := os.WriteFile(path, []byte(sur.Format(doc)), 0644); err != nil {
		return cli.NewCommandError("new", err)
	}

	fmt.Printf("created %s\n", path)
	return nil
}

// slugify derives a filesystem-friendly file stem from a composition
// name ("Eri Aali Piya Bin" -> "eri-aali-piya-bin").
func slugify(name string) string {
	var sb strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				sb.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(sb.String(), "-")
}
