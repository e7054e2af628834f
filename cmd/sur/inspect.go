package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"sargam-hq/surescript/pkg/cli"
	"sargam-hq/surescript/pkg/sur/ast"
	"sargam-hq/surescript/pkg/sur/format"
)

var inspectFlags struct {
	file   string
	format string
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Summarize a composition",
	Long: `Parse a composition and print what the document contains.

Text output summarizes the metadata, scale, and per-section beat counts.
JSON output exports the whole document, beat by beat, with each beat's
canonical notation alongside its elements.

Examples:
  # Human-readable summary
  sur inspect --file song.sur

  # Full document as JSON
  sur inspect --file song.sur --format json`,
	RunE: inspectFile,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVarP(&inspectFlags.file, "file", "f", "", "composition file to inspect")
	inspectCmd.Flags().StringVar(&inspectFlags.format, "format", "", "output format: text, json (default from config)")
	_ = inspectCmd.MarkFlagRequired("file")
}

// DocumentReport is the JSON export of a parsed composition.
type DocumentReport struct {
	File     string            `json:"file"`
	Name     string            `json:"name"`
	Metadata map[string]string `json:"metadata"`
	Scale    map[string]string `json:"scale"`
	Sections []SectionReport   `json:"sections"`
	Beats    int               `json:"beats"`
	Elements int               `json:"elements"`
	Skipped  int               `json:"skipped_fragments"`
}

// SectionReport describes one section of the composition.
type SectionReport struct {
	Title string       `json:"title"`
	Rows  int          `json:"rows"`
	Beats []BeatReport `json:"beats"`
}

// BeatReport describes one beat with its canonical notation.
type BeatReport struct {
	Position string          `json:"position,omitempty"`
	Notation string          `json:"notation"`
	Elements []ElementReport `json:"elements"`
}

// ElementReport describes one element of a beat.
type ElementReport struct {
	Note   string `json:"note,omitempty"`
	Lyrics string `json:"lyrics,omitempty"`
}

func inspectFile(cmd *cobra.Command, args []string) error {
	cfg, err := loadToolConfig()
	if err != nil {
		return err
	}

	formatName := inspectFlags.format
	if formatName == "" {
		formatName = cfg.Output.Format
	}
	outFormat, err := cli.ParseFormat(formatName)
	if err != nil {
		return err
	}

	doc, diags, err := newParser(cfg).ParseFileWithDiagnostics(inspectFlags.file)
	if err != nil {
		return cli.NewCommandError("inspect", err)
	}

	report := buildReport(doc, len(diags))

	if outFormat == cli.FormatJSON {
		return cli.NewFormatter(outFormat).FormatTo(os.Stdout, report)
	}

	printReport(report)
	return nil
}

func buildReport(doc *ast.Document, skipped int) DocumentReport {
	f := format.NewFormatter()

	report := DocumentReport{
		File:     doc.SourceFile,
		Name:     doc.Name(),
		Metadata: doc.Metadata,
		Scale:    doc.Scale,
		Beats:    doc.BeatCount(),
		Elements: doc.ElementCount(),
		Skipped:  skipped,
	}

	for _, section := range doc.Composition {
		sr := SectionReport{
			Title: section.Title,
			Rows:  section.RowCount(),
		}
		for _, beat := range section.Beats {
			br := BeatReport{
				Notation: f.Beat(beat),
			}
			if beat.Position != nil {
				br.Position = beat.Position.String()
			}
			for _, el := range beat.Elements {
				er := ElementReport{Lyrics: el.Lyrics}
				if el.Note != nil {
					er.Note = el.Note.String()
				}
				br.Elements = append(br.Elements, er)
			}
			sr.Beats = append(sr.Beats, br)
		}
		report.Sections = append(report.Sections, sr)
	}

	return report
}

func printReport(report DocumentReport) {
	name := report.Name
	if name == "" {
		name = "<unnamed>"
	}
	fmt.Printf("Document: %s\n", name)
	if report.File != "" {
		fmt.Printf("Source:   %s\n", report.File)
	}

	fmt.Printf("Metadata: %d entries\n", len(report.Metadata))
	for _, key := range sortedReportKeys(report.Metadata) {
		fmt.Printf("  %s: %s\n", key, report.Metadata[key])
	}

	fmt.Printf("Scale:    %d symbols\n", len(report.Scale))
	for _, symbol := range sortedReportKeys(report.Scale) {
		fmt.Printf("  %s -> %s\n", symbol, report.Scale[symbol])
	}

	fmt.Printf("Sections: %d\n", len(report.Sections))
	for _, section := range report.Sections {
		fmt.Printf("  #%s: %d row(s), %d beat(s)\n", section.Title, section.Rows, len(section.Beats))
	}

	fmt.Printf("Total:    %d beat(s), %d element(s)\n", report.Beats, report.Elements)
	if report.Skipped > 0 {
		fmt.Printf("Skipped:  %d malformed fragment(s) (run `sur lint` for details)\n", report.Skipped)
	}
}

func sortedReportKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
