package format

import (
	"fmt"
	"sort"
	"strings"

	"sargam-hq/surescript/pkg/sur/ast"
	"sargam-hq/surescript/pkg/sur/parser"
)

// Formatter renders document trees back into canonical SureScript text.
// The output is deterministic: formatting a document twice, or
// formatting what its own output parses to, yields identical text.
type Formatter struct{}

// NewFormatter creates a new canonical formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Note renders a note in canonical notation, octave mark included.
func (f *Formatter) Note(n *ast.Note) string {
	return n.String()
}

// Element renders one element: the note alone, the lyric alone, or the
// fused lyric:note pair. Lyric text is quoted only when the bare form
// would be misread (whitespace, brackets, colons, quotes, silence or
// sustain marks, comment slashes, or text that would lex as notes).
func (f *Formatter) Element(el *ast.Element) string {
	switch {
	case el.HasLyrics() && el.HasNote():
		return quoteLyrics(el.Lyrics) + ":" + el.Note.String()
	case el.HasLyrics():
		return quoteLyrics(el.Lyrics)
	case el.HasNote():
		return el.Note.String()
	default:
		return ""
	}
}

// Beat renders one beat in its minimal form. A beat whose every
// element is a bare note collapses to the dense compound form ("SRG");
// any lyrics force the bracketed form ("[sa:S re:R]"). Whether the
// source happened to use brackets is not consulted.
func (f *Formatter) Beat(b *ast.Beat) string {
	if b == nil || len(b.Elements) == 0 {
		return ""
	}
	if b.AllNotes() {
		var sb strings.Builder
		for _, el := range b.Elements {
			sb.WriteString(el.Note.String())
		}
		return sb.String()
	}

	parts := make([]string, 0, len(b.Elements))
	for _, el := range b.Elements {
		if s := f.Element(el); s != "" {
			parts = append(parts, s)
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Line renders a row of beats joined by single spaces, without the
// "b:" prefix.
func (f *Formatter) Line(beats []*ast.Beat) string {
	parts := make([]string, 0, len(beats))
	for _, b := range beats {
		if s := f.Beat(b); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// Section renders a section header and its beat lines, one "b:" line
// per beat row.
func (f *Formatter) Section(s *ast.Section) string {
	var sb strings.Builder
	f.writeSection(&sb, s)
	return sb.String()
}

// Document renders the whole document in canonical form: %%-style
// markers, metadata and scale entries sorted by key, unquoted values,
// and the composition with normalized beat spelling. The result ends
// with a newline and always reparses to a document Equal to the input.
func (f *Formatter) Document(doc *ast.Document) string {
	var sb strings.Builder

	sb.WriteString("%%CONFIG\n")
	for _, key := range sortedKeys(doc.Metadata) {
		fmt.Fprintf(&sb, "%s: %s\n", key, doc.Metadata[key])
	}

	sb.WriteString("%%SCALE\n")
	for _, sym := range sortedKeys(doc.Scale) {
		fmt.Fprintf(&sb, "%s -> %s\n", sym, doc.Scale[sym])
	}

	sb.WriteString("%%COMPOSITION\n")
	for _, section := range doc.Composition {
		f.writeSection(&sb, section)
	}

	return sb.String()
}

func (f *Formatter) writeSection(sb *strings.Builder, s *ast.Section) {
	fmt.Fprintf(sb, "#%s\n", s.Title)
	for _, row := range rowsOf(s) {
		if line := f.Line(row); line != "" {
			fmt.Fprintf(sb, "b: %s\n", line)
		}
	}
}

// rowsOf groups a section's beats by their position row, preserving
// slice order within a row. Beats without positions belong to row 0.
func rowsOf(s *ast.Section) [][]*ast.Beat {
	byRow := make(map[int][]*ast.Beat)
	for _, b := range s.Beats {
		row := 0
		if b.Position != nil {
			row = b.Position.Row
		}
		byRow[row] = append(byRow[row], b)
	}

	rows := make([]int, 0, len(byRow))
	for row := range byRow {
		rows = append(rows, row)
	}
	sort.Ints(rows)

	out := make([][]*ast.Beat, 0, len(rows))
	for _, row := range rows {
		out = append(out, byRow[row])
	}
	return out
}

// quoteLyrics wraps lyric text in quotes when the bare form would not
// survive a reparse as the same lyric.
func quoteLyrics(text string) string {
	if needsQuotes(text) {
		return `"` + text + `"`
	}
	return text
}

func needsQuotes(text string) bool {
	if strings.ContainsAny(text, " \t[]:\"-*") {
		return true
	}
	if strings.Contains(text, "//") {
		return true
	}
	// Bare text that lexes as notes ("SRG") must be quoted to stay
	// lyrics.
	return parser.IsNoteRun(text)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
