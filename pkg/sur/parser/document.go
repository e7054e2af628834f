package parser

import (
	"log/slog"
	"regexp"
	"strings"

	"sargam-hq/surescript/pkg/sur/ast"
	surerrors "sargam-hq/surescript/pkg/sur/errors"
)

// blockMode tracks which module block the assembler is inside.
type blockMode int

const (
	modePreamble blockMode = iota // before the first marker
	modeConfig
	modeScale
	modeComposition
	modeUnknown // inside a block opened by an unrecognized marker
)

// markerPattern matches a module marker line: "%%CONFIG", "@SCALE",
// "%% composition", and so on. The name match is case-insensitive.
var markerPattern = regexp.MustCompile(`^(?:%%|@)\s*(\S*)\s*$`)

// documentAssembler accumulates a document from source lines, one pass,
// never failing: anything it cannot place is skipped and recorded.
type documentAssembler struct {
	sourcePath string
	logger     *slog.Logger

	doc   *ast.Document
	diags []surerrors.Diagnostic

	mode    blockMode
	section *ast.Section // current section, nil until a header is seen
	row     int          // beat-line ordinal within the current section
}

func newDocumentAssembler(sourcePath string, logger *slog.Logger) *documentAssembler {
	if logger == nil {
		logger = slog.Default()
	}
	return &documentAssembler{
		sourcePath: sourcePath,
		logger:     logger,
		doc:        ast.NewDocument(),
	}
}

// assemble parses the full source text into a document.
func (d *documentAssembler) assemble(source string) *ast.Document {
	d.doc.SourceFile = d.sourcePath
	d.doc.Location = d.location(1, 1)

	lines := strings.Split(source, "\n")
	for i, raw := range lines {
		d.consumeLine(strings.TrimSuffix(raw, "\r"), i+1)
	}
	return d.doc
}

func (d *documentAssembler) consumeLine(raw string, lineNum int) {
	line := stripComment(raw)
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return
	}
	indent := len(line) - len(strings.TrimLeft(line, " \t"))

	if m := markerPattern.FindStringSubmatch(trimmed); m != nil {
		d.enterBlock(m[1], trimmed, lineNum, indent+1)
		return
	}

	switch d.mode {
	case modePreamble:
		d.skip(lineNum, indent+1, trimmed, "content before the first module marker")
	case modeConfig:
		d.consumeConfig(trimmed, lineNum, indent+1)
	case modeScale:
		d.consumeScale(trimmed, lineNum, indent+1)
	case modeComposition:
		d.consumeComposition(trimmed, lineNum, indent+1)
	case modeUnknown:
		// Block already diagnosed at its marker; drop contents quietly.
	}
}

// enterBlock switches the assembler into the named module block.
// Sections reset across COMPOSITION blocks are not desired: a second
// COMPOSITION marker keeps appending to the same composition, and
// repeated CONFIG/SCALE blocks merge into the same maps.
func (d *documentAssembler) enterBlock(name, markerText string, lineNum, col int) {
	switch strings.ToUpper(name) {
	case "CONFIG":
		d.mode = modeConfig
	case "SCALE":
		d.mode = modeScale
	case "COMPOSITION":
		d.mode = modeComposition
	default:
		reason := "unknown module marker"
		if hint := surerrors.SuggestMarker(strings.ToUpper(name)); hint != "" {
			reason += " (" + hint + ")"
		}
		d.skip(lineNum, col, markerText, reason)
		d.mode = modeUnknown
	}
}

// consumeConfig parses one "key: value" metadata entry. Values keep
// everything after the first colon, trimmed, with one surrounding pair
// of quotes removed if present.
func (d *documentAssembler) consumeConfig(line string, lineNum, col int) {
	key, value, found := strings.Cut(line, ":")
	if !found {
		d.skip(lineNum, col, line, "CONFIG entry is not 'key: value'")
		return
	}
	key = strings.TrimSpace(key)
	if key == "" {
		d.skip(lineNum, col, line, "CONFIG entry has an empty key")
		return
	}
	d.doc.Metadata[key] = unquote(strings.TrimSpace(value))
}

// consumeScale parses one "symbol -> name" scale entry.
func (d *documentAssembler) consumeScale(line string, lineNum, col int) {
	symbol, name, found := strings.Cut(line, "->")
	if !found {
		d.skip(lineNum, col, line, "SCALE entry is not 'symbol -> name'")
		return
	}
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		d.skip(lineNum, col, line, "SCALE entry has an empty symbol")
		return
	}
	d.doc.Scale[symbol] = strings.TrimSpace(name)
}

// consumeComposition handles section headers and beat lines.
func (d *documentAssembler) consumeComposition(line string, lineNum, col int) {
	switch {
	case strings.HasPrefix(line, "#"):
		d.section = &ast.Section{
			Title:    strings.TrimSpace(line[1:]),
			Location: d.location(lineNum, col),
		}
		d.doc.Composition = append(d.doc.Composition, d.section)
		d.row = 0

	case strings.HasPrefix(line, "b:"):
		if d.section == nil {
			d.skip(lineNum, col, line, "beat line before any section header")
			return
		}
		d.consumeBeatLine(line[2:], lineNum, col+2)

	default:
		d.skip(lineNum, col, line, "not a section header or beat line")
	}
}

// consumeBeatLine runs the full pipeline over one beat line: tokenize,
// build elements, assemble beats.
func (d *documentAssembler) consumeBeatLine(content string, lineNum, colOff int) {
	tokens, diags := tokenize(content, lineNum, colOff)
	d.record(diags)

	items, diags := buildElements(tokens)
	d.record(diags)

	beats, diags := assembleBeats(items, d.row, lineNum)
	d.record(diags)

	for _, b := range beats {
		b.Location.File = d.sourcePath
		for _, el := range b.Elements {
			el.Location.File = d.sourcePath
		}
	}
	d.section.Beats = append(d.section.Beats, beats...)
	d.row++
}

func (d *documentAssembler) location(line, col int) ast.Location {
	return ast.Location{File: d.sourcePath, Line: line, Column: col}
}

func (d *documentAssembler) skip(line, col int, fragment, reason string) {
	d.record([]surerrors.Diagnostic{{
		Location: ast.Location{Line: line, Column: col},
		Fragment: fragment,
		Reason:   reason,
	}})
}

// record stamps the source path onto diagnostics, logs them, and keeps
// them for the caller.
func (d *documentAssembler) record(diags []surerrors.Diagnostic) {
	for _, diag := range diags {
		diag.Location.File = d.sourcePath
		d.diags = append(d.diags, diag)
		d.logger.Warn("skipped malformed fragment",
			"location", diag.Location.String(),
			"fragment", diag.Fragment,
			"reason", diag.Reason,
		)
	}
}

// stripComment removes a // comment from a line. Comments run to end
// of line. A // inside a quoted lyric is content, not a comment, so
// the scan tracks quote state.
func stripComment(line string) string {
	inQuote := false
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			inQuote = !inQuote
		case '/':
			if !inQuote && i+1 < len(line) && line[i+1] == '/' {
				return line[:i]
			}
		}
	}
	return line
}

// unquote removes one pair of surrounding double quotes, if present.
// CONFIG values are stored unquoted regardless of how the author wrote
// them.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
