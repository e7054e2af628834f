// Package format renders SureScript document trees back into canonical
// notation text.
//
// Formatting is total and deterministic. Every beat gets its minimal
// spelling: all-note beats collapse to the dense compound form ("SRG"
// rather than "[S R G]"), lyrics force the bracketed form, and lyric
// text is quoted only when the bare form would be misread. Metadata
// and scale entries are emitted sorted by key under %%-style markers.
//
// # Basic Usage
//
//	f := format.NewFormatter()
//	text := f.Document(doc)
//
// Format a single beat or line:
//
//	f.Beat(beat)       // "SRG" or "[sa:S re:R]"
//	f.Line(beats)      // "S R [sa:G] -"
//
// # Canonical Form
//
// Formatting is idempotent, and the output always reparses to a
// document Equal to the input:
//
//	text := f.Document(doc)
//	again := f.Document(parser.NewParser().Parse(text))
//	// text == again
package format
