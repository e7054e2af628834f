// Package parser provides lenient parsing of SureScript (.sur) notation
// into document trees.
//
// The parser reads .sur text, splits it into module blocks (CONFIG,
// SCALE, COMPOSITION), and assembles the composition's beat lines
// through a four-stage pipeline. It never rejects input: fragments it
// cannot place are skipped, logged, and recorded as diagnostics, and a
// document always comes back.
//
// # Basic Usage
//
// Parse from memory:
//
//	p := parser.NewParser()
//	doc := p.Parse(text)
//
//	fmt.Println("Composition:", doc.Name())
//	fmt.Println("Sections:", doc.SectionCount())
//
// Parse a file (only I/O can fail):
//
//	doc, err := p.ParseFile("songs/bhairavi.sur")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Collect what the parser skipped:
//
//	doc, diags := p.ParseWithDiagnostics(text)
//	for _, d := range diags {
//	    fmt.Println(d)
//	}
//
// # Configuration
//
// Configure limits and logging:
//
//	p := parser.NewParser().
//	    WithMaxFileSize(1 * 1024 * 1024). // 1MB limit for ParseFile
//	    WithLogger(logger)                // skip diagnostics go here
//
// # Parsing Stages
//
// Beat lines flow through four stages:
//
// 1. Tokenizer: lexes a line into NOTE, LYRICS, COLON, bracket, and
// separator tokens. Runs of text are classified whole: a run splits
// into note units only if every byte participates in one ("SRG" is
// three notes, "SaReGa" is one lyric).
//
// 2. Element Builder: fuses LYRICS COLON NOTE triples into single
// elements (lyrics sung on a note). Silence and sustain marks never
// take lyrics.
//
// 3. Beat Assembler: groups elements into beats. Whitespace separates
// beats outside brackets; inside [ ] it separates elements of one beat.
//
// 4. Document Assembler: routes lines to their module blocks, strips
// // comments, tracks sections, and assigns each beat its grid
// position.
//
// # Leniency
//
// Malformed input never aborts a parse. Unknown markers, stray
// brackets and colons, beat lines outside sections, and entries
// missing their separators are each skipped with a diagnostic carrying
// the location, the fragment, and the reason.
package parser
