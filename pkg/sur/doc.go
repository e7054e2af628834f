// Package sur provides parsing, formatting, validation, and
// construction for SureScript (.sur) music notation.
//
// SureScript is a plain-text format for writing Hindustani classical
// compositions: sargam notes with octave marks, lyrics, and rhythmic
// beat grouping, organized into CONFIG, SCALE, and COMPOSITION blocks.
//
// # Architecture
//
// The package is organized into subpackages:
//
// - ast: document tree definitions (Document, Section, Beat, Element, Note)
//
// - parser: lenient text-to-tree parsing with skip diagnostics
//
// - format: canonical tree-to-text rendering
//
// - builder: fluent programmatic document construction
//
// - validator: structural validation
//
// - errors: rich error and diagnostic types with locations and suggestions
//
// # Basic Usage
//
// Parse, validate, and reformat a document:
//
//	doc, err := sur.ParseAndValidateFile("songs/bhairavi.sur")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Composition:", doc.Name())
//	fmt.Print(sur.Format(doc))
//
// # Document Structure
//
// A .sur document consists of three marked blocks:
//
//	%%CONFIG
//	name: Evening Practice
//	raag: yaman
//	%%SCALE
//	S -> Sa
//	R -> Shuddha Re
//	%%COMPOSITION
//	#Sthayi
//	b: S R G [sa:M] - SRG
//
// On a beat line, whitespace separates beats, brackets group several
// elements into one beat, "lyrics:note" fuses a lyric to its note,
// "-" is silence, "*" sustains the previous note, and octave marks
// are a leading dot (lower) or trailing apostrophe (upper).
//
// # Leniency and Validation
//
// Parsing never fails: anything malformed is skipped, logged, and
// recorded as a diagnostic. Validation is the strict step, reporting
// structural problems (missing name, empty scale, no sections,
// unpositioned beats) as an accumulated error list:
//
//	doc := sur.Parse(text)
//	if err := sur.Validate(doc); err != nil {
//	    errList := err.(*errors.ErrorList)
//	    for _, e := range errList.Errors {
//	        fmt.Println(e.Error())
//	    }
//	}
//
// # Round Trips
//
// Format output is canonical: parsing it and formatting again yields
// byte-identical text, and the reparsed document is Equal to the
// original (beat bracketing and grid positions aside, which are
// presentation and provenance rather than content).
package sur
