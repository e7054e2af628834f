// Package ast provides the document tree definitions for SureScript
// (.sur) notation.
//
// The tree represents the parsed structure of a .sur file, enabling
// validation, formatting, and analysis. Nodes preserve source location
// information for precise error reporting.
//
// # Core Types
//
// Document: Root node containing metadata, scale, and composition
//
// Section: Titled region of the composition holding beats in order
//
// Beat: One rhythmic unit grouping one or more elements
//
// Element: A note, lyrics, or lyrics fused to a note
//
// Note: A pitch symbol with an octave register
//
// Location: Source location (file, line, column)
//
// # Basic Usage
//
// Parse a document and traverse the tree:
//
//	doc := parser.NewParser().Parse(text)
//
//	fmt.Println("Composition:", doc.Name())
//
//	for _, section := range doc.Composition {
//	    fmt.Println("Section:", section.Title)
//	    for _, beat := range section.Beats {
//	        fmt.Println("  beat at", beat.Position, "elements:", beat.ElementCount())
//	    }
//	}
//
// Use the visitor pattern for traversal:
//
//	type beatCounter struct{ n int }
//
//	func (c *beatCounter) VisitDocument(*ast.Document) error { return nil }
//	func (c *beatCounter) VisitSection(*ast.Section) error   { return nil }
//	func (c *beatCounter) VisitBeat(*ast.Beat) error         { c.n++; return nil }
//	func (c *beatCounter) VisitElement(*ast.Element) error   { return nil }
//
//	counter := &beatCounter{}
//	ast.Walk(doc, counter)
//
// # Tree Structure
//
// The tree mirrors the .sur block structure:
//
//	Document
//	├── Metadata (map[string]string, the CONFIG block)
//	├── Scale (map[string]string, the SCALE block)
//	└── Composition ([]*Section)
//	    └── Beats ([]*Beat)
//	        └── Elements ([]*Element)
//	            └── Note (*Note: pitch + octave)
//
// # Equivalence
//
// Document, Section, Beat, and Element provide Equal methods that
// compare musical content only: beat bracketing, grid positions, and
// source locations are presentation and provenance, not content.
// "SRG" and "[S R G]" parse to Equal beats.
//
// # Immutability
//
// Nodes should be treated as immutable after construction. The parser
// and builder assemble the tree once; the validator and formatter
// inspect it without modification.
package ast
