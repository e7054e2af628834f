package errors

import (
	"fmt"

	"sargam-hq/surescript/pkg/sur/ast"
)

// Diagnostic records a fragment the lenient parser skipped and why.
// Diagnostics are not errors: parsing always produces a document, and
// skipped input is reported so tooling (lint, editors) can surface it.
type Diagnostic struct {
	Location ast.Location // Where the skipped fragment started
	Fragment string       // The skipped source text
	Reason   string       // Why it was skipped
}

// String returns a single-line human-readable form of the diagnostic.
func (d Diagnostic) String() string {
	if d.Location.IsValid() {
		return fmt.Sprintf("%s: skipped %q: %s", d.Location, d.Fragment, d.Reason)
	}
	return fmt.Sprintf("skipped %q: %s", d.Fragment, d.Reason)
}
