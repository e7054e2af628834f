// Package errors provides rich error and diagnostic types for SureScript
// documents.
//
// Two distinct failure families exist. Structural errors come from
// validation: a document is missing its name, has an empty scale, and so
// on. Diagnostics come from lenient parsing: malformed fragments are
// skipped, recorded, and never abort the parse.
//
// # Error Types
//
// ErrorTypeStructural: Document violates a structural rule
//
// ErrorTypeIO: File I/O errors
//
// # Basic Usage
//
// Accumulate multiple errors:
//
//	errList := errors.NewErrorList()
//	errList.AddError(errors.ErrorTypeStructural, "Missing 'name' in CONFIG", location)
//	errList.AddError(errors.ErrorTypeStructural, "Scale is empty", location)
//
//	if errList.HasErrors() {
//	    return errList.ToError()
//	}
//
// # Error Format
//
// Errors are formatted with location, context, and suggestions:
//
//	[structural] Unknown pitch symbol 'Q'
//	  --> songs/bhairavi.sur:15:4
//	  |
//	  -> 15 | Q -> Komal Re
//	  |
//	  = suggestion: Did you mean 'S'?
//
// # Diagnostics
//
// The parser never fails on malformed input; it skips the fragment and
// records a Diagnostic:
//
//	doc, diags := p.ParseWithDiagnostics(text)
//	for _, d := range diags {
//	    fmt.Println(d) // "3:5: skipped \"]\": closing bracket without a matching open"
//	}
//
// # Suggestions
//
// The suggestion generator uses Levenshtein distance to suggest similar
// names when users mistype pitch symbols or module markers:
//
//	errors.SuggestMarker("CONFG") // "Did you mean 'CONFIG'?"
package errors
