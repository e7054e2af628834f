package sur

import (
	"sargam-hq/surescript/pkg/sur/ast"
	surerrors "sargam-hq/surescript/pkg/sur/errors"
	"sargam-hq/surescript/pkg/sur/format"
	"sargam-hq/surescript/pkg/sur/parser"
	"sargam-hq/surescript/pkg/sur/validator"
)

// Parse parses SureScript source text into a document. Parsing is
// lenient and cannot fail; malformed fragments are skipped and logged.
func Parse(source string) *ast.Document {
	return parser.NewParser().Parse(source)
}

// ParseFile parses the .sur file at the given path. The returned error
// is only ever an I/O failure; the parse itself is lenient.
func ParseFile(path string) (*ast.Document, error) {
	return parser.NewParser().ParseFile(path)
}

// ParseWithDiagnostics parses source text and also returns a record of
// every fragment the parser skipped.
func ParseWithDiagnostics(source string) (*ast.Document, []surerrors.Diagnostic) {
	return parser.NewParser().ParseWithDiagnostics(source)
}

// ParseFileWithDiagnostics parses a .sur file and also returns a record
// of every fragment the parser skipped.
func ParseFileWithDiagnostics(path string) (*ast.Document, []surerrors.Diagnostic, error) {
	return parser.NewParser().ParseFileWithDiagnostics(path)
}

// ParseAndValidate is a convenience function that parses source text
// and validates the result. It returns the document if it is valid, or
// the validation error otherwise. Validation errors carry the
// surrounding source lines as context.
func ParseAndValidate(source string) (*ast.Document, error) {
	doc := Parse(source)
	if err := Validate(doc); err != nil {
		if errList, ok := err.(*surerrors.ErrorList); ok {
			for _, e := range errList.Errors {
				e.Context = surerrors.ExtractContextFromSource(source, e.Location, 2)
			}
		}
		return nil, err
	}
	return doc, nil
}

// ParseAndValidateFile parses and validates a .sur file. Validation
// errors carry the surrounding source lines as context.
func ParseAndValidateFile(path string) (*ast.Document, error) {
	doc, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	if err := Validate(doc); err != nil {
		if errList, ok := err.(*surerrors.ErrorList); ok {
			for _, e := range errList.Errors {
				surerrors.AddContextToError(e)
			}
		}
		return nil, err
	}
	return doc, nil
}

// Validate validates a document against the structural rules.
func Validate(doc *ast.Document) error {
	return validator.NewValidator().Validate(doc)
}

// Format renders a document in canonical notation. Formatting is
// deterministic and idempotent, and its output reparses to a document
// Equal to the input.
func Format(doc *ast.Document) string {
	return format.NewFormatter().Document(doc)
}
