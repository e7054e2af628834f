package validator

import (
	"sargam-hq/surescript/pkg/sur/ast"
	surerrors "sargam-hq/surescript/pkg/sur/errors"
)

// Validator orchestrates validation passes over a document.
// Validation is the strict counterpart to the lenient parser: it never
// mutates the document, it only reports what is wrong with it.
type Validator struct {
	structural *StructuralValidator
}

// NewValidator creates a new validator with all validation passes.
func NewValidator() *Validator {
	return &Validator{
		structural: NewStructuralValidator(),
	}
}

// Validate runs all validation passes on a document.
// It returns nil for a valid document, or an *errors.ErrorList
// accumulating every rule the document violates.
func (v *Validator) Validate(doc *ast.Document) error {
	errs := surerrors.NewErrorList()

	if err := v.structural.Validate(doc); err != nil {
		if errList, ok := err.(*surerrors.ErrorList); ok {
			errs.Errors = append(errs.Errors, errList.Errors...)
		}
	}

	return errs.ToError()
}

// ValidateStructural runs only structural validation.
func (v *Validator) ValidateStructural(doc *ast.Document) error {
	return v.structural.Validate(doc)
}
