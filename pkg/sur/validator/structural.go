package validator

import (
	"fmt"

	"sargam-hq/surescript/pkg/sur/ast"
	surerrors "sargam-hq/surescript/pkg/sur/errors"
)

// StructuralValidator validates the structural integrity of a document:
// required metadata, a usable scale, a non-empty composition, and
// well-formed beats and elements. The parser and builder produce
// documents that already satisfy the beat- and element-level rules;
// those checks exist for hand-assembled trees.
type StructuralValidator struct {
	errors *surerrors.ErrorList
}

// NewStructuralValidator creates a new structural validator.
func NewStructuralValidator() *StructuralValidator {
	return &StructuralValidator{
		errors: surerrors.NewErrorList(),
	}
}

// Validate performs structural validation on a document.
// It returns an ErrorList containing all structural errors found.
func (v *StructuralValidator) Validate(doc *ast.Document) error {
	v.errors = surerrors.NewErrorList()

	v.validateMetadata(doc)
	v.validateScale(doc)
	v.validateComposition(doc)

	return v.errors.ToError()
}

// validateMetadata checks the CONFIG entries.
func (v *StructuralValidator) validateMetadata(doc *ast.Document) {
	if doc.Name() == "" {
		v.errors.AddErrorWithSuggestion(
			surerrors.ErrorTypeStructural,
			"Missing required 'name' entry in CONFIG",
			doc.Location,
			surerrors.SuggestMissingField("name", "My Composition"),
		)
	}
}

// validateScale checks the SCALE block. Scale symbols themselves are
// unconstrained: conventions with lowercase komal variants ("r", "g")
// are legitimate even though the composition grammar only plays the
// seven uppercase letters.
func (v *StructuralValidator) validateScale(doc *ast.Document) {
	if len(doc.Scale) == 0 {
		v.errors.AddErrorWithSuggestion(
			surerrors.ErrorTypeStructural,
			"Scale is empty",
			doc.Location,
			"Add at least one 'symbol -> name' entry to the SCALE block",
		)
	}
}

// validateComposition checks sections, beats, and elements.
func (v *StructuralValidator) validateComposition(doc *ast.Document) {
	if len(doc.Composition) == 0 {
		v.errors.AddErrorWithSuggestion(
			surerrors.ErrorTypeStructural,
			"Composition has no sections",
			doc.Location,
			"Add a '#SectionTitle' header to the COMPOSITION block",
		)
		return
	}

	for _, section := range doc.Composition {
		for _, beat := range section.Beats {
			v.validateBeat(section, beat)
		}
	}
}

// validateBeat checks one beat and its elements.
func (v *StructuralValidator) validateBeat(section *ast.Section, beat *ast.Beat) {
	if beat.Position == nil {
		v.errors.AddError(
			surerrors.ErrorTypeStructural,
			fmt.Sprintf("Beat in section %q has no grid position", section.Title),
			beat.Location,
		)
	}

	if len(beat.Elements) == 0 {
		v.errors.AddError(
			surerrors.ErrorTypeStructural,
			fmt.Sprintf("Beat in section %q has no elements", section.Title),
			beat.Location,
		)
		return
	}

	for _, el := range beat.Elements {
		v.validateElement(el)
	}
}

// validateElement checks one element and its note.
func (v *StructuralValidator) validateElement(el *ast.Element) {
	if el.IsEmpty() {
		v.errors.AddError(
			surerrors.ErrorTypeStructural,
			"Element carries neither a note nor lyrics",
			el.Location,
		)
		return
	}

	if el.Note == nil {
		return
	}

	if !el.Note.Pitch.IsValid() {
		v.errors.AddErrorWithSuggestion(
			surerrors.ErrorTypeStructural,
			fmt.Sprintf("Unknown pitch symbol %q", string(el.Note.Pitch)),
			el.Location,
			surerrors.SuggestPitch(string(el.Note.Pitch)),
		)
	}

	if !el.Note.Octave.IsValid() {
		v.errors.AddErrorWithSuggestion(
			surerrors.ErrorTypeStructural,
			fmt.Sprintf("Octave %d is out of range", el.Note.Octave),
			el.Location,
			"Valid octaves: -1 (lower), 0 (middle), 1 (upper)",
		)
	}

	if !el.Note.Pitch.IsPitched() && el.Note.Pitch.IsValid() {
		if el.Note.Octave != ast.OctaveMiddle {
			v.errors.AddError(
				surerrors.ErrorTypeStructural,
				fmt.Sprintf("The %q mark cannot carry an octave", string(el.Note.Pitch)),
				el.Location,
			)
		}
		if el.HasLyrics() {
			v.errors.AddError(
				surerrors.ErrorTypeStructural,
				fmt.Sprintf("The %q mark cannot carry lyrics", string(el.Note.Pitch)),
				el.Location,
			)
		}
	}
}
