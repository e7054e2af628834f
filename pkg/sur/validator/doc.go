// Package validator provides structural validation for SureScript
// documents.
//
// Validation is the strict counterpart to the lenient parser. The
// parser accepts anything and skips what it cannot place; the validator
// then reports whether the resulting document is actually usable:
//
//   - CONFIG must carry a non-empty 'name'
//   - the SCALE block must have at least one entry
//   - the composition must have at least one section
//   - every beat must carry a grid position and at least one element
//   - every element must carry a note or lyrics, with a known pitch, an
//     octave in range, and no octave or lyrics on silence/sustain marks
//
// The element-level rules can only be violated by hand-assembled trees;
// parser and builder output satisfies them already.
//
// # Basic Usage
//
//	v := validator.NewValidator()
//	if err := v.Validate(doc); err != nil {
//	    errList := err.(*errors.ErrorList)
//	    for _, e := range errList.Errors {
//	        fmt.Println(e.Error())
//	    }
//	}
//
// Errors accumulate: a document missing both its name and its scale
// reports both problems in one pass. Validation never mutates the
// document.
package validator
