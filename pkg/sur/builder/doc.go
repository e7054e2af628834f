// Package builder provides fluent programmatic construction of
// SureScript documents.
//
// The builder is the writing-side counterpart of the parser: where the
// parser turns notation text into a document, the builder assembles the
// same tree from code, assigns grid positions automatically, and
// validates the result on Build.
//
// # Basic Usage
//
//	doc, err := builder.NewBuilder().
//	    Name("Morning Practice").
//	    Metadata("raag", "bhairavi").
//	    Scale(builder.DefaultScale()).
//	    Section("Sthayi").
//	    Note(ast.PitchSa, ast.OctaveMiddle).
//	    Note(ast.PitchRe, ast.OctaveMiddle).
//	    LyricNote("sa", ast.PitchGa, ast.OctaveMiddle).
//	    Rest().
//	    Row().
//	    Compound(
//	        &ast.Note{Pitch: ast.PitchSa},
//	        &ast.Note{Pitch: ast.PitchRe},
//	        &ast.Note{Pitch: ast.PitchGa},
//	    ).
//	    Build()
//
// # Error Handling
//
// Invalid calls do not panic and do not stop the chain; they are
// accumulated and reported together by Build as an *errors.ErrorList.
// Build also runs structural validation, so a built document is always
// a valid one.
package builder
