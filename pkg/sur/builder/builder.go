package builder

import (
	"fmt"

	"sargam-hq/surescript/pkg/sur/ast"
	surerrors "sargam-hq/surescript/pkg/sur/errors"
	"sargam-hq/surescript/pkg/sur/validator"
)

// Builder assembles a document programmatically. Calls chain; mistakes
// (a beat before any section, an empty lyric, a silence with lyrics)
// are accumulated and reported together by Build rather than panicking
// mid-chain. Grid positions are assigned automatically: each beat takes
// the next index on the current row, Row starts the next row, and
// Section resets to row zero.
//
// A Builder is single-use: call Build once.
type Builder struct {
	doc     *ast.Document
	section *ast.Section
	row     int
	index   int
	errors  *surerrors.ErrorList
}

// NewBuilder creates an empty document builder.
func NewBuilder() *Builder {
	return &Builder{
		doc:    ast.NewDocument(),
		errors: surerrors.NewErrorList(),
	}
}

// Metadata sets one CONFIG entry.
func (b *Builder) Metadata(key, value string) *Builder {
	if key == "" {
		b.fail("metadata key must be non-empty")
		return b
	}
	b.doc.Metadata[key] = value
	return b
}

// Name sets the composition name (the required CONFIG 'name' entry).
func (b *Builder) Name(name string) *Builder {
	return b.Metadata("name", name)
}

// ScaleEntry adds one SCALE entry mapping a symbol to its name.
func (b *Builder) ScaleEntry(symbol, name string) *Builder {
	if symbol == "" {
		b.fail("scale symbol must be non-empty")
		return b
	}
	b.doc.Scale[symbol] = name
	return b
}

// Scale adds every entry of the given map to the scale.
func (b *Builder) Scale(entries map[string]string) *Builder {
	for symbol, name := range entries {
		b.ScaleEntry(symbol, name)
	}
	return b
}

// Section starts a new titled section. Subsequent beats land in it.
func (b *Builder) Section(title string) *Builder {
	b.section = &ast.Section{Title: title}
	b.doc.Composition = append(b.doc.Composition, b.section)
	b.row = 0
	b.index = 0
	return b
}

// Row starts the next beat row of the current section.
func (b *Builder) Row() *Builder {
	if b.section == nil {
		b.fail("Row called before any Section")
		return b
	}
	b.row++
	b.index = 0
	return b
}

// Note adds a one-note beat. The pitch must be one of the seven sargam
// letters; use Rest and Sustain for the non-pitched marks.
func (b *Builder) Note(pitch ast.Pitch, octave ast.Octave) *Builder {
	if !pitch.IsPitched() {
		b.fail(fmt.Sprintf("Note requires a pitched symbol, got %q (use Rest or Sustain)", string(pitch)))
		return b
	}
	if !octave.IsValid() {
		b.fail(fmt.Sprintf("octave %d is out of range", octave))
		return b
	}
	return b.addBeat(&ast.Element{Note: &ast.Note{Pitch: pitch, Octave: octave}})
}

// Rest adds a silent beat.
func (b *Builder) Rest() *Builder {
	return b.addBeat(&ast.Element{Note: &ast.Note{Pitch: ast.PitchSilence}})
}

// Sustain adds a beat that extends the previous note.
func (b *Builder) Sustain() *Builder {
	return b.addBeat(&ast.Element{Note: &ast.Note{Pitch: ast.PitchSustain}})
}

// Lyric adds a lyrics-only beat.
func (b *Builder) Lyric(text string) *Builder {
	if text == "" {
		b.fail("lyric text must be non-empty")
		return b
	}
	return b.addBeat(&ast.Element{Lyrics: text})
}

// LyricNote adds a beat whose single element fuses lyrics to a pitched
// note (the lyrics:note form).
func (b *Builder) LyricNote(text string, pitch ast.Pitch, octave ast.Octave) *Builder {
	if text == "" {
		b.fail("lyric text must be non-empty")
		return b
	}
	if !pitch.IsPitched() {
		b.fail(fmt.Sprintf("lyrics cannot attach to %q: only pitched notes carry lyrics", string(pitch)))
		return b
	}
	if !octave.IsValid() {
		b.fail(fmt.Sprintf("octave %d is out of range", octave))
		return b
	}
	return b.addBeat(&ast.Element{Lyrics: text, Note: &ast.Note{Pitch: pitch, Octave: octave}})
}

// Compound adds one beat holding the given notes played together
// ("SRG"). Invalid notes fail the whole beat.
func (b *Builder) Compound(notes ...*ast.Note) *Builder {
	if len(notes) == 0 {
		b.fail("Compound requires at least one note")
		return b
	}
	elements := make([]*ast.Element, 0, len(notes))
	for _, n := range notes {
		if n == nil || !n.Pitch.IsValid() {
			b.fail("Compound note has an unknown pitch")
			return b
		}
		if !n.Octave.IsValid() {
			b.fail(fmt.Sprintf("octave %d is out of range", n.Octave))
			return b
		}
		if !n.Pitch.IsPitched() && n.Octave != ast.OctaveMiddle {
			b.fail(fmt.Sprintf("the %q mark cannot carry an octave", string(n.Pitch)))
			return b
		}
		elements = append(elements, &ast.Element{Note: &ast.Note{Pitch: n.Pitch, Octave: n.Octave}})
	}
	return b.addBeat(elements...)
}

// Beat adds one beat from explicit elements, for shapes the dedicated
// helpers do not cover (mixed lyric and note elements in one beat).
func (b *Builder) Beat(elements ...*ast.Element) *Builder {
	if len(elements) == 0 {
		b.fail("Beat requires at least one element")
		return b
	}
	return b.addBeat(elements...)
}

// Build validates the assembled document and returns it.
// It returns an *errors.ErrorList if any builder call was invalid or
// the document fails structural validation.
func (b *Builder) Build() (*ast.Document, error) {
	if b.errors.HasErrors() {
		return nil, b.errors
	}
	if err := validator.NewValidator().Validate(b.doc); err != nil {
		return nil, err
	}
	return b.doc, nil
}

func (b *Builder) addBeat(elements ...*ast.Element) *Builder {
	if b.section == nil {
		b.fail("beat added before any Section")
		return b
	}
	b.section.Beats = append(b.section.Beats, &ast.Beat{
		Elements: elements,
		Position: &ast.Position{Row: b.row, Index: b.index},
	})
	b.index++
	return b
}

func (b *Builder) fail(message string) {
	b.errors.AddError(surerrors.ErrorTypeStructural, message, ast.Location{})
}
