package ast

// Pitch represents a single sargam pitch symbol or one of the two
// non-pitched marks (silence and sustain). The string value is the
// canonical notation symbol.
type Pitch string

const (
	PitchSa  Pitch = "S" // Shadja
	PitchRe  Pitch = "R" // Rishabh
	PitchGa  Pitch = "G" // Gandhar
	PitchMa  Pitch = "M" // Madhyam
	PitchPa  Pitch = "P" // Pancham
	PitchDha Pitch = "D" // Dhaivat
	PitchNi  Pitch = "N" // Nishad

	PitchSilence Pitch = "-" // Silent beat marker
	PitchSustain Pitch = "*" // Sustain (extend previous note) marker
)

// Octave represents the register of a pitched note relative to the
// middle octave.
type Octave int

const (
	OctaveLower  Octave = -1 // Rendered with a leading dot: .S
	OctaveMiddle Octave = 0  // Rendered bare: S
	OctaveUpper  Octave = 1  // Rendered with a trailing apostrophe: S'
)

// Note represents a single note: a pitch and its octave.
// Notes are value objects; they carry no source location of their own
// (the enclosing Element does).
type Note struct {
	Pitch  Pitch  // Pitch symbol (or silence/sustain mark)
	Octave Octave // Octave register; always OctaveMiddle for silence/sustain
}

// IsValid returns true if the pitch is one of the seven sargam letters
// or the silence/sustain marks.
func (p Pitch) IsValid() bool {
	switch p {
	case PitchSa, PitchRe, PitchGa, PitchMa, PitchPa, PitchDha, PitchNi,
		PitchSilence, PitchSustain:
		return true
	}
	return false
}

// IsPitched returns true if the pitch is one of the seven sargam letters
// (as opposed to the silence/sustain marks).
func (p Pitch) IsPitched() bool {
	switch p {
	case PitchSa, PitchRe, PitchGa, PitchMa, PitchPa, PitchDha, PitchNi:
		return true
	}
	return false
}

// IsValid returns true if the octave is one of the three registers.
func (o Octave) IsValid() bool {
	return o >= OctaveLower && o <= OctaveUpper
}

// IsPitched returns true if the note carries one of the seven sargam
// letters rather than a silence or sustain mark.
func (n *Note) IsPitched() bool {
	return n != nil && n.Pitch.IsPitched()
}

// IsSilence returns true if the note is the silence marker.
func (n *Note) IsSilence() bool {
	return n != nil && n.Pitch == PitchSilence
}

// IsSustain returns true if the note is the sustain marker.
func (n *Note) IsSustain() bool {
	return n != nil && n.Pitch == PitchSustain
}

// String returns the canonical notation for the note, including its
// octave mark: ".S" for lower, "S" for middle, "S'" for upper.
// Silence and sustain render as their bare marks.
func (n *Note) String() string {
	if n == nil {
		return ""
	}
	if !n.Pitch.IsPitched() {
		return string(n.Pitch)
	}
	switch n.Octave {
	case OctaveLower:
		return "." + string(n.Pitch)
	case OctaveUpper:
		return string(n.Pitch) + "'"
	default:
		return string(n.Pitch)
	}
}

// Equal reports whether two notes carry the same pitch and octave.
// Either side may be nil; two nils are equal.
func (n *Note) Equal(other *Note) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.Pitch == other.Pitch && n.Octave == other.Octave
}
