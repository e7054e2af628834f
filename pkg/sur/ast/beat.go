package ast

import "fmt"

// Position locates a beat on the notation grid: which beat line (row)
// of its section it belongs to and where on that line it sits.
// Both coordinates are 0-based.
type Position struct {
	Row   int // Beat-line ordinal within the section
	Index int // Beat ordinal within the line
}

// String returns a human-readable "row:index" form.
func (p *Position) String() string {
	if p == nil {
		return "<unpositioned>"
	}
	return fmt.Sprintf("%d:%d", p.Row, p.Index)
}

// Beat represents one rhythmic unit: an ordered group of one or more
// elements played together. Bracketed records whether the source text
// wrapped the beat in [ ]; it is presentation metadata, not content,
// and Equal ignores it (as it does Position and Location).
type Beat struct {
	Elements  []*Element // Elements in playing order (at least one)
	Bracketed bool       // Whether the source wrapped the beat in brackets
	Position  *Position  // Grid position; nil means not yet assigned
	Location  Location   // Source location
}

// ElementCount returns the number of elements in the beat.
func (b *Beat) ElementCount() int {
	return len(b.Elements)
}

// HasLyrics returns true if any element in the beat carries lyrics.
func (b *Beat) HasLyrics() bool {
	for _, el := range b.Elements {
		if el.HasLyrics() {
			return true
		}
	}
	return false
}

// AllNotes returns true if every element in the beat carries a note and
// no element carries lyrics. Such beats render in the dense compound
// form ("SRG" rather than "[S R G]"). An empty beat returns false.
func (b *Beat) AllNotes() bool {
	if len(b.Elements) == 0 {
		return false
	}
	for _, el := range b.Elements {
		if !el.HasNote() || el.HasLyrics() {
			return false
		}
	}
	return true
}

// Equal reports whether two beats carry equal element sequences.
// Bracketed, Position, and Location are ignored: "[S R G]" and "SRG"
// denote the same beat. Either side may be nil; two nils are equal.
func (b *Beat) Equal(other *Beat) bool {
	if b == nil || other == nil {
		return b == other
	}
	if len(b.Elements) != len(other.Elements) {
		return false
	}
	for i, el := range b.Elements {
		if !el.Equal(other.Elements[i]) {
			return false
		}
	}
	return true
}
