package ast

// Element represents a single unit inside a beat: an optional note,
// optional lyrics, or both fused together (lyrics sung on that note).
// At least one of the two must be present; lyrics are "present" only
// when non-empty.
type Element struct {
	Note     *Note    // Note, or nil for a lyrics-only element
	Lyrics   string   // Lyric text, or "" for a note-only element
	Location Location // Source location
}

// HasNote returns true if the element carries a note.
func (e *Element) HasNote() bool {
	return e.Note != nil
}

// HasLyrics returns true if the element carries non-empty lyrics.
func (e *Element) HasLyrics() bool {
	return e.Lyrics != ""
}

// IsEmpty returns true if the element carries neither a note nor lyrics.
// Such elements never come out of the parser or builder; the validator
// rejects them in hand-assembled documents.
func (e *Element) IsEmpty() bool {
	return !e.HasNote() && !e.HasLyrics()
}

// Equal reports whether two elements carry the same note and lyrics.
// Source locations are ignored. Either side may be nil; two nils are equal.
func (e *Element) Equal(other *Element) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.Lyrics == other.Lyrics && e.Note.Equal(other.Note)
}
