package ast

// Document represents the root node of a parsed .sur file: the CONFIG
// metadata, the SCALE mapping, and the COMPOSITION sections.
type Document struct {
	Metadata    map[string]string // CONFIG entries (name, raag, taal, tempo, ...)
	Scale       map[string]string // SCALE entries: pitch symbol -> scale-degree name
	Composition []*Section        // Sections in document order

	// Source tracking
	SourceFile string   // Path the document was parsed from, if any
	Location   Location // Source location
}

// NewDocument returns an empty document with initialized maps.
func NewDocument() *Document {
	return &Document{
		Metadata: make(map[string]string),
		Scale:    make(map[string]string),
	}
}

// Name returns the composition name from metadata, or "" if unset.
func (d *Document) Name() string {
	return d.Metadata["name"]
}

// GetMetadata returns the metadata value for the given key, or "" if absent.
func (d *Document) GetMetadata(key string) string {
	return d.Metadata[key]
}

// HasMetadata returns true if the document has a metadata entry for the key.
func (d *Document) HasMetadata(key string) bool {
	_, ok := d.Metadata[key]
	return ok
}

// GetSection returns the first section with the given title, or nil if
// no section has it.
func (d *Document) GetSection(title string) *Section {
	for _, s := range d.Composition {
		if s.Title == title {
			return s
		}
	}
	return nil
}

// HasSection returns true if the document has a section with the given title.
func (d *Document) HasSection(title string) bool {
	return d.GetSection(title) != nil
}

// SectionCount returns the number of sections in the composition.
func (d *Document) SectionCount() int {
	return len(d.Composition)
}

// BeatCount returns the total number of beats across all sections.
func (d *Document) BeatCount() int {
	n := 0
	for _, s := range d.Composition {
		n += len(s.Beats)
	}
	return n
}

// ElementCount returns the total number of elements across all beats.
func (d *Document) ElementCount() int {
	n := 0
	for _, s := range d.Composition {
		for _, b := range s.Beats {
			n += len(b.Elements)
		}
	}
	return n
}

// Equal reports whether two documents carry the same metadata, scale,
// and composition. Beat brackets, positions, and source locations are
// ignored, so a document survives a format/reparse round trip Equal to
// itself. Either side may be nil; two nils are equal.
func (d *Document) Equal(other *Document) bool {
	if d == nil || other == nil {
		return d == other
	}
	if !stringMapsEqual(d.Metadata, other.Metadata) {
		return false
	}
	if !stringMapsEqual(d.Scale, other.Scale) {
		return false
	}
	if len(d.Composition) != len(other.Composition) {
		return false
	}
	for i, s := range d.Composition {
		if !s.Equal(other.Composition[i]) {
			return false
		}
	}
	return true
}

func stringMapsEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}
