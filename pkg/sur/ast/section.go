package ast

// Section represents a titled region of the composition (Sthayi,
// Antara, and so on) holding its beats in playing order.
type Section struct {
	Title    string   // Section title as written after the # marker
	Beats    []*Beat  // Beats in playing order
	Location Location // Source location of the section header
}

// BeatCount returns the number of beats in the section.
func (s *Section) BeatCount() int {
	return len(s.Beats)
}

// RowCount returns the number of beat lines (rows) the section spans,
// derived from beat positions. Beats without positions count as row 0.
func (s *Section) RowCount() int {
	rows := 0
	for _, b := range s.Beats {
		if b.Position != nil && b.Position.Row+1 > rows {
			rows = b.Position.Row + 1
		}
	}
	if rows == 0 && len(s.Beats) > 0 {
		rows = 1
	}
	return rows
}

// Row returns the section's beats on the given row, in index order.
// Positions assigned by the parser and builder are already ordered.
func (s *Section) Row(row int) []*Beat {
	var beats []*Beat
	for _, b := range s.Beats {
		if b.Position != nil && b.Position.Row == row {
			beats = append(beats, b)
		}
	}
	return beats
}

// Equal reports whether two sections have the same title and equal
// beat sequences. Either side may be nil; two nils are equal.
func (s *Section) Equal(other *Section) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.Title != other.Title || len(s.Beats) != len(other.Beats) {
		return false
	}
	for i, b := range s.Beats {
		if !b.Equal(other.Beats[i]) {
			return false
		}
	}
	return true
}
