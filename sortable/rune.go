package sortable

// Rune is a sortable rune. Automaton alphabets are sorted sets of Rune.
type Rune rune

var _ Sortable[Rune] = (*Rune)(nil)

// Equals returns true if both runes are the same code point.
func (r Rune) Equals(other Rune) bool {
	return rune(r) == rune(other)
}

// LessThan orders by code point.
func (r Rune) LessThan(other Rune) bool {
	return rune(r) < rune(other)
}

// Runes converts a slice of Rune back to plain runes.
func Runes(values []Rune) []rune {
	out := make([]rune, len(values))
	for i, v := range values {
		out[i] = rune(v)
	}

	return out
}
