package sortable

// Int is a sortable int, handy for numbered automaton states.
//
//	a := automaton.New[sortable.Int]('a', 'b')
//	a.AddTransitionOf(0, 'a', 1)
type Int int

var _ Sortable[Int] = (*Int)(nil)

// Equals returns true if both values are the same integer.
func (i Int) Equals(other Int) bool {
	return int(i) == int(other)
}

// LessThan orders numerically.
func (i Int) LessThan(other Int) bool {
	return int(i) < int(other)
}
