// Package sortable provides wrapper types implementing the [Sortable]
// interface, so that plain values can be stored in
// [github.com/amp-labs/automaat/set.SortedSet].
//
// # Provided types
//
//   - [Int] and [String] are ready-made automaton state types.
//   - [Rune] is the symbol type of automaton alphabets.
//   - [ShortLex] orders words by length and then lexicographically, which
//     is the order used for regular expression languages.
//
// # Custom state types
//
// Any type with Equals and LessThan can label automaton states:
//
//	type Cell struct{ Row, Col int }
//
//	func (c Cell) Equals(o Cell) bool { return c == o }
//
//	func (c Cell) LessThan(o Cell) bool {
//	    if c.Row != o.Row {
//	        return c.Row < o.Row
//	    }
//	    return c.Col < o.Col
//	}
//
// Transitions are hashed over the %v rendering of their states, so equal
// states must also print the same way.
package sortable
