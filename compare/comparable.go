// Package compare defines the equality contract shared by the state,
// symbol and word types of the automaton and expression packages.
package compare

// Comparable is implemented by types that decide their own equality.
// Automaton states use it to match transitions, so Equals must be
// reflexive, symmetric and stable for the lifetime of a value.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals reports whether a and b are equal according to a.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Contains reports whether any element of items equals target.
func Contains[T Comparable[T]](items []T, target T) bool {
	for _, item := range items {
		if item.Equals(target) {
			return true
		}
	}

	return false
}
