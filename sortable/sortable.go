// Package sortable provides ordering wrappers used as keys in sorted sets.
package sortable

import (
	"github.com/amp-labs/automaat/compare"
)

// Sortable is a Comparable with a strict total order. LessThan must be
// consistent with Equals: exactly one of a.LessThan(b), b.LessThan(a) and
// a.Equals(b) holds for any pair.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare returns -1, 0 or +1 depending on how a orders against b.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.LessThan(b):
		return -1
	case b.LessThan(a):
		return 1
	default:
		return 0
	}
}
