package set

import (
	"iter"
	"slices"

	"github.com/amp-labs/automaat/sortable"
)

// SortedSet keeps unique elements in ascending LessThan order.
// The zero value is an empty set ready to use. A SortedSet is not
// safe for concurrent mutation.
type SortedSet[K sortable.Sortable[K]] struct {
	items []K
}

// NewSortedSet creates a set holding the given elements.
func NewSortedSet[K sortable.Sortable[K]](elements ...K) *SortedSet[K] {
	s := &SortedSet[K]{}
	s.AddAll(elements...)

	return s
}

// search returns the position of element, or where it would be inserted.
func (s *SortedSet[K]) search(element K) (int, bool) {
	return slices.BinarySearchFunc(s.items, element, sortable.Compare[K])
}

// Add inserts element and reports whether it was not already present.
// Time complexity: O(n) because later elements shift.
func (s *SortedSet[K]) Add(element K) bool {
	idx, found := s.search(element)
	if found {
		return false
	}

	s.items = slices.Insert(s.items, idx, element)

	return true
}

// AddAll inserts every element.
func (s *SortedSet[K]) AddAll(elements ...K) {
	for _, element := range elements {
		s.Add(element)
	}
}

// Remove deletes element and reports whether it was present.
func (s *SortedSet[K]) Remove(element K) bool {
	idx, found := s.search(element)
	if !found {
		return false
	}

	s.items = slices.Delete(s.items, idx, idx+1)

	return true
}

// Contains reports whether element is in the set. Time complexity: O(log n).
func (s *SortedSet[K]) Contains(element K) bool {
	_, found := s.search(element)

	return found
}

func (s *SortedSet[K]) Size() int {
	return len(s.items)
}

func (s *SortedSet[K]) IsEmpty() bool {
	return len(s.items) == 0
}

// Clear removes all elements.
func (s *SortedSet[K]) Clear() {
	s.items = nil
}

// Entries returns a sorted copy of the elements. Callers may modify it.
func (s *SortedSet[K]) Entries() []K {
	return slices.Clone(s.items)
}

// Seq yields the elements in ascending order. The set must not be
// modified while iterating.
func (s *SortedSet[K]) Seq() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, item := range s.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the set.
func (s *SortedSet[K]) Clone() *SortedSet[K] {
	return &SortedSet[K]{items: slices.Clone(s.items)}
}

// Union returns a new set with the elements of both sets.
func (s *SortedSet[K]) Union(other *SortedSet[K]) *SortedSet[K] {
	out := s.Clone()
	out.AddAll(other.items...)

	return out
}

// Intersects reports whether the two sets share at least one element.
func (s *SortedSet[K]) Intersects(other *SortedSet[K]) bool {
	small, large := s, other
	if small.Size() > large.Size() {
		small, large = large, small
	}

	for _, item := range small.items {
		if large.Contains(item) {
			return true
		}
	}

	return false
}

// Equals reports whether both sets hold the same elements.
func (s *SortedSet[K]) Equals(other *SortedSet[K]) bool {
	return slices.EqualFunc(s.items, other.items, func(a, b K) bool {
		return a.Equals(b)
	})
}
