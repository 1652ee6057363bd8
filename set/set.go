// Package set provides the collections behind automata: a hash set for the
// transition relation and a sorted set for states, alphabets and languages.
package set

import (
	"iter"
	"slices"

	"github.com/amp-labs/automaat/compare"
	"github.com/amp-labs/automaat/hashing"
)

// Collectable is an interface that combines the Hashable and
// Comparable interfaces. Elements are bucketed by hash and told
// apart within a bucket by Equals.
type Collectable[T any] interface {
	hashing.Hashable
	compare.Comparable[T]
}

// A Set is an unordered collection of unique elements. Uniqueness is
// decided by Equals. The HashFunc only spreads elements over buckets,
// so hash collisions are tolerated.
type Set[T Collectable[T]] interface {
	// AddAll adds multiple elements. It stops at the first hashing error.
	AddAll(elements ...T) error

	// Add adds a single element. Adding an element already present is a no-op.
	Add(element T) error

	// Remove removes an element. Removing an absent element is a no-op.
	Remove(element T) error

	// Clear removes all elements from the set.
	Clear()

	// Contains checks if an element exists in the set.
	Contains(element T) (bool, error)

	// Size returns the number of elements in the set.
	Size() int

	// Entries returns all elements in the set as a slice. The order is not guaranteed.
	Entries() []T

	// Seq iterates over the elements. The order is not guaranteed.
	Seq() iter.Seq[T]
}

type setImpl[T Collectable[T]] struct {
	hash    hashing.HashFunc
	buckets map[string][]T
	size    int
}

// NewSet creates a new Set with the provided hash function.
func NewSet[T Collectable[T]](hash hashing.HashFunc) Set[T] {
	return &setImpl[T]{
		hash:    hash,
		buckets: make(map[string][]T),
	}
}

func (s *setImpl[T]) AddAll(elements ...T) error {
	for _, elem := range elements {
		if err := s.Add(elem); err != nil {
			return err
		}
	}

	return nil
}

func (s *setImpl[T]) Add(element T) error {
	key, err := s.hash(element)
	if err != nil {
		return err
	}

	bucket := s.buckets[key]
	if compare.Contains(bucket, element) {
		return nil
	}

	s.buckets[key] = append(bucket, element)
	s.size++

	return nil
}

func (s *setImpl[T]) Remove(element T) error {
	key, err := s.hash(element)
	if err != nil {
		return err
	}

	bucket := s.buckets[key]

	idx := slices.IndexFunc(bucket, element.Equals)
	if idx < 0 {
		return nil
	}

	bucket = slices.Delete(bucket, idx, idx+1)
	if len(bucket) == 0 {
		delete(s.buckets, key)
	} else {
		s.buckets[key] = bucket
	}

	s.size--

	return nil
}

func (s *setImpl[T]) Clear() {
	s.buckets = make(map[string][]T)
	s.size = 0
}

func (s *setImpl[T]) Contains(element T) (bool, error) {
	key, err := s.hash(element)
	if err != nil {
		return false, err
	}

	return compare.Contains(s.buckets[key], element), nil
}

func (s *setImpl[T]) Size() int {
	return s.size
}

func (s *setImpl[T]) Entries() []T {
	items := make([]T, 0, s.size)
	for item := range s.Seq() {
		items = append(items, item)
	}

	return items
}

func (s *setImpl[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, bucket := range s.buckets {
			for _, item := range bucket {
				if !yield(item) {
					return
				}
			}
		}
	}
}
