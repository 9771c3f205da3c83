package container

import (
	"iter"

	"golang.org/x/exp/maps"
)

// NewSet returns an empty set with room for capacity values.
func NewSet[T comparable](capacity int) *Set[T] {
	return &Set[T]{
		items: make(map[T]struct{}, capacity),
	}
}

// Set is an unordered collection of unique values, created with NewSet.
// Like Stack, a Set is not safe for concurrent use.
type Set[T comparable] struct {
	items map[T]struct{}
}

func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s.items {
			if !yield(v) {
				return
			}
		}
	}
}

func (s *Set[T]) Add(val T) {
	s.items[val] = struct{}{}
}

func (s *Set[T]) Delete(val T) {
	delete(s.items, val)
}

func (s *Set[T]) Contains(val T) bool {
	_, ok := s.items[val]

	return ok
}

func (s *Set[T]) Len() int {
	return len(s.items)
}

func (s *Set[T]) Slice() []T {
	return maps.Keys(s.items)
}
