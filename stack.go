// Package container provides small generic collections: a LIFO stack and a
// hash set.
package container

import (
	"slices"

	"github.com/samber/mo"
)

// NewStack returns a stack holding vals, the last of which is the top.
// The values are copied, so the caller keeps no alias to the stack's storage.
func NewStack[T any](vals ...T) *Stack[T] {
	return &Stack[T]{
		vals: slices.Clone(vals),
	}
}

// Stack is a last-in-first-out sequence of values.
//
// The zero value is an empty stack ready to use. A Stack is not safe for
// concurrent use; callers sharing one across goroutines must synchronize
// access themselves.
type Stack[T any] struct {
	vals []T
}

// Empty reports whether the stack holds no values.
func (s *Stack[T]) Empty() bool {
	return len(s.vals) == 0
}

// Len returns the number of values on the stack.
func (s *Stack[T]) Len() int {
	return len(s.vals)
}

// Push puts v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.vals = append(s.vals, v)
}

// Top returns the value on top of the stack without removing it, or None if
// the stack is empty. Top never mutates the stack.
func (s *Stack[T]) Top() mo.Option[T] {
	if len(s.vals) == 0 {
		return mo.None[T]()
	}

	return mo.Some(s.vals[len(s.vals)-1])
}

// Pop removes and returns the value on top of the stack. Popping an empty
// stack returns None and leaves the stack unchanged.
func (s *Stack[T]) Pop() mo.Option[T] {
	top := s.Top()
	if top.IsAbsent() {
		return top
	}

	var zero T
	s.vals[len(s.vals)-1] = zero // clear the slot so the stack drops its reference

	s.vals = s.vals[:len(s.vals)-1]

	return top
}
