// File: stack/stack.go
// Package stack adapts the vector container into a LIFO structure.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stack is a thin forwarding layer: Push/Pop/Top map onto the
// vector's back, and capacity, growth, pooling and locking knobs pass
// straight through. The adapter can own its vector or wrap one the
// caller manages.

package stack

import (
	"github.com/momentics/seqkit/api"
	"github.com/momentics/seqkit/vector"
)

// Stack is a last-in-first-out adapter over a Vector.
type Stack[T any] struct {
	vec   *vector.Vector[T]
	owned bool
}

// New constructs a stack over a fresh vector. Options configure the
// underlying vector (initial capacity, destructor).
func New[T any](opts ...vector.Option[T]) *Stack[T] {
	return &Stack[T]{vec: vector.New[T](opts...), owned: true}
}

// NewFromVector wraps an existing vector. When owned is true, Destroy
// tears the vector down with the adapter; otherwise the caller keeps
// responsibility for it.
func NewFromVector[T any](v *vector.Vector[T], owned bool) (*Stack[T], error) {
	if v == nil {
		return nil, api.ErrNullPointer
	}
	return &Stack[T]{vec: v, owned: owned}, nil
}

// Push places elem on top of the stack.
func (s *Stack[T]) Push(elem T) error {
	if s.vec == nil {
		return api.NewError(api.CodeInvalidArgument, "stack is destroyed")
	}
	return s.vec.PushBack(elem)
}

// Pop removes the top element.
func (s *Stack[T]) Pop() error {
	if s.vec == nil {
		return api.NewError(api.CodeInvalidArgument, "stack is destroyed")
	}
	return s.vec.PopBack()
}

// Top returns a pointer to the top element.
func (s *Stack[T]) Top() (*T, error) {
	if s.vec == nil {
		return nil, api.NewError(api.CodeInvalidArgument, "stack is destroyed")
	}
	return s.vec.Back()
}

// Len reports the number of stacked elements.
func (s *Stack[T]) Len() int {
	if s.vec == nil {
		return 0
	}
	return s.vec.Len()
}

// Empty reports whether the stack holds no elements.
func (s *Stack[T]) Empty() bool { return s.Len() == 0 }

// Cap reports the capacity of the underlying vector.
func (s *Stack[T]) Cap() int {
	if s.vec == nil {
		return 0
	}
	return s.vec.Cap()
}

// Reserve grows the underlying vector's capacity.
func (s *Stack[T]) Reserve(n int) error {
	if s.vec == nil {
		return api.NewError(api.CodeInvalidArgument, "stack is destroyed")
	}
	return s.vec.Reserve(n)
}

// SetGrowthFactor forwards to the underlying vector.
func (s *Stack[T]) SetGrowthFactor(f float64) error {
	if s.vec == nil {
		return api.NewError(api.CodeInvalidArgument, "stack is destroyed")
	}
	return s.vec.SetGrowthFactor(f)
}

// Clear removes every element.
func (s *Stack[T]) Clear() {
	if s.vec != nil {
		s.vec.Clear()
	}
}

// EnableThreadSafety forwards to the underlying vector.
func (s *Stack[T]) EnableThreadSafety() {
	if s.vec != nil {
		s.vec.EnableThreadSafety()
	}
}

// DisableThreadSafety forwards to the underlying vector.
func (s *Stack[T]) DisableThreadSafety() {
	if s.vec != nil {
		s.vec.DisableThreadSafety()
	}
}

// SetBlockPool routes the underlying vector's storage through p.
func (s *Stack[T]) SetBlockPool(p api.BlockPool[T]) error {
	if s.vec == nil {
		return api.NewError(api.CodeInvalidArgument, "stack is destroyed")
	}
	return s.vec.SetBlockPool(p)
}

// RemoveBlockPool detaches the block pool from the underlying vector.
func (s *Stack[T]) RemoveBlockPool() {
	if s.vec != nil {
		s.vec.RemoveBlockPool()
	}
}

// Vector exposes the underlying container for direct access, for
// example to iterate the stacked elements bottom-up.
func (s *Stack[T]) Vector() *vector.Vector[T] { return s.vec }

// Destroy detaches the adapter. An owned vector is destroyed with it;
// a wrapped one is handed back untouched.
func (s *Stack[T]) Destroy() {
	if s.vec != nil && s.owned {
		s.vec.Destroy()
	}
	s.vec = nil
}

var _ api.Lockable = (*Stack[int])(nil)
