// File: vector/iterator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Index-model iterator over the vector. The logical position is an
// element index; the past-the-end sentinel is index == Len. Structural
// equality therefore holds between a cursor advanced off the last
// element and the End factory's cursor.

package vector

import "github.com/momentics/seqkit/api"

// Iterator is a cursor over a Vector. It borrows the vector and is
// invalidated by any mutation that moves or removes elements.
type Iterator[T any] struct {
	vec   *Vector[T]
	index int
}

// Begin returns a cursor at the first element. On an empty vector it
// equals End and is not dereferenceable.
func (v *Vector[T]) Begin() api.Iterator[T] {
	return &Iterator[T]{vec: v}
}

// End returns the past-the-end sentinel cursor.
func (v *Vector[T]) End() api.Iterator[T] {
	return &Iterator[T]{vec: v, index: v.Len()}
}

// NewIterator returns a cursor bound to the front (Forward) or to the
// last element (Backward).
func (v *Vector[T]) NewIterator(dir api.Direction) api.Iterator[T] {
	if dir == api.Backward {
		idx := v.Len() - 1
		if idx < 0 {
			idx = 0
		}
		return &Iterator[T]{vec: v, index: idx}
	}
	return &Iterator[T]{vec: v}
}

// Next advances the cursor one position. Advancing at or past the end
// sentinel reports ErrIteratorEnd.
func (it *Iterator[T]) Next() error {
	if it.vec == nil || it.index >= it.vec.size {
		return api.ErrIteratorEnd
	}
	it.index++
	return nil
}

// Prev retreats the cursor one position. Retreating from the first
// element reports ErrIteratorEnd.
func (it *Iterator[T]) Prev() error {
	if it.vec == nil || it.index == 0 {
		return api.ErrIteratorEnd
	}
	it.index--
	return nil
}

// Get returns a mutable reference to the element under the cursor.
func (it *Iterator[T]) Get() (*T, error) {
	if it.vec == nil || it.index >= it.vec.size {
		return nil, api.ErrIteratorEnd
	}
	return &it.vec.data[it.index], nil
}

// Valid reports whether Get would succeed.
func (it *Iterator[T]) Valid() bool {
	return it.vec != nil && it.index < it.vec.size
}

// Clone produces an independent cursor at the same position.
func (it *Iterator[T]) Clone() api.Iterator[T] {
	return &Iterator[T]{vec: it.vec, index: it.index}
}

// Equal reports whether other references the same vector and the same
// logical position.
func (it *Iterator[T]) Equal(other api.Iterator[T]) bool {
	o, ok := other.(*Iterator[T])
	if !ok {
		return false
	}
	return it.vec != nil && it.vec == o.vec && it.index == o.index
}

// Destroy detaches the cursor from the vector.
func (it *Iterator[T]) Destroy() {
	it.vec = nil
	it.index = 0
}

var _ api.Iterator[int] = (*Iterator[int])(nil)
