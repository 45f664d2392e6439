// File: list/iterator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Node-model iterator over the list. The logical position is a node
// pointer; the past-the-end sentinel is a nil node. Equality compares
// list identity and node identity, so any two cursors standing past
// the end of the same list are equal.

package list

import "github.com/momentics/seqkit/api"

// Iterator is a cursor over a List. It borrows the list and is
// invalidated by removal of the node it currently references; other
// mutations leave it positioned on the same node.
type Iterator[T any] struct {
	list *List[T]
	node *Node[T]
}

// Begin returns a cursor on the first element (past-the-end when the
// list is empty).
func (l *List[T]) Begin() api.Iterator[T] {
	return &Iterator[T]{list: l, node: l.head}
}

// End returns the past-the-end cursor.
func (l *List[T]) End() api.Iterator[T] {
	return &Iterator[T]{list: l}
}

// NewIterator returns a cursor on the first element for Forward or on
// the last element for Backward.
func (l *List[T]) NewIterator(dir api.Direction) api.Iterator[T] {
	if dir == api.Backward {
		return &Iterator[T]{list: l, node: l.tail}
	}
	return &Iterator[T]{list: l, node: l.head}
}

// Next moves to the following node. Stepping off the last element
// lands on the past-the-end position; stepping again reports the end.
func (it *Iterator[T]) Next() error {
	if it.list == nil || it.node == nil {
		return api.ErrIteratorEnd
	}
	it.node = it.node.next
	return nil
}

// Prev moves to the preceding node. From the past-the-end position it
// re-enters the list at the tail, so a backward pass can start from
// End.
func (it *Iterator[T]) Prev() error {
	if it.list == nil {
		return api.ErrIteratorEnd
	}
	if it.node == nil {
		if it.list.tail == nil {
			return api.ErrIteratorEnd
		}
		it.node = it.list.tail
		return nil
	}
	if it.node.prev == nil {
		return api.ErrIteratorEnd
	}
	it.node = it.node.prev
	return nil
}

// Get returns a pointer to the current element.
func (it *Iterator[T]) Get() (*T, error) {
	if it.list == nil || it.node == nil {
		return nil, api.ErrIteratorEnd
	}
	return &it.node.Value, nil
}

// Valid reports whether the cursor references an element.
func (it *Iterator[T]) Valid() bool {
	return it.list != nil && it.node != nil
}

// Clone returns an independent cursor at the same node.
func (it *Iterator[T]) Clone() api.Iterator[T] {
	dup := *it
	return &dup
}

// Equal reports whether other is a cursor on the same list at the
// same node.
func (it *Iterator[T]) Equal(other api.Iterator[T]) bool {
	o, ok := other.(*Iterator[T])
	if !ok {
		return false
	}
	return it.list != nil && it.list == o.list && it.node == o.node
}

// Node exposes the underlying node so positional list operations
// (InsertBefore, Erase) can anchor on a cursor.
func (it *Iterator[T]) Node() *Node[T] { return it.node }

// Destroy detaches the cursor; afterwards it is permanently invalid.
func (it *Iterator[T]) Destroy() {
	it.list = nil
	it.node = nil
}

var _ api.Iterator[int] = (*Iterator[int])(nil)
