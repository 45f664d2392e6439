// File: queue/queue.go
// Package queue provides FIFO structures: Queue forwards onto the
// linked list, Ring bounds a circular buffer at a fixed capacity.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package queue

import (
	"github.com/momentics/seqkit/api"
	"github.com/momentics/seqkit/list"
)

// Queue is a first-in-first-out adapter over a List: Push appends at
// the back, Pop removes from the front.
type Queue[T any] struct {
	lst   *list.List[T]
	owned bool
}

// New constructs a queue over a fresh list. Options configure the
// underlying list (destructor).
func New[T any](opts ...list.Option[T]) *Queue[T] {
	return &Queue[T]{lst: list.New[T](opts...), owned: true}
}

// NewFromList wraps an existing list. When owned is true, Destroy
// tears the list down with the adapter; otherwise the caller keeps
// responsibility for it.
func NewFromList[T any](l *list.List[T], owned bool) (*Queue[T], error) {
	if l == nil {
		return nil, api.ErrNullPointer
	}
	return &Queue[T]{lst: l, owned: owned}, nil
}

// Push appends elem at the back of the queue.
func (q *Queue[T]) Push(elem T) error {
	if q.lst == nil {
		return api.NewError(api.CodeInvalidArgument, "queue is destroyed")
	}
	return q.lst.PushBack(elem)
}

// Pop removes the front element.
func (q *Queue[T]) Pop() error {
	if q.lst == nil {
		return api.NewError(api.CodeInvalidArgument, "queue is destroyed")
	}
	return q.lst.PopFront()
}

// Front returns a pointer to the element that Pop would remove next.
func (q *Queue[T]) Front() (*T, error) {
	if q.lst == nil {
		return nil, api.NewError(api.CodeInvalidArgument, "queue is destroyed")
	}
	return q.lst.Front()
}

// Back returns a pointer to the most recently pushed element.
func (q *Queue[T]) Back() (*T, error) {
	if q.lst == nil {
		return nil, api.NewError(api.CodeInvalidArgument, "queue is destroyed")
	}
	return q.lst.Back()
}

// Len reports the number of queued elements.
func (q *Queue[T]) Len() int {
	if q.lst == nil {
		return 0
	}
	return q.lst.Len()
}

// Empty reports whether the queue holds no elements.
func (q *Queue[T]) Empty() bool { return q.Len() == 0 }

// Clear removes every element.
func (q *Queue[T]) Clear() {
	if q.lst != nil {
		q.lst.Clear()
	}
}

// EnableThreadSafety forwards to the underlying list.
func (q *Queue[T]) EnableThreadSafety() {
	if q.lst != nil {
		q.lst.EnableThreadSafety()
	}
}

// DisableThreadSafety forwards to the underlying list.
func (q *Queue[T]) DisableThreadSafety() {
	if q.lst != nil {
		q.lst.DisableThreadSafety()
	}
}

// SetNodePool routes the underlying list's node allocation through p.
func (q *Queue[T]) SetNodePool(p api.ObjectPool[list.Node[T]]) error {
	if q.lst == nil {
		return api.NewError(api.CodeInvalidArgument, "queue is destroyed")
	}
	return q.lst.SetNodePool(p)
}

// RemoveNodePool detaches the node pool from the underlying list.
func (q *Queue[T]) RemoveNodePool() {
	if q.lst != nil {
		q.lst.RemoveNodePool()
	}
}

// List exposes the underlying container for direct access.
func (q *Queue[T]) List() *list.List[T] { return q.lst }

// Destroy detaches the adapter. An owned list is destroyed with it; a
// wrapped one is handed back untouched.
func (q *Queue[T]) Destroy() {
	if q.lst != nil && q.owned {
		q.lst.Destroy()
	}
	q.lst = nil
}

var _ api.Lockable = (*Queue[int])(nil)
