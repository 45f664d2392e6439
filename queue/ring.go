// File: queue/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Ring is a capacity-bounded FIFO over a circular buffer. Unlike the
// list-backed Queue it refuses pushes once full, so it doubles as a
// fixed-budget hand-off buffer between producer and consumer stages.

package queue

import (
	"sync"

	eq "github.com/eapache/queue"

	"github.com/momentics/seqkit/api"
)

// Ring is a bounded FIFO of T. A full ring rejects Push with a
// container-full error instead of growing.
type Ring[T any] struct {
	mu   sync.Mutex
	safe bool

	buf      *eq.Queue
	capacity int
}

// NewRing constructs a ring holding at most capacity elements.
func NewRing[T any](capacity int) (*Ring[T], error) {
	if capacity <= 0 {
		return nil, api.NewError(api.CodeInvalidArgument, "ring capacity must be positive")
	}
	return &Ring[T]{buf: eq.New(), capacity: capacity}, nil
}

func (r *Ring[T]) lock() {
	if r.safe {
		r.mu.Lock()
	}
}

func (r *Ring[T]) unlock() {
	if r.safe {
		r.mu.Unlock()
	}
}

// EnableThreadSafety makes every subsequent call take the internal
// mutex.
func (r *Ring[T]) EnableThreadSafety() { r.safe = true }

// DisableThreadSafety turns per-call locking back off.
func (r *Ring[T]) DisableThreadSafety() { r.safe = false }

// Push appends elem at the back of the ring.
func (r *Ring[T]) Push(elem T) error {
	r.lock()
	defer r.unlock()
	if r.buf.Length() >= r.capacity {
		return api.ErrContainerFull
	}
	r.buf.Add(elem)
	return nil
}

// Pop removes and returns the front element.
func (r *Ring[T]) Pop() (T, error) {
	r.lock()
	defer r.unlock()
	var zero T
	if r.buf.Length() == 0 {
		return zero, api.ErrContainerEmpty
	}
	return r.buf.Remove().(T), nil
}

// Front returns the element that Pop would remove next without
// removing it.
func (r *Ring[T]) Front() (T, error) {
	r.lock()
	defer r.unlock()
	var zero T
	if r.buf.Length() == 0 {
		return zero, api.ErrContainerEmpty
	}
	return r.buf.Peek().(T), nil
}

// Len reports the number of buffered elements.
func (r *Ring[T]) Len() int {
	r.lock()
	defer r.unlock()
	return r.buf.Length()
}

// Cap reports the fixed capacity.
func (r *Ring[T]) Cap() int { return r.capacity }

// Empty reports whether the ring holds no elements.
func (r *Ring[T]) Empty() bool { return r.Len() == 0 }

// Full reports whether Push would be rejected.
func (r *Ring[T]) Full() bool { return r.Len() >= r.capacity }

var _ api.Lockable = (*Ring[int])(nil)
