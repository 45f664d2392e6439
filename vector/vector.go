// File: vector/vector.go
// Package vector implements the library's contiguous dynamic array.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Vector stores elements in one growable backing array. Growth follows
// a tiered policy (small vectors grow by fixed steps, mid-size vectors
// multiply, large vectors grow by pages) and can draw whole backing
// blocks from an attached block pool instead of the runtime allocator.

package vector

import (
	"sync"

	"github.com/momentics/seqkit/api"
)

const defaultGrowthFactor = 2.0

// Option configures a vector at construction.
type Option[T any] func(*Vector[T])

// WithCapacity pre-allocates storage for n elements.
func WithCapacity[T any](n int) Option[T] {
	return func(v *Vector[T]) {
		if n > 0 {
			v.data = make([]T, n)
		}
	}
}

// WithDestructor installs a hook invoked on every element the vector
// drops or overwrites (pop, erase, set, clear, truncating resize).
func WithDestructor[T any](dtor api.Destructor[T]) Option[T] {
	return func(v *Vector[T]) { v.dtor = dtor }
}

// Vector is a dynamic array. The zero value is not usable; construct
// with New. Not safe for concurrent use unless EnableThreadSafety has
// been called first.
type Vector[T any] struct {
	mu   sync.Mutex
	safe bool

	data []T // physical storage; len(data) is the capacity
	size int

	growthFactor float64
	dtor         api.Destructor[T]

	pool      api.BlockPool[T] // optional backing-block source
	backing   api.Block[T]     // non-nil while data is pool-backed
	destroyed bool
}

// New creates an empty vector.
func New[T any](opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{growthFactor: defaultGrowthFactor}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *Vector[T]) lock() {
	if v.safe {
		v.mu.Lock()
	}
}

func (v *Vector[T]) unlock() {
	if v.safe {
		v.mu.Unlock()
	}
}

// EnableThreadSafety turns on the per-call mutex. Enable before sharing
// the vector across goroutines; toggling during concurrent use is a
// caller error.
func (v *Vector[T]) EnableThreadSafety() { v.safe = true }

// DisableThreadSafety turns the per-call mutex back off.
func (v *Vector[T]) DisableThreadSafety() { v.safe = false }

// ensureCapacity grows the backing array until it holds at least min
// elements: +32 while small, multiplied by the growth factor in the
// middle tier, then by fixed pages. When a pool is attached and the
// target capacity fits one block, the new backing comes from the pool.
func (v *Vector[T]) ensureCapacity(min int) error {
	if len(v.data) >= min {
		return nil
	}
	newCap := len(v.data)
	for newCap < min {
		switch {
		case newCap <= 128:
			newCap += 32
		case newCap <= 8*1024:
			grown := int(float64(newCap) * v.growthFactor)
			if grown <= newCap {
				grown = newCap + 1
			}
			newCap = grown
		case newCap <= 128*1024:
			newCap += 4 * 1024
		default:
			newCap += 64 * 1024
		}
	}

	if v.pool != nil && newCap <= v.pool.BlockLen() {
		if blk, err := v.pool.Acquire(); err == nil {
			next := blk.Elems()
			copy(next, v.data[:v.size])
			v.dropBacking()
			v.data = next
			v.backing = blk
			return nil
		}
		// Pool unusable (destroyed); fall back to the runtime.
	}

	next := make([]T, newCap)
	copy(next, v.data[:v.size])
	v.dropBacking()
	v.data = next
	return nil
}

// dropBacking returns the current pool block, if any. A pool destroyed
// out from under the vector just abandons the block.
func (v *Vector[T]) dropBacking() {
	if v.backing != nil {
		_ = v.pool.Release(v.backing)
		v.backing = nil
	}
}

// zeroRange clears dropped slots so stale elements do not pin memory.
func (v *Vector[T]) zeroRange(from, to int) {
	var zero T
	for i := from; i < to; i++ {
		v.data[i] = zero
	}
}

// Len reports the number of stored elements.
func (v *Vector[T]) Len() int {
	v.lock()
	defer v.unlock()
	return v.size
}

// Cap reports the current capacity.
func (v *Vector[T]) Cap() int {
	v.lock()
	defer v.unlock()
	return len(v.data)
}

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool { return v.Len() == 0 }

// SetGrowthFactor replaces the middle-tier growth multiplier.
// Factors not greater than 1.0 cannot make progress and are rejected.
func (v *Vector[T]) SetGrowthFactor(f float64) error {
	if f <= 1.0 {
		return api.NewError(api.CodeInvalidArgument, "growth factor must be greater than 1.0").
			WithContext("factor", f)
	}
	v.lock()
	defer v.unlock()
	v.growthFactor = f
	return nil
}

// Reserve grows capacity to at least n. Shrinking is not performed.
func (v *Vector[T]) Reserve(n int) error {
	v.lock()
	defer v.unlock()
	if v.destroyed {
		return api.NewError(api.CodeInvalidArgument, "vector is destroyed")
	}
	return v.ensureCapacity(n)
}

// Resize sets the element count to n, zero-filling new slots or
// destructing truncated ones.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		return api.ErrInvalidIndex
	}
	v.lock()
	defer v.unlock()
	if v.destroyed {
		return api.NewError(api.CodeInvalidArgument, "vector is destroyed")
	}
	if err := v.ensureCapacity(n); err != nil {
		return err
	}
	if n < v.size {
		if v.dtor != nil {
			for i := n; i < v.size; i++ {
				v.dtor(&v.data[i])
			}
		}
		v.zeroRange(n, v.size)
	} else {
		v.zeroRange(v.size, n)
	}
	v.size = n
	return nil
}

// PushBack appends an element.
func (v *Vector[T]) PushBack(elem T) error {
	v.lock()
	defer v.unlock()
	if v.destroyed {
		return api.NewError(api.CodeInvalidArgument, "vector is destroyed")
	}
	if err := v.ensureCapacity(v.size + 1); err != nil {
		return err
	}
	v.data[v.size] = elem
	v.size++
	return nil
}

// PopBack removes the last element.
func (v *Vector[T]) PopBack() error {
	v.lock()
	defer v.unlock()
	if v.size == 0 {
		return api.ErrContainerEmpty
	}
	if v.dtor != nil {
		v.dtor(&v.data[v.size-1])
	}
	v.zeroRange(v.size-1, v.size)
	v.size--
	return nil
}

// Insert places an element at index i, shifting the tail right.
// i may equal Len, which appends.
func (v *Vector[T]) Insert(i int, elem T) error {
	v.lock()
	defer v.unlock()
	if v.destroyed {
		return api.NewError(api.CodeInvalidArgument, "vector is destroyed")
	}
	if i < 0 || i > v.size {
		return api.ErrInvalidIndex
	}
	if err := v.ensureCapacity(v.size + 1); err != nil {
		return err
	}
	copy(v.data[i+1:v.size+1], v.data[i:v.size])
	v.data[i] = elem
	v.size++
	return nil
}

// Erase removes the element at index i, shifting the tail left.
func (v *Vector[T]) Erase(i int) error {
	v.lock()
	defer v.unlock()
	if i < 0 || i >= v.size {
		return api.ErrInvalidIndex
	}
	if v.dtor != nil {
		v.dtor(&v.data[i])
	}
	copy(v.data[i:v.size-1], v.data[i+1:v.size])
	v.zeroRange(v.size-1, v.size)
	v.size--
	return nil
}

// At returns a mutable reference to the element at index i. The
// reference stays valid until the vector reallocates.
func (v *Vector[T]) At(i int) (*T, error) {
	v.lock()
	defer v.unlock()
	if i < 0 || i >= v.size {
		return nil, api.ErrInvalidIndex
	}
	return &v.data[i], nil
}

// Set overwrites the element at index i, destructing the old value.
func (v *Vector[T]) Set(i int, elem T) error {
	v.lock()
	defer v.unlock()
	if i < 0 || i >= v.size {
		return api.ErrInvalidIndex
	}
	if v.dtor != nil {
		v.dtor(&v.data[i])
	}
	v.data[i] = elem
	return nil
}

// Front returns a mutable reference to the first element.
func (v *Vector[T]) Front() (*T, error) {
	v.lock()
	defer v.unlock()
	if v.size == 0 {
		return nil, api.ErrContainerEmpty
	}
	return &v.data[0], nil
}

// Back returns a mutable reference to the last element.
func (v *Vector[T]) Back() (*T, error) {
	v.lock()
	defer v.unlock()
	if v.size == 0 {
		return nil, api.ErrContainerEmpty
	}
	return &v.data[v.size-1], nil
}

// Clear removes every element, keeping capacity.
func (v *Vector[T]) Clear() {
	v.lock()
	defer v.unlock()
	v.clearLocked()
}

func (v *Vector[T]) clearLocked() {
	if v.dtor != nil {
		for i := 0; i < v.size; i++ {
			v.dtor(&v.data[i])
		}
	}
	v.zeroRange(0, v.size)
	v.size = 0
}

// ShrinkToFit reallocates the backing array down to exactly Len
// elements, returning any pooled block.
func (v *Vector[T]) ShrinkToFit() {
	v.lock()
	defer v.unlock()
	if v.destroyed || len(v.data) == v.size {
		return
	}
	next := make([]T, v.size)
	copy(next, v.data[:v.size])
	v.dropBacking()
	v.data = next
}

// SetBlockPool attaches a block pool; subsequent growth draws backing
// blocks from it while the needed capacity fits one block. The pool
// must outlive the vector's use of it.
func (v *Vector[T]) SetBlockPool(p api.BlockPool[T]) error {
	if p == nil {
		return api.ErrNullPointer
	}
	v.lock()
	defer v.unlock()
	v.pool = p
	return nil
}

// RemoveBlockPool detaches the pool. If the current backing came from
// it, the elements move to a runtime-allocated array first and the
// block is returned.
func (v *Vector[T]) RemoveBlockPool() {
	v.lock()
	defer v.unlock()
	if v.backing != nil {
		next := make([]T, len(v.data))
		copy(next, v.data[:v.size])
		v.dropBacking()
		v.data = next
	}
	v.pool = nil
}

// Destroy clears the vector, returns pooled backing and marks the
// vector unusable. Further operations report an error.
func (v *Vector[T]) Destroy() {
	v.lock()
	defer v.unlock()
	if v.destroyed {
		return
	}
	v.clearLocked()
	v.dropBacking()
	v.data = nil
	v.pool = nil
	v.destroyed = true
}

var (
	_ api.Container[int] = (*Vector[int])(nil)
	_ api.Lockable       = (*Vector[int])(nil)
)
