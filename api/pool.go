// File: api/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Abstract pooling APIs: fixed-block and object reuse for containers
// that opt out of per-element heap traffic.

package api

// Block is a typed handle to one fixed-length element block issued by a
// BlockPool. Handing a handle back to a pool it did not come from is a
// checked failure, not undefined behavior; the original raw-pointer
// design validated nothing, and the handle is the deliberate safety
// upgrade over it.
type Block[T any] interface {
	// Elems returns the block's element storage. The slice stays valid
	// for the pool's entire lifetime; pools never move issued blocks.
	Elems() []T
}

// BlockPool hands out fixed-length element blocks recycled through a
// free list, growing by bursts on exhaustion.
type BlockPool[T any] interface {
	// Acquire removes a block from the free list, growing the pool by
	// one burst when it is empty.
	Acquire() (Block[T], error)

	// Release returns a block to the free list. Nil handles, foreign
	// handles and double releases report ErrInvalidArgument.
	Release(b Block[T]) error

	// BlockLen reports the fixed element count of every block.
	BlockLen() int

	// Stats exposes allocation accounting for introspection.
	Stats() BlockPoolStats

	// Destroy drops the free list and closes the pool. Blocks still in
	// caller hands are abandoned; releasing them afterwards fails.
	Destroy()
}

// ObjectPool provides generic pooling of objects allocated transiently.
// Object identity (the pointer value) is stable for the object's
// lifetime regardless of pool growth.
type ObjectPool[T any] interface {
	// Get returns an available instance from the pool, allocating a
	// growth burst when no idle instance exists.
	Get() (*T, error)

	// Put returns an instance for reuse. When the pool already holds
	// its maximum of idle instances the object is destroyed instead of
	// retained; that backpressure bounds pool growth under churn.
	Put(obj *T) error

	// Stats exposes allocation accounting for introspection.
	Stats() ObjectPoolStats

	// Destroy runs the destructor over every idle instance and closes
	// the pool. Instances in caller hands are not tracked.
	Destroy()
}

// BlockPoolStats aggregates block allocation/reuse accounting.
type BlockPoolStats struct {
	BlockLen  int
	Allocated int64
	Free      int64
	Bursts    int64
}

// ObjectPoolStats aggregates object allocation/reuse accounting.
type ObjectPoolStats struct {
	TotalAlloc int64
	TotalFree  int64
	InUse      int64
	Idle       int64
}
