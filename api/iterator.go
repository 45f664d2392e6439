// File: api/iterator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Polymorphic iterator protocol. Any sequential container that exposes
// these seven operations can be traversed and rearranged by the algo
// package without the algorithms knowing anything about its layout.

package api

// Direction selects the starting position of a directional iterator
// factory: Forward binds the cursor to the container's front, Backward
// to its back. It never changes what Next and Prev mean.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// Iterator is an opaque cursor over a container. It borrows the
// container; it never owns elements and must not outlive the container.
//
// Equality is structural: two iterators are equal iff they reference the
// same container and the same logical position. The past-the-end
// position is a distinguished sentinel that is comparable but not
// dereferenceable. Container mutation (insert/erase) invalidates
// previously issued iterators; that contract belongs to the container
// and is not checked here.
type Iterator[T any] interface {
	// Next advances the cursor one logical position.
	// Reports ErrIteratorEnd when no further position exists.
	Next() error

	// Prev retreats the cursor one logical position.
	// Reports ErrIteratorEnd when already at the front.
	Prev() error

	// Get returns a mutable reference to the element at the current
	// position. Reports ErrIteratorEnd at the end sentinel.
	Get() (*T, error)

	// Valid reports whether Get would succeed.
	Valid() bool

	// Clone produces an independent cursor at the same position.
	// Advancing the clone never moves the original.
	Clone() Iterator[T]

	// Equal reports structural equality: same container, same position.
	Equal(other Iterator[T]) bool

	// Destroy detaches the cursor. The container is never affected;
	// subsequent operations on the cursor fail with ErrIteratorEnd.
	Destroy()
}
