// File: api/container.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Minimal contracts a sequential container exposes beyond its own
// concrete surface. Algorithms never require these; they exist so
// adapters and callers can hold any container generically.

package api

// Container is the common surface of the library's sequential
// containers.
type Container[T any] interface {
	// Len reports the number of stored elements.
	Len() int

	// Empty reports whether the container holds no elements.
	Empty() bool

	// Clear removes every element, invoking the container's destructor
	// hook on each.
	Clear()

	// Begin returns a cursor at the first element; on an empty
	// container it already equals End and is not dereferenceable.
	Begin() Iterator[T]

	// End returns the past-the-end sentinel cursor.
	End() Iterator[T]

	// NewIterator returns a cursor bound to the front (Forward) or the
	// back (Backward) of the container.
	NewIterator(dir Direction) Iterator[T]
}

// Lockable is implemented by containers whose per-call coarse locking
// can be toggled. Locking guards each public operation for its whole
// duration; nothing composes across calls, and iteration is never
// internally locked.
type Lockable interface {
	EnableThreadSafety()
	DisableThreadSafety()
}
