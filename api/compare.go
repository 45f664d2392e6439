// File: api/compare.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Function types consumed by the algorithm engine and by containers.

package api

// Compare is a three-way comparator: negative when a < b, zero when
// equal, positive when a > b. Equality throughout the library means
// Compare(a, b) == 0, never pointer identity.
type Compare[T any] func(a, b T) int

// Predicate reports whether an element satisfies a condition.
type Predicate[T any] func(v T) bool

// UnaryOp mutates an element in place.
type UnaryOp[T any] func(v *T)

// BinaryOp mutates dst using src.
type BinaryOp[T any] func(dst *T, src T)

// Generator produces a fresh element value.
type Generator[T any] func() T

// Destructor releases resources held by an element before the library
// drops or overwrites it. Containers and object pools invoke it; a nil
// destructor means elements need no teardown.
type Destructor[T any] func(v *T)
