// Package ast implements the expression arena (C4): append-only storage
// for every AST node kind, addressed by stable, never-invalidated handles
// (P5).
package ast

import (
	"fmt"

	"fortio.org/safecast"
)

// Arena is a generic append-only typed arena. Index 0 is never allocated
// to a value, so a zero handle unambiguously means "absent" across every
// ID type built on top of it.
type Arena[T any] struct {
	data []T
}

// NewArena creates an Arena with capHint elements of storage pre-reserved.
func NewArena[T any](capHint uint) *Arena[T] {
	return &Arena[T]{data: make([]T, 0, capHint)}
}

// Allocate appends value and returns its 1-based index. Per P5, this
// index resolves to the same logical payload for the lifetime of the
// arena: the arena only grows, and Allocate never reuses or invalidates
// a previously returned index.
func (a *Arena[T]) Allocate(value T) uint32 {
	a.data = append(a.data, value)
	return a.Len()
}

// Get returns the element at the given 1-based index. Index 0 panics,
// matching the contract that callers check validity (IsValid) before
// dereferencing a handle.
func (a *Arena[T]) Get(index uint32) T {
	if index == 0 {
		panic("ast: Get called with the zero (absent) handle")
	}
	return a.data[index-1]
}

// Set overwrites the element at the given 1-based index in place. Used
// sparingly - e.g. by the parser to patch a forward-declared node once its
// children are known - never to invalidate a handle's identity.
func (a *Arena[T]) Set(index uint32, value T) {
	a.data[index-1] = value
}

// Slice returns the arena's live elements in allocation order. The
// returned slice aliases the arena's backing array; callers must not
// retain it across further Allocate calls.
func (a *Arena[T]) Slice() []T {
	return a.data
}

// Len returns the number of elements allocated so far.
func (a *Arena[T]) Len() uint32 {
	n, err := safecast.Conv[uint32](len(a.data))
	if err != nil {
		panic(fmt.Errorf("ast: arena length overflow: %w", err))
	}
	return n
}
