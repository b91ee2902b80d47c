// Package indexheap defines the entry type, sentinel errors and
// construction options for the indexed binary min-heap.
package indexheap

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for heap operations.
var (
	// ErrEmptyHeap is returned by PeekMin and RemoveMin when the heap
	// holds no entries.
	ErrEmptyHeap = errors.New("indexheap: heap is empty")

	// ErrUnknownID is returned by Access, Fix and Remove when the given
	// stable ID was never issued or its entry was already removed.
	// Stable IDs are never reused, so hitting this error indicates a
	// caller bug (use after removal), not a recoverable condition.
	ErrUnknownID = errors.New("indexheap: unknown or removed entry ID")

	// ErrBadCapacity indicates a negative capacity passed to WithCapacity.
	ErrBadCapacity = errors.New("indexheap: capacity must be non-negative")
)

// Entry is one logical element of the heap: a stable ID issued at
// insertion, a mutable weight ordering the heap, and an opaque payload.
//
// ID is assigned once by Insert, strictly increases per heap instance,
// and is never reused. It is the only handle callers should retain
// across heap mutations; array positions shift on every sift.
//
// Weight may be mutated in place through Access. Any such mutation
// suspends the heap ordering until the next Heapify or Fix call;
// reading the minimum before that is a contract violation.
//
// Payload is opaque to the heap and should be treated as immutable.
type Entry[W constraints.Ordered, P any] struct {
	// ID uniquely identifies this entry within its heap for its lifetime.
	ID uint64

	// Weight orders the heap; the minimum weight sits at the root.
	Weight W

	// Payload carries caller data, e.g. a vertex identifier.
	Payload P
}

// Option configures a Heap at construction time.
type Option func(*config)

// config collects construction parameters before the heap is allocated.
type config struct {
	capacity int
}

// WithCapacity pre-sizes the backing array and position index for n
// entries. Bulk-seeding a traversal with one entry per vertex is the
// primary use. Panics on negative n, signalling invalid configuration
// at the call site.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n < 0 {
			panic(ErrBadCapacity.Error())
		}
		c.capacity = n
	}
}
