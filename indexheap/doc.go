// Package indexheap provides an indexed, mutable binary min-heap: a
// priority queue whose entries remain individually addressable by a
// stable ID while they move through the backing array.
//
// Overview:
//
//   - Each entry is a (stable ID, weight, payload) triple. The ID is
//     issued once at insertion from a per-instance monotonic counter and
//     is never reused; it stays valid across every heap mutation until
//     the entry is removed.
//   - A position index maps every live ID to its current array slot, so
//     Access(id) is O(1) regardless of where sifting has moved the entry.
//   - Weight mutation plus a follow-up Fix(id) implements decrease-key
//     in O(log n), the operation at the heart of Dijkstra- and
//     Prim-style greedy frontier traversal.
//
// The two-phase loading contract:
//
//	Insert appends without restoring heap order, so seeding V entries
//	costs O(V); a single Heapify() then settles the whole array in O(n).
//	Likewise, a batch of weight mutations through Access may be settled
//	by one Heapify, or a single mutation by one targeted Fix. The heap
//	property is only guaranteed at read time (PeekMin, RemoveMin) after
//	the corresponding settle call; reading a deliberately unsettled heap
//	violates the contract.
//
// Operations and complexity:
//
//	New        O(1)        construct (WithCapacity pre-sizes for bulk load)
//	Insert     O(1)*       append entry, issue stable ID, no reordering
//	Heapify    O(n)        bottom-up full rebuild, idempotent, empty-safe
//	Fix        O(log n)    settle one entry after a weight change
//	PeekMin    O(1)        read the root; ErrEmptyHeap when empty
//	RemoveMin  O(log n)    extract the root and re-settle
//	Remove     O(log n)    extract an arbitrary entry by stable ID
//	Access     O(1)        mutable reference to an entry by stable ID
//	Contains   O(1)        liveness check for a stable ID
//
// Error handling:
//
//	All failures are local precondition violations. ErrEmptyHeap guards
//	reads of an empty heap; ErrUnknownID guards use of a stale or
//	never-issued ID and indicates a caller bug. A failed operation
//	leaves the heap unchanged; there are no partial-failure states.
//
// Invariants, after every public operation completes:
//
//  1. data[parentOf(i)].Weight <= data[i].Weight for every non-root
//     slot i, whenever the heap is settled.
//  2. The position index is a bijection between live IDs and array
//     slots: both sides of every swap are updated in the same step.
//  3. Stable IDs strictly increase and are never resurrected.
//
// Ties between equal weights are broken arbitrarily; the heap makes no
// stability guarantee.
//
// Concurrency:
//
//	None. A Heap must be owned by a single goroutine; mid-sift states
//	are never safe to observe. Wrap the whole structure in a mutex if
//	you must share it.
//
// Example:
//
//	h := indexheap.New[int64, string](indexheap.WithCapacity(3))
//	a := h.Insert(10, "A")
//	_ = h.Insert(3, "B")
//	h.Heapify()
//	if e, err := h.Access(a); err == nil {
//	    e.Weight = 1  // decrease-key
//	}
//	_ = h.Fix(a)
//	min, _ := h.PeekMin() // min.Payload == "A"
package indexheap
