package indexheap

import "golang.org/x/exp/constraints"

// Heap is an array-backed binary min-heap whose entries stay addressable
// by stable ID while they move through the array.
//
// Two structures back every operation:
//
//   - data: the binary heap itself; for every non-root slot i,
//     data[parentOf(i)].Weight <= data[i].Weight once the heap is settled.
//   - pos:  the position index, mapping each live ID to the unique slot
//     currently holding its entry. Every swap updates both displaced
//     entries in the same step, so the mapping is a bijection after
//     every public operation.
//
// The API is deliberately two-phase: Insert appends without restoring
// order, and weight mutation through Access leaves order suspended, so
// bulk-loading V entries costs O(V) plus a single O(V) Heapify instead
// of O(V log V). Callers must settle the heap (Heapify for batches,
// Fix for a single entry) before the next PeekMin or RemoveMin.
//
// Heap is not safe for concurrent use: intermediate sift states must
// never be observed from another goroutine. Confine an instance to its
// owning goroutine or wrap it in a mutex externally.
type Heap[W constraints.Ordered, P any] struct {
	data   []Entry[W, P]  // backing array in heap order when settled
	pos    map[uint64]int // live entry ID -> current slot in data
	nextID uint64         // monotonic ID source, instance-local, never reused
}

// New constructs an empty Heap with the given options.
// Complexity: O(1), or O(capacity) allocation with WithCapacity.
func New[W constraints.Ordered, P any](opts ...Option) *Heap[W, P] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Heap[W, P]{
		data: make([]Entry[W, P], 0, cfg.capacity),
		pos:  make(map[uint64]int, cfg.capacity),
	}
}

// Insert appends a new entry and returns its freshly issued stable ID.
// It does NOT restore heap order; call Heapify once after a batch of
// insertions. Complexity: amortized O(1).
func (h *Heap[W, P]) Insert(weight W, payload P) uint64 {
	id := h.nextID
	h.nextID++

	h.data = append(h.data, Entry[W, P]{ID: id, Weight: weight, Payload: payload})
	h.pos[id] = len(h.data) - 1

	return id
}

// Heapify restores the min-heap property over the whole backing array
// with a bottom-up sift-down pass. Safe on an empty heap (no-op) and
// idempotent: a second call with no intervening mutation moves nothing.
// Complexity: O(n).
func (h *Heap[W, P]) Heapify() {
	// Internal nodes occupy slots [0, len/2); leaves are already heaps.
	for i := len(h.data)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}
}

// Fix restores heap order after a single entry's weight changed through
// Access: the entry is sifted down, or up if it did not move down.
// Returns ErrUnknownID for stale or never-issued IDs.
// Complexity: O(log n).
func (h *Heap[W, P]) Fix(id uint64) error {
	i, ok := h.pos[id]
	if !ok {
		return ErrUnknownID
	}

	if !h.siftDown(i) {
		h.siftUp(i)
	}

	return nil
}

// PeekMin returns the root entry without removing it.
// Returns ErrEmptyHeap if no entries remain.
// Complexity: O(1).
func (h *Heap[W, P]) PeekMin() (Entry[W, P], error) {
	if len(h.data) == 0 {
		var zero Entry[W, P]
		return zero, ErrEmptyHeap
	}

	return h.data[0], nil
}

// RemoveMin removes and returns the root entry: the root is swapped
// with the last slot, the array shrinks by one, the removed ID is
// dropped from the position index, and the displaced entry is sifted
// down to its place. The heap is therefore settled immediately after
// RemoveMin returns; no Heapify is required between extractions.
// Returns ErrEmptyHeap if no entries remain.
// Complexity: O(log n).
func (h *Heap[W, P]) RemoveMin() (Entry[W, P], error) {
	n := len(h.data)
	if n == 0 {
		var zero Entry[W, P]
		return zero, ErrEmptyHeap
	}

	min := h.data[0]
	h.swap(0, n-1)
	h.data = h.data[:n-1]
	delete(h.pos, min.ID)

	if len(h.data) > 0 {
		h.siftDown(0)
	}

	return min, nil
}

// Remove deletes the entry with the given stable ID from any position:
// the entry is swapped with the last slot, the array shrinks, and the
// displaced entry is sifted down or up to restore order.
// Returns ErrUnknownID for stale or never-issued IDs.
// Complexity: O(log n).
func (h *Heap[W, P]) Remove(id uint64) (Entry[W, P], error) {
	i, ok := h.pos[id]
	if !ok {
		var zero Entry[W, P]
		return zero, ErrUnknownID
	}

	n := len(h.data)
	removed := h.data[i]
	h.swap(i, n-1)
	h.data = h.data[:n-1]
	delete(h.pos, id)

	// The displaced last entry may violate order in either direction.
	if i < len(h.data) {
		if !h.siftDown(i) {
			h.siftUp(i)
		}
	}

	return removed, nil
}

// Access returns a mutable reference to the entry with the given stable
// ID via one position-index lookup. Mutating Weight through the
// reference suspends heap order until the next Heapify or Fix call;
// that is the documented batched-update contract, not a defect. The
// reference is invalidated by any subsequent heap operation that moves
// entries (Insert, Heapify, Fix, RemoveMin, Remove).
// Returns ErrUnknownID for stale or never-issued IDs.
// Complexity: O(1).
func (h *Heap[W, P]) Access(id uint64) (*Entry[W, P], error) {
	i, ok := h.pos[id]
	if !ok {
		return nil, ErrUnknownID
	}

	return &h.data[i], nil
}

// Contains reports whether the given stable ID refers to a live entry.
// Complexity: O(1).
func (h *Heap[W, P]) Contains(id uint64) bool {
	_, ok := h.pos[id]
	return ok
}

// IsEmpty reports whether the heap holds no entries.
func (h *Heap[W, P]) IsEmpty() bool { return len(h.data) == 0 }

// Len returns the number of live entries.
func (h *Heap[W, P]) Len() int { return len(h.data) }

// parentOf returns the parent slot of i in 0-based numbering.
// The root (i == 0) maps onto itself only by accident of the formula;
// callers must not ask for the root's parent.
func parentOf(i int) int { return (i - 1) / 2 }

// leftChildOf returns the left child slot of i in 0-based numbering.
func leftChildOf(i int) int { return 2*i + 1 }

// rightChildOf returns the right child slot of i in 0-based numbering.
func rightChildOf(i int) int { return 2*i + 2 }

// swap exchanges slots i and j and updates the position index for both
// displaced entries in the same step, preserving the bijection.
func (h *Heap[W, P]) swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
	h.pos[h.data[i].ID] = i
	h.pos[h.data[j].ID] = j
}

// siftDown moves the entry at slot i downward, swapping with the
// smaller child while the heap property is violated. Reports whether
// the entry moved at all, which Fix and Remove use to decide on a
// follow-up siftUp. Complexity: O(log n).
func (h *Heap[W, P]) siftDown(i int) bool {
	start := i
	n := len(h.data)
	for {
		l := leftChildOf(i)
		if l >= n {
			break // i is a leaf
		}

		// Pick the smaller of the (one or two) children.
		s := l
		if r := rightChildOf(i); r < n && h.data[r].Weight < h.data[l].Weight {
			s = r
		}

		if h.data[i].Weight <= h.data[s].Weight {
			break // heap property holds at i
		}

		h.swap(i, s)
		i = s
	}

	return i > start
}

// siftUp moves the entry at slot i upward while it is lighter than its
// parent. Complexity: O(log n).
func (h *Heap[W, P]) siftUp(i int) {
	for i > 0 {
		p := parentOf(i)
		if h.data[p].Weight <= h.data[i].Weight {
			break
		}

		h.swap(i, p)
		i = p
	}
}
