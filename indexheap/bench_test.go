package indexheap_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlheap/indexheap"
)

// BenchmarkBulkLoadDrain measures the two-phase bulk load (N inserts +
// one Heapify) followed by a full drain, the traversal seeding pattern.
func BenchmarkBulkLoadDrain(b *testing.B) {
	const N = 10000
	rnd := rand.New(rand.NewSource(42))
	weights := make([]int64, N)
	for i := range weights {
		weights[i] = rnd.Int63n(1 << 20)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		h := indexheap.New[int64, int](indexheap.WithCapacity(N))
		for j, w := range weights {
			h.Insert(w, j)
		}
		h.Heapify()
		for !h.IsEmpty() {
			_, _ = h.RemoveMin()
		}
	}
}

// BenchmarkDecreaseKey measures a decrease-key-heavy workload: each
// round mutates a random live entry through Access and settles with Fix.
func BenchmarkDecreaseKey(b *testing.B) {
	const N = 4096
	rnd := rand.New(rand.NewSource(7))

	h := indexheap.New[int64, int](indexheap.WithCapacity(N))
	ids := make([]uint64, N)
	for j := 0; j < N; j++ {
		ids[j] = h.Insert(rnd.Int63n(1<<20)+1, j)
	}
	h.Heapify()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		id := ids[rnd.Intn(N)]
		e, err := h.Access(id)
		if err != nil {
			b.Fatal(err)
		}
		if e.Weight > 1 {
			e.Weight--
		}
		if err = h.Fix(id); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkHeapify measures the full O(n) rebuild on a shuffled array.
func BenchmarkHeapify(b *testing.B) {
	const N = 10000
	rnd := rand.New(rand.NewSource(99))

	h := indexheap.New[int64, int](indexheap.WithCapacity(N))
	ids := make([]uint64, N)
	for j := 0; j < N; j++ {
		ids[j] = h.Insert(rnd.Int63n(1<<20), j)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		// Re-randomize weights in place, then rebuild.
		for _, id := range ids {
			e, _ := h.Access(id)
			e.Weight = rnd.Int63n(1 << 20)
		}
		h.Heapify()
	}
}
