package traverse

import (
	"github.com/katalvlaran/lvlheap/core"
	"github.com/katalvlaran/lvlheap/indexheap"
)

// relaxRule selects how a candidate weight for a neighbor is computed
// from the vertex being finalized.
type relaxRule int

const (
	// ruleCumulative: candidate = dist(current) + edge weight.
	// Shortest-path semantics (Dijkstra).
	ruleCumulative relaxRule = iota

	// ruleAttach: candidate = edge weight alone, the cost of attaching
	// the neighbor to the growing tree. Spanning-tree semantics (Prim).
	ruleAttach
)

// frontier holds the mutable state of one greedy traversal: the indexed
// heap scheduling the not-yet-finalized vertices, and the maps tracking
// weights and predecessor links. It is owned by exactly one run and is
// never shared.
type frontier struct {
	g       *core.Graph
	hp      *indexheap.Heap[int64, string] // frontier vertices keyed by weight
	entryOf map[string]uint64              // vertex ID -> stable heap entry ID
	pending map[string]bool                // true while the vertex is still in the frontier
	dist    map[string]int64               // best known weight per vertex
	prev    map[string]string              // predecessor links; "" for source/unreached
	order   []string                       // vertices in finalization order
}

// newFrontier seeds one heap entry per vertex at the Unreachable
// sentinel, except the source at weight 0, and settles the heap with a
// single O(V) Heapify. This is the two-phase bulk-load the heap's
// deferred-insert API exists for.
func newFrontier(g *core.Graph, source string) *frontier {
	vertices := g.Vertices()
	n := len(vertices)

	f := &frontier{
		g:       g,
		hp:      indexheap.New[int64, string](indexheap.WithCapacity(n)),
		entryOf: make(map[string]uint64, n),
		pending: make(map[string]bool, n),
		dist:    make(map[string]int64, n),
		prev:    make(map[string]string, n),
		order:   make([]string, 0, n),
	}

	for _, v := range vertices {
		w := Unreachable
		if v == source {
			w = 0
		}
		f.entryOf[v] = f.hp.Insert(w, v)
		f.pending[v] = true
		f.dist[v] = w
		f.prev[v] = ""
	}
	f.hp.Heapify()

	return f
}

// run is the shared greedy loop: repeatedly extract the globally
// cheapest frontier vertex, finalize it, and relax its outgoing edges
// under the given rule.
//
// Termination:
//
//   - the heap is exhausted (every vertex finalized), or
//   - the minimum weight equals the Unreachable sentinel: the remaining
//     vertices cannot be reached from the explored component, and the
//     partial result built so far is returned as-is, or
//   - the optional target vertex was finalized, or
//   - the optional visit cap was hit.
//
// Complexity: O((V + E) log V).
func (f *frontier) run(rule relaxRule, target string, maxVisits int) error {
	visits := 0
	for !f.hp.IsEmpty() {
		// 1) Read the cheapest frontier vertex.
		min, err := f.hp.PeekMin()
		if err != nil {
			return err
		}

		// 2) Sentinel minimum: everything still in the heap is
		//    unreachable. Normal early termination, not an error.
		if min.Weight == Unreachable {
			break
		}

		// 3) Extract and finalize. RemoveMin re-settles the heap, so
		//    the next iteration's PeekMin is immediately valid.
		if _, err = f.hp.RemoveMin(); err != nil {
			return err
		}
		u := min.Payload
		f.pending[u] = false
		f.dist[u] = min.Weight
		f.order = append(f.order, u)

		// 4) Propagate improved weights to frontier neighbors.
		if err = f.relax(u, min.Weight, rule); err != nil {
			return err
		}

		// 5) Early exits: target finalized, or visit cap reached.
		if target != "" && u == target {
			break
		}
		visits++
		if maxVisits > 0 && visits >= maxVisits {
			break
		}
	}

	return nil
}

// relax examines each outgoing edge of the just-finalized vertex u and
// applies decrease-key to any frontier neighbor whose weight strictly
// improves: the neighbor's heap entry is mutated in place through its
// stable ID and re-settled with one O(log n) Fix, and the predecessor
// link is recorded.
func (f *frontier) relax(u string, uWeight int64, rule relaxRule) error {
	neighbors, err := f.g.Neighbors(u)
	if err != nil {
		// Cannot happen for vertices seeded from g.Vertices(); kept as
		// a hard failure rather than a silent skip.
		return err
	}

	for _, e := range neighbors {
		v := e.To
		if !f.pending[v] {
			continue // already finalized; never re-relaxed
		}

		candidate := e.Weight
		if rule == ruleCumulative {
			candidate += uWeight
		}

		entry, accessErr := f.hp.Access(f.entryOf[v])
		if accessErr != nil {
			return accessErr
		}
		if candidate >= entry.Weight {
			continue // not a strict improvement
		}

		entry.Weight = candidate
		if err = f.hp.Fix(f.entryOf[v]); err != nil {
			return err
		}
		f.dist[v] = candidate
		f.prev[v] = u
	}

	return nil
}
