package traverse

import (
	"fmt"

	"github.com/katalvlaran/lvlheap/core"
)

// Dijkstra computes shortest distances from the source vertex
// (Options.Source) to all reachable vertices of g, using the indexed
// min-heap with eager decrease-key: exactly one heap entry per vertex,
// mutated in place when a relaxation improves it.
//
// Returns a Result with:
//
//   - Dist: map from vertex ID to minimum distance (Unreachable for
//     vertices the run never reached).
//   - Prev: map from vertex ID to its predecessor on one shortest path
//     ("" for the source and unreached vertices).
//
// Unreachable vertices are a normal partial result for disconnected
// graphs, never an error.
//
// Preconditions and validation (in order):
//
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source, and Target when set (ErrVertexNotFound).
//  4. No edge may have negative weight (ErrNegativeWeight, O(E) pre-scan).
//
// Options:
//
//   - Source(id):      required start vertex.
//   - WithTarget(id):  stop once id is finalized; PathTo(id) then works
//     on the partial result.
//   - WithMaxVisits(n): finalize at most n vertices.
//
// Complexity: O((V + E) log V) time, O(V) space beyond the graph.
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}

	// 2) Validate the graph.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, ErrVertexNotFound
	}
	if cfg.Target != "" && !g.HasVertex(cfg.Target) {
		return nil, fmt.Errorf("%w: target %q", ErrVertexNotFound, cfg.Target)
	}

	// 3) Pre-scan all edges for negative weights; fail fast with the
	//    offending edge in the message.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s->%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 4) Seed the frontier (one entry per vertex, source at 0) and run
	//    the greedy loop under cumulative-distance relaxation.
	f := newFrontier(g, cfg.Source)
	if err := f.run(ruleCumulative, cfg.Target, cfg.MaxVisits); err != nil {
		return nil, err
	}

	return &Result{Source: cfg.Source, Dist: f.dist, Prev: f.prev}, nil
}
