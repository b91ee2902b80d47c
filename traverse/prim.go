package traverse

import "github.com/katalvlaran/lvlheap/core"

// Prim computes a Minimum Spanning Tree of an undirected weighted graph
// by growing outwards from the source vertex, using the same indexed
// frontier loop as Dijkstra but with attachment-cost relaxation: a
// frontier vertex is keyed by the cheapest single edge connecting it to
// the tree, not by cumulative distance.
//
// Returns the tree edges in attachment order (the order vertices were
// pulled into the tree) and the total tree weight. Edge ordering among
// equal weights is arbitrary.
//
// Error conditions:
//
//   - ErrEmptySource    : no root vertex was provided.
//   - ErrNilGraph       : graph is nil.
//   - ErrDirectedGraph  : graph defaults to directed, or any edge
//     carries a per-edge directed override.
//   - ErrDisconnected   : no vertices at all, or fewer than V-1 tree
//     edges were found without a visit cap in force.
//   - ErrVertexNotFound : the root does not exist in the graph.
//
// With WithMaxVisits the run stops early and the partial tree built so
// far is returned without error.
//
// Complexity: O((V + E) log V) time, O(V) space beyond the graph.
func Prim(g *core.Graph, opts ...Option) ([]core.Edge, int64, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return nil, 0, ErrEmptySource
	}

	// 2) Validate the graph: non-nil and fully undirected.
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if g.Directed() || g.HasDirectedEdges() {
		return nil, 0, ErrDirectedGraph
	}

	// 3) Validate vertices and the trivial cases.
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if !g.HasVertex(cfg.Source) {
		return nil, 0, ErrVertexNotFound
	}
	if len(vertices) == 1 {
		// Single-vertex tree: no edges, zero weight.
		return []core.Edge{}, 0, nil
	}

	// 4) Run the shared frontier loop under attachment-cost relaxation.
	f := newFrontier(g, cfg.Source)
	if err := f.run(ruleAttach, "", cfg.MaxVisits); err != nil {
		return nil, 0, err
	}

	// 5) Collect tree edges: every finalized vertex except the root was
	//    attached through its recorded predecessor at its final weight.
	mst := make([]core.Edge, 0, len(vertices)-1)
	var total int64
	for _, v := range f.order {
		if v == cfg.Source {
			continue
		}
		e := core.Edge{From: f.prev[v], To: v, Weight: f.dist[v]}
		mst = append(mst, e)
		total += e.Weight
	}

	// 6) Without a visit cap, an incomplete tree means the graph is
	//    disconnected; with a cap, a partial tree is the requested result.
	if len(mst) < len(vertices)-1 && cfg.MaxVisits == 0 {
		return mst, total, ErrDisconnected
	}

	return mst, total, nil
}
