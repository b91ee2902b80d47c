package core

import "sort"

// AddVertex inserts a vertex with the given ID. Adding an existing
// vertex is a no-op. Returns ErrEmptyVertexID for the empty string.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices[id] = struct{}{}

	return nil
}

// AddEdge inserts an edge from -> to with the given weight, creating
// missing endpoints on the fly. The edge takes the graph's default
// directedness unless overridden via WithEdgeDirected. Undirected
// edges are mirrored into both adjacency slices but counted once.
//
// Returns ErrEmptyVertexID if either endpoint ID is empty, and
// ErrLoopNotAllowed for from == to unless WithLoops was set.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64, opts ...EdgeOption) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	e := Edge{From: from, To: to, Weight: weight, Directed: g.directed}
	for _, opt := range opts {
		opt(&e)
	}

	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}

	g.adjacency[from] = append(g.adjacency[from], e)
	if !e.Directed && from != to {
		// Mirror for the reverse direction; Neighbors then only ever
		// needs to report outgoing edges.
		g.adjacency[to] = append(g.adjacency[to], Edge{From: to, To: from, Weight: weight, Directed: false})
	}
	g.edgeCount++

	return nil
}

// HasVertex reports whether the given vertex exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs in sorted order, so iteration over a
// graph is deterministic. Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Neighbors returns a copy of the outgoing edges of the given vertex,
// sorted by (To, Weight) for deterministic relaxation order. For an
// undirected edge u-v, the edge appears here with From == id for both
// endpoints. Returns ErrVertexNotFound for unknown vertices.
// Complexity: O(deg log deg).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]Edge, len(g.adjacency[id]))
	copy(out, g.adjacency[id])
	sort.Slice(out, func(i, j int) bool {
		if out[i].To != out[j].To {
			return out[i].To < out[j].To
		}

		return out[i].Weight < out[j].Weight
	})

	return out, nil
}

// Edges returns every logical edge exactly once (undirected mirrors are
// collapsed to their From < To representative), sorted by (From, To,
// Weight) for determinism. Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for _, edges := range g.adjacency {
		for _, e := range edges {
			if e.Directed || e.From < e.To || e.From == e.To {
				out = append(out, e)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		if out[i].To != out[j].To {
			return out[i].To < out[j].To
		}

		return out[i].Weight < out[j].Weight
	})

	return out
}

// Directed reports the graph's default directedness for new edges.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// HasDirectedEdges reports whether any stored edge is directed,
// including per-edge overrides on an undirected-by-default graph.
// Complexity: O(E).
func (g *Graph) HasDirectedEdges() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, edges := range g.adjacency {
		for _, e := range edges {
			if e.Directed {
				return true
			}
		}
	}

	return false
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of logical edges (an undirected edge
// counts once). Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
