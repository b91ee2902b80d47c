// Package core defines the weighted Graph and Edge types consumed by
// the traversal algorithms, and provides thread-safe primitives for
// building and querying adjacency.
//
// This file declares Edge, Graph, GraphOption, EdgeOption, sentinel
// errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrLoopNotAllowed - self-loop when loops are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge represents a weighted connection between two vertices.
//
// From and To are vertex IDs; Weight is the traversal cost. Directed
// marks the edge as one-way. Undirected edges appear in the adjacency
// of both endpoints, so Neighbors always returns outgoing edges only.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost of the edge.
	Weight int64

	// Directed indicates this edge is one-way (true) or bidirectional (false).
	Directed bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the default directedness for all new edges
// (true = directed, false = undirected).
func WithDirected(defaultDirected bool) GraphOption {
	return func(g *Graph) { g.directed = defaultDirected }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeDirected overrides the Graph's default directedness for this edge.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(e *Edge) { e.Directed = directed }
}

// Graph is an in-memory adjacency-list graph with string vertex IDs and
// int64 edge weights.
//
// mu guards vertices, adjacency and edgeCount, so graphs may be shared
// across goroutines for reads while a traversal runs. Undirected edges
// are stored as mirrored copies in both endpoints' adjacency slices.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	directed   bool // default directedness for new edges
	allowLoops bool // allow self-loops

	// Storage
	vertices  map[string]struct{} // vertex ID set
	adjacency map[string][]Edge   // vertex ID -> outgoing edges
	edgeCount int                 // logical edge count (mirrors counted once)
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected and disallows self-loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string][]Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
