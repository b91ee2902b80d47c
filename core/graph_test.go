// Package core_test validates graph construction, adjacency queries,
// directedness handling and the deterministic ordering guarantees.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlheap/core"
)

// TestAddVertex_Validation covers empty IDs and idempotent re-adds.
func TestAddVertex_Validation(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A")) // idempotent
	assert.Equal(t, 1, g.VertexCount())
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex("B"))
}

// TestAddEdge_AutoCreatesVertices verifies endpoints are added on the fly.
func TestAddEdge_AutoCreatesVertices(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 7))

	assert.True(t, g.HasVertex("A"))
	assert.True(t, g.HasVertex("B"))
	assert.Equal(t, 1, g.EdgeCount())
}

// TestAddEdge_Validation covers empty endpoints and disallowed loops.
func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddEdge("", "B", 1), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge("A", "", 1), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge("A", "A", 1), core.ErrLoopNotAllowed)

	gl := core.NewGraph(core.WithLoops())
	assert.NoError(t, gl.AddEdge("A", "A", 1))
	assert.Equal(t, 1, gl.EdgeCount())
}

// TestNeighbors_UndirectedMirroring verifies an undirected edge is
// visible from both endpoints, always with From set to the queried side.
func TestNeighbors_UndirectedMirroring(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 4))

	fromA, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, fromA, 1)
	assert.Equal(t, core.Edge{From: "A", To: "B", Weight: 4}, fromA[0])

	fromB, err := g.Neighbors("B")
	require.NoError(t, err)
	require.Len(t, fromB, 1)
	assert.Equal(t, core.Edge{From: "B", To: "A", Weight: 4}, fromB[0])

	// Logical edge counted once despite the mirror.
	assert.Equal(t, 1, g.EdgeCount())
	assert.Len(t, g.Edges(), 1)
}

// TestNeighbors_DirectedOneWay verifies directed edges never appear in
// the destination's outgoing adjacency.
func TestNeighbors_DirectedOneWay(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 2))

	fromA, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Len(t, fromA, 1)

	fromB, err := g.Neighbors("B")
	require.NoError(t, err)
	assert.Empty(t, fromB, "directed edge must not be walkable backwards")
}

// TestNeighbors_PerEdgeOverride verifies WithEdgeDirected on an
// undirected-by-default graph.
func TestNeighbors_PerEdgeOverride(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1, core.WithEdgeDirected(true)))
	require.NoError(t, g.AddEdge("B", "C", 1))

	fromB, err := g.Neighbors("B")
	require.NoError(t, err)
	require.Len(t, fromB, 1)
	assert.Equal(t, "C", fromB[0].To)

	assert.True(t, g.HasDirectedEdges())
	assert.False(t, g.Directed(), "default stays undirected")
}

// TestNeighbors_UnknownVertex verifies the sentinel error.
func TestNeighbors_UnknownVertex(t *testing.T) {
	g := core.NewGraph()
	_, err := g.Neighbors("ghost")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestDeterministicOrdering verifies Vertices, Neighbors and Edges all
// come back sorted regardless of insertion order.
func TestDeterministicOrdering(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("C", "A", 3))
	require.NoError(t, g.AddEdge("B", "A", 2))
	require.NoError(t, g.AddEdge("C", "B", 1))

	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())

	fromA, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, fromA, 2)
	assert.Equal(t, "B", fromA[0].To)
	assert.Equal(t, "C", fromA[1].To)

	edges := g.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, core.Edge{From: "A", To: "B", Weight: 2}, edges[0])
	assert.Equal(t, core.Edge{From: "A", To: "C", Weight: 3}, edges[1])
	assert.Equal(t, core.Edge{From: "B", To: "C", Weight: 1}, edges[2])
}
