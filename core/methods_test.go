// Package core_test verifies core.Graph method-level contracts.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tessera/core"
)

// TestGraph_AddVertex verifies idempotent vertex insertion.
func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph(core.WithCapacity(4))
	assert.False(t, g.HasVertex(1))

	g.AddVertex(1)
	g.AddVertex(1)
	assert.True(t, g.HasVertex(1))
	assert.Equal(t, 1, g.VertexCount())

	deg, err := g.Degree(1)
	require.NoError(t, err)
	assert.Zero(t, deg)
}

// TestGraph_AddEdge verifies mirroring, idempotence and loop rejection.
func TestGraph_AddEdge(t *testing.T) {
	g := core.NewGraph()

	require.NoError(t, g.AddEdge(3, 1))
	require.NoError(t, g.AddEdge(1, 3))
	assert.True(t, g.HasEdge(1, 3))
	assert.True(t, g.HasEdge(3, 1))
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 2, g.VertexCount())

	err := g.AddEdge(2, 2)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	assert.False(t, g.HasVertex(2), "rejected loop must not add its vertex")

	assert.False(t, g.HasEdge(1, 99))
}

// TestGraph_NeighborIDs verifies sorted output and the missing-vertex sentinel.
func TestGraph_NeighborIDs(t *testing.T) {
	g := core.NewGraph()
	for _, v := range []int{9, 2, 7, 4} {
		require.NoError(t, g.AddEdge(5, v))
	}

	ids, err := g.NeighborIDs(5)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 7, 9}, ids)

	ids, err = g.NeighborIDs(7)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, ids)

	_, err = g.NeighborIDs(42)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Degree(42)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestGraph_VerticesEdgesOrder anchors the deterministic ordering contracts.
func TestGraph_VerticesEdgesOrder(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(30, 10))
	require.NoError(t, g.AddEdge(20, 10))
	require.NoError(t, g.AddEdge(30, 20))
	g.AddVertex(5)

	assert.Equal(t, []int{5, 10, 20, 30}, g.Vertices())
	assert.Equal(t, []core.Edge{{From: 10, To: 20}, {From: 10, To: 30}, {From: 20, To: 30}}, g.Edges())
}

// TestGraph_Clone verifies that a clone is independent of its source.
func TestGraph_Clone(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2))

	c := g.Clone()
	require.NoError(t, c.AddEdge(2, 3))

	assert.True(t, c.HasEdge(1, 2))
	assert.False(t, g.HasEdge(2, 3))
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 2, c.EdgeCount())
}
