package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tessera/bfs"
	"github.com/katalvlaran/tessera/core"
)

// square builds the 4-neighbor graph of an n×n layout with IDs y*n+x+1.
func square(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			id := y*n + x + 1
			g.AddVertex(id)
			if x+1 < n {
				require.NoError(t, g.AddEdge(id, id+1))
			}
			if y+1 < n {
				require.NoError(t, g.AddEdge(id, id+n))
			}
		}
	}

	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 1)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, 1)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}

func TestBFS_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex(7)
	res, err := bfs.BFS(g, 7)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, res.Order)
	id, d := res.Farthest()
	assert.Equal(t, 7, id)
	assert.Zero(t, d)
}

func TestBFS_SquareLayout(t *testing.T) {
	g := square(t, 3)
	res, err := bfs.BFS(g, 1)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 4, 3, 5, 7, 6, 8, 9}, res.Order)
	id, d := res.Farthest()
	assert.Equal(t, 9, id)
	assert.Equal(t, 4, d)

	for id, want := range map[int]int{1: 0, 2: 1, 4: 1, 5: 2, 3: 2, 6: 3, 8: 3} {
		assert.Equal(t, want, res.Depth[id], "depth of %d", id)
	}
}

func TestBFS_Disconnected(t *testing.T) {
	g := square(t, 2)
	g.AddVertex(99)
	res, err := bfs.BFS(g, 1)
	require.NoError(t, err)
	assert.Len(t, res.Order, 4)
	assert.True(t, res.Reached(4))
	assert.False(t, res.Reached(99))
	id, d := res.Farthest()
	assert.Equal(t, 4, id)
	assert.Equal(t, 2, d)
}

func TestBFS_FromCentre(t *testing.T) {
	res, err := bfs.BFS(square(t, 3), 5)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 2, 4, 6, 8, 1, 3, 7, 9}, res.Order)
	id, d := res.Farthest()
	assert.Equal(t, 1, id)
	assert.Equal(t, 2, d)
}
