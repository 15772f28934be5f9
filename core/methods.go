// File: methods.go
// Role: vertex and edge lifecycle, neighborhood queries, cloning.
// Determinism:
//   - Vertices(), NeighborIDs() return IDs sorted ascending.
//   - Edges() returns edges sorted by (From, To) ascending.
// Concurrency:
//   - Mutators take mu for writing, queries take it for reading.

package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a vertex if missing.
//
// Implementation:
//   - Stage 1: Acquire the write lock.
//   - Stage 2: Allocate an empty neighbor set unless one exists.
//
// Behavior highlights:
//   - Idempotent: adding an existing vertex is a no-op.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddVertex(id int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)
}

// ensureVertex creates the neighbor set of id. Caller holds the write lock.
func (g *Graph) ensureVertex(id int) map[int]struct{} {
	nbrs, ok := g.adjacency[id]
	if !ok {
		nbrs = make(map[int]struct{}, 4)
		g.adjacency[id] = nbrs
	}

	return nbrs
}

// HasVertex reports whether id is present.
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// AddEdge connects a and b, adding either vertex when missing.
//
// Implementation:
//   - Stage 1: Reject a == b (ErrLoopNotAllowed).
//   - Stage 2: Under the write lock, bootstrap both neighbor sets.
//   - Stage 3: Insert the mirrored pair unless already present.
//
// Behavior highlights:
//   - Idempotent: re-adding an existing edge changes nothing and returns nil.
//
// Errors:
//   - ErrLoopNotAllowed: if a == b.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddEdge(a, b int) error {
	if a == b {
		return fmt.Errorf("%w: vertex %d", ErrLoopNotAllowed, a)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	na := g.ensureVertex(a)
	nb := g.ensureVertex(b)
	if _, exists := na[b]; exists {
		return nil
	}
	na[b] = struct{}{}
	nb[a] = struct{}{}
	g.edgeCount++

	return nil
}

// HasEdge reports whether a and b are adjacent. Order does not matter.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[a][b]

	return ok
}

// NeighborIDs returns the vertices adjacent to id, sorted ascending.
//
// Implementation:
//   - Stage 1: Acquire the read lock and validate id (ErrVertexNotFound).
//   - Stage 2: Copy the neighbor set into a fresh slice.
//   - Stage 3: Sort ascending.
//
// Behavior highlights:
//   - The returned slice is freshly allocated and safe to retain.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}
	out := make([]int, 0, len(nbrs))
	for v := range nbrs {
		out = append(out, v)
	}
	sort.Ints(out)

	return out, nil
}

// Degree returns the number of neighbors of id.
// Complexity: O(1).
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	return len(nbrs), nil
}

// Vertices returns every vertex ID sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, 0, len(g.adjacency))
	for id := range g.adjacency {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}

// Edges returns every edge once, with From < To, sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for a, nbrs := range g.adjacency {
		for b := range nbrs {
			if a < b {
				out = append(out, Edge{From: a, To: b})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Clone returns a deep copy of g.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewGraph(WithCapacity(len(g.adjacency)))
	for id, nbrs := range g.adjacency {
		cp := make(map[int]struct{}, len(nbrs))
		for v := range nbrs {
			cp[v] = struct{}{}
		}
		c.adjacency[id] = cp
	}
	c.edgeCount = g.edgeCount

	return c
}
