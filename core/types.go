// Package core declares Graph, Edge, GraphOption, the sentinel errors and the
// NewGraph constructor.
//
// Errors:
//
//	ErrVertexNotFound    - requested vertex does not exist.
//	ErrLoopNotAllowed    - self-loop requested.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is an undirected connection between two vertices, normalized so that
// From < To.
type Edge struct {
	From int
	To   int
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes internal storage for n vertices.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// Graph is an undirected simple graph over int vertex IDs.
//
// mu guards adjacency and edgeCount.
type Graph struct {
	mu sync.RWMutex

	capacity  int
	edgeCount int

	// adjacency[a][b] exists iff adjacency[b][a] exists.
	adjacency map[int]map[int]struct{}
}

// NewGraph creates an empty Graph.
// Complexity: O(1), or O(n) with WithCapacity(n).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.adjacency = make(map[int]map[int]struct{}, g.capacity)

	return g
}
