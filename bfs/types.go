package bfs

import "errors"

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// Result holds the outcome of a BFS traversal.
type Result struct {
	Order []int
	Depth map[int]int
}

// Reached reports whether id was visited.
func (r *Result) Reached(id int) bool {
	_, ok := r.Depth[id]
	return ok
}

// Farthest returns the visited vertex with the greatest depth, preferring
// the one visited first.
func (r *Result) Farthest() (id, depth int) {
	for _, v := range r.Order {
		if d := r.Depth[v]; d > depth {
			id, depth = v, d
		}
	}
	if depth == 0 && len(r.Order) > 0 {
		id = r.Order[0]
	}

	return id, depth
}
