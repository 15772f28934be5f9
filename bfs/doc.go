// Package bfs provides breadth-first search over a core.Graph of tile IDs,
// returning hop distances and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Result holds Order (visit sequence) and Depth (vertex → distance).
//   - Reached tells whether a vertex is connected to the start; Farthest
//     gives the deepest vertex, which for a square layout started at a
//     corner is the opposite corner.
//
// Determinism
//
//	core.Graph.NeighborIDs returns neighbors in ascending ID order and BFS
//	enqueues them in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
package bfs
