// Package core provides a small, thread-safe, undirected graph keyed by
// integer vertex IDs. It stores tile adjacency: which tiles may share a
// border, and which tiles do share one once a grid is solved.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected, unweighted, simple: no self-loops, no parallel edges.
//   - Constant-time edge operations via nested maps:
//     adjacency[a][b] = struct{}{} mirrored as adjacency[b][a].
//   - A single sync.RWMutex guards all state; reads may run concurrently
//     once construction is finished.
//   - Deterministic iteration: Vertices(), Edges() and NeighborIDs() all
//     return results sorted ascending.
//
// Configuration Options (GraphOption):
//
//	– WithCapacity(n int)
//	    Pre-sizes the vertex map for n vertices.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id int)                  // O(1), idempotent
//	HasVertex(id int) bool             // O(1)
//
//	// Edge lifecycle
//	AddEdge(a, b int) error            // O(1), idempotent, auto-adds vertices
//	HasEdge(a, b int) bool             // O(1)
//
//	// Query
//	NeighborIDs(id int) ([]int, error) // O(d·log d), sorted
//	Degree(id int) (int, error)        // O(1)
//	Vertices() []int                   // O(V·log V)
//	Edges() []Edge                     // O(E·log E), From < To
//	VertexCount() int                  // O(1)
//	EdgeCount() int                    // O(1)
//
//	// Cloning
//	Clone() *Graph                     // O(V+E)
//
// Errors:
//
//	ErrVertexNotFound – missing vertex
//	ErrLoopNotAllowed – self-loop
package core
