// Package grid holds the square arrangement of oriented tiles produced by the
// placement search, and stitches a completed arrangement into one picture.
//
// What:
//
//   - Grid is a Width×Height array of optional *tile.Tile stored row-major.
//   - Place/Clear fill and empty single cells; the solver owns the grid while
//     searching and never shares it until it is complete.
//   - Stitch renders each tile as currently oriented, drops its outer ring and
//     pastes the (size-2)×(size-2) inner block at its grid-aligned offset.
//   - ToCoreGraph converts the solved arrangement into the true tile
//     adjacency graph (4-connectivity).
//
// Complexity:
//
//   - Place, Clear, At: O(1).
//   - Stitch: O(W×H×size²), Memory: O(W×H×size²).
//   - ToCoreGraph: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: width or height not positive.
//   - ErrOutOfBounds: coordinates outside the grid.
//   - ErrOccupied: placing into a filled cell.
//   - ErrIncomplete: stitching a grid with empty cells.
//   - ErrSizeMismatch: stitching tiles of differing sizes.
package grid
