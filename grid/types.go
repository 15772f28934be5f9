package grid

import (
	"errors"

	"github.com/katalvlaran/tessera/tile"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates non-positive dimensions.
	ErrEmptyGrid = errors.New("grid: width and height must be > 0")
	// ErrOutOfBounds indicates coordinates outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinates out of bounds")
	// ErrOccupied indicates a placement into a filled cell.
	ErrOccupied = errors.New("grid: cell already occupied")
	// ErrIncomplete indicates a stitch over a grid with empty cells.
	ErrIncomplete = errors.New("grid: grid is not complete")
	// ErrSizeMismatch indicates tiles of differing sizes in one grid.
	ErrSizeMismatch = errors.New("grid: tiles differ in size")
)

// Grid is a row-major arrangement of tiles. Width and Height are fixed at
// construction; cells[y*Width+x] holds the tile at (x,y) or nil.
type Grid struct {
	Width, Height int
	cells         []*tile.Tile
	filled        int
}

// neighborOffsets lists east and south, enough to visit every 4-connected
// pair once.
var neighborOffsets = [2][2]int{{1, 0}, {0, 1}}
