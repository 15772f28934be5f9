package grid

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tessera/bitmap"
	"github.com/katalvlaran/tessera/core"
	"github.com/katalvlaran/tessera/tile"
)

// New returns an empty width×height grid.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyGrid, width, height)
	}

	return &Grid{Width: width, Height: height, cells: make([]*tile.Tile, width*height)}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// At returns the tile at (x,y), or nil when the cell is empty or out of bounds.
func (g *Grid) At(x, y int) *tile.Tile {
	if !g.InBounds(x, y) {
		return nil
	}

	return g.cells[g.index(x, y)]
}

// Place puts t at (x,y).
func (g *Grid) Place(x, y int, t *tile.Tile) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, g.Width, g.Height)
	}
	i := g.index(x, y)
	if g.cells[i] != nil {
		return fmt.Errorf("%w: (%d,%d) holds tile %d", ErrOccupied, x, y, g.cells[i].ID())
	}
	g.cells[i] = t
	g.filled++

	return nil
}

// Clear empties (x,y) and returns the tile that was there, if any.
func (g *Grid) Clear(x, y int) *tile.Tile {
	if !g.InBounds(x, y) {
		return nil
	}
	i := g.index(x, y)
	t := g.cells[i]
	if t != nil {
		g.cells[i] = nil
		g.filled--
	}

	return t
}

// Filled returns the number of occupied cells.
func (g *Grid) Filled() int { return g.filled }

// Full reports whether every cell is occupied.
func (g *Grid) Full() bool { return g.filled == len(g.cells) }

// Tiles returns the cells in row-major order. Empty cells are nil.
func (g *Grid) Tiles() []*tile.Tile {
	out := make([]*tile.Tile, len(g.cells))
	copy(out, g.cells)

	return out
}

// Corners returns the tiles at the four corners: top-left, top-right,
// bottom-left, bottom-right.
func (g *Grid) Corners() [4]*tile.Tile {
	return [4]*tile.Tile{
		g.At(0, 0),
		g.At(g.Width-1, 0),
		g.At(0, g.Height-1),
		g.At(g.Width-1, g.Height-1),
	}
}

// ToCoreGraph converts the arrangement into an undirected *core.Graph whose
// vertices are tile IDs and whose edges join 4-neighboring cells.
// Empty cells are skipped.
// Complexity: O(W×H) time and memory.
func (g *Grid) ToCoreGraph() *core.Graph {
	cg := core.NewGraph(core.WithCapacity(g.filled))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			u := g.At(x, y)
			if u == nil {
				continue
			}
			cg.AddVertex(u.ID())
			for _, d := range neighborOffsets {
				if v := g.At(x+d[0], y+d[1]); v != nil {
					_ = cg.AddEdge(u.ID(), v.ID())
				}
			}
		}
	}

	return cg
}

// String renders the layout one row per line, each cell as
// "<id> <rotation><mirror>", e.g. "1951 180h". Empty cells print as dashes.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.Width; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			if t := g.At(x, y); t != nil {
				sb.WriteString(t.String())
			} else {
				sb.WriteString("---- ----")
			}
		}
	}

	return sb.String()
}

// Stitch assembles the inner blocks of all tiles, as currently oriented,
// into one ((size-2)·Height)×((size-2)·Width) bitmap.
func (g *Grid) Stitch() (*bitmap.Bitmap, error) {
	if !g.Full() {
		return nil, fmt.Errorf("%w: %d of %d cells filled", ErrIncomplete, g.filled, len(g.cells))
	}
	size := g.cells[0].Size()
	for _, t := range g.cells {
		if t.Size() != size {
			return nil, fmt.Errorf("%w: tile %d is %d, tile %d is %d", ErrSizeMismatch, g.cells[0].ID(), size, t.ID(), t.Size())
		}
	}

	block := size - 2
	out, err := bitmap.New(block*g.Height, block*g.Width)
	if err != nil {
		return nil, err
	}
	for i, t := range g.cells {
		x, y := g.Coordinate(i)
		if err = out.Paste(t.Inner(), y*block, x*block); err != nil {
			return nil, err
		}
	}

	return out, nil
}
