// Package placement arranges square tiles into a grid so that every shared
// edge matches cell for cell.
//
// The search is a depth-first backtracking walk over grid cells in row-major
// order:
//
//   - Start: the corner tile (exactly two graph neighbors) with the smallest
//     ID is rotated, without mirroring, until both its east and south
//     connectors are compatible with some neighbor's connector. It is fixed
//     at (0,0).
//   - Step: the reference tile is the west neighbor of the next cell, or the
//     tile above it at the start of a row. Each unplaced graph neighbor of the
//     reference, in ascending ID order, is tried in every orientation that
//     fits the reference (tile.Configurations). When the cell also has a tile
//     above it, that edge must fit too.
//   - Undo: a failed branch restores the grid cell, the remaining set and the
//     candidate's orientation.
//
// Complexity:
//
//   - Time: O(N·8·d) per level with d ≤ 4 graph neighbors; for puzzles with
//     unique borders the walk is linear in practice.
//   - Memory: O(N) for the recursion stack and the remaining set.
//
// Errors:
//
//   - ErrGraphNil, ErrNoTiles, ErrNotSquare, ErrUnknownTile on bad input.
//   - ErrNoStart if no corner can face the interior.
//   - ErrPlacementFailed if every branch fails.
//   - context.Canceled / DeadlineExceeded if the context ends.
//   - any error returned by OnPlace.
package placement

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/tessera/core"
	"github.com/katalvlaran/tessera/grid"
	"github.com/katalvlaran/tessera/orient"
	"github.com/katalvlaran/tessera/tile"
)

// walker encapsulates state during the search.
type walker struct {
	graph     *core.Graph
	opts      Options
	byID      map[int]*tile.Tile
	remaining map[int]bool
	grid      *grid.Grid
	res       *Result
}

// SquareSide returns the integer side of an n-tile square layout.
// Returns ErrNotSquare if n is not a perfect square.
func SquareSide(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d tiles", ErrNotSquare, n)
	}
	side := isqrt(n)
	if side*side != n {
		return 0, fmt.Errorf("%w: %d tiles", ErrNotSquare, n)
	}

	return side, nil
}

// isqrt is floor(sqrt(n)) by Newton's method on integers.
func isqrt(n int) int {
	if n < 2 {
		return n
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}

	return x
}

// Solve places every tile of tiles into a square grid. g must hold one
// vertex per tile ID with edges between border-compatible tiles.
// Tile orientations are left as placed on success.
func Solve(tiles []*tile.Tile, g *core.Graph, opts ...Option) (*Result, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(tiles) == 0 {
		return nil, ErrNoTiles
	}
	side, err := SquareSide(len(tiles))
	if err != nil {
		return nil, err
	}

	// 2. Apply options
	popts := DefaultOptions()
	for _, fn := range opts {
		fn(&popts)
	}

	// 3. Index tiles
	w := &walker{
		graph:     g,
		opts:      popts,
		byID:      make(map[int]*tile.Tile, len(tiles)),
		remaining: make(map[int]bool, len(tiles)),
		res:       &Result{},
	}
	for _, t := range tiles {
		w.byID[t.ID()] = t
		w.remaining[t.ID()] = true
	}
	for _, id := range g.Vertices() {
		if _, ok := w.byID[id]; !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownTile, id)
		}
	}
	if w.grid, err = grid.New(side, side); err != nil {
		return nil, err
	}

	// 4. Fix the start corner
	start, err := w.start(tiles)
	if err != nil {
		return nil, err
	}
	if err = w.place(0, start); err != nil {
		return nil, err
	}
	w.res.Start = start

	// 5. Walk the remaining cells
	ok, err := w.step(0)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: start tile %d", ErrPlacementFailed, start.ID())
	}
	w.res.Grid = w.grid

	return w.res, nil
}

// start picks the smallest-ID corner and turns it to face the interior.
// A single tile is its own start and keeps the identity orientation.
func (w *walker) start(tiles []*tile.Tile) (*tile.Tile, error) {
	if len(tiles) == 1 {
		tiles[0].SetOrientation(orient.Identity)
		return tiles[0], nil
	}

	var corners []*tile.Tile
	for _, t := range tiles {
		if deg, err := w.graph.Degree(t.ID()); err == nil && deg == 2 {
			corners = append(corners, t)
		}
	}
	if len(corners) == 0 {
		return nil, fmt.Errorf("%w: no tile has exactly two neighbors", ErrNoStart)
	}
	sort.Slice(corners, func(i, j int) bool { return corners[i].ID() < corners[j].ID() })
	corner := corners[0]

	nbrs, err := w.graph.NeighborIDs(corner.ID())
	if err != nil {
		return nil, err
	}
	for _, r := range orient.Rotations() {
		corner.SetOrientation(orient.Orientation{Rotation: r})
		if w.compatibleWithAny(corner.Border(orient.East), nbrs) &&
			w.compatibleWithAny(corner.Border(orient.South), nbrs) {
			return corner, nil
		}
	}
	corner.SetOrientation(orient.Identity)

	return nil, fmt.Errorf("%w: corner %d", ErrNoStart, corner.ID())
}

// compatibleWithAny reports whether c is compatible with a connector of any tile in ids.
func (w *walker) compatibleWithAny(c *tile.Connector, ids []int) bool {
	for _, id := range ids {
		for _, other := range w.byID[id].Connectors() {
			if tile.Compatible(c, other) {
				return true
			}
		}
	}

	return false
}

// place puts t into cell idx and reports it through the hook.
func (w *walker) place(idx int, t *tile.Tile) error {
	x, y := w.grid.Coordinate(idx)
	if err := w.grid.Place(x, y, t); err != nil {
		return err
	}
	delete(w.remaining, t.ID())
	w.res.Steps++
	if w.opts.OnPlace != nil {
		if err := w.opts.OnPlace(x, y, t); err != nil {
			return fmt.Errorf("placement: OnPlace hook for tile %d at (%d,%d): %w", t.ID(), x, y, err)
		}
	}

	return nil
}

// unplace empties cell idx and returns its tile to the remaining set.
func (w *walker) unplace(idx int) {
	x, y := w.grid.Coordinate(idx)
	t := w.grid.Clear(x, y)
	if t == nil {
		return
	}
	w.remaining[t.ID()] = true
	w.res.Backtracks++
	if w.opts.OnBacktrack != nil {
		w.opts.OnBacktrack(x, y, t)
	}
}

// step fills the cell after cursor. It reports true once the last cell is filled.
func (w *walker) step(cursor int) (bool, error) {
	// 1. Terminal state
	if cursor == w.grid.Len()-1 {
		return true, nil
	}

	// 2. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return false, w.opts.Ctx.Err()
	default:
	}

	// 3. Reference tile and direction
	next := cursor + 1
	nx, ny := w.grid.Coordinate(next)
	ref, dir := w.grid.At(nx-1, ny), orient.East
	if nx == 0 {
		ref, dir = w.grid.At(0, ny-1), orient.South
	}
	var above *tile.Tile
	if nx > 0 && ny > 0 {
		above = w.grid.At(nx, ny-1)
	}
	facing := ref.Border(dir)

	nbrs, err := w.graph.NeighborIDs(ref.ID())
	if err != nil {
		return false, err
	}

	// 4. Try every unplaced neighbor in every fitting orientation
	for _, id := range nbrs {
		if !w.remaining[id] {
			continue
		}
		cand := w.byID[id]
		saved := cand.Orientation()
		for _, cfg := range tile.Configurations(facing, cand) {
			cfg.Apply()
			if above != nil && !tile.Fits(above.Border(orient.South), cand.Border(orient.North)) {
				continue
			}
			if err = w.place(next, cand); err != nil {
				return false, err
			}
			ok, err := w.step(next)
			if err != nil || ok {
				return ok, err
			}
			w.unplace(next)
		}
		cand.SetOrientation(saved)
	}

	return false, nil
}
