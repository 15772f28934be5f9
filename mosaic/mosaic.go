// Package mosaic reassembles a picture from scrambled square tiles and
// searches it for a marker.
//
// New fingerprints nothing itself: tiles arrive with their connectors. It
// builds the neighbor graph from a checksum index, validates the tile set
// and keeps both for the lifetime of the Mosaic. Reconstruct runs the
// placement search once and caches the stitched picture.
//
// A Mosaic is not safe for concurrent use: the search mutates tile
// orientations.
package mosaic

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/tessera/bfs"
	"github.com/katalvlaran/tessera/bitmap"
	"github.com/katalvlaran/tessera/core"
	"github.com/katalvlaran/tessera/grid"
	"github.com/katalvlaran/tessera/pattern"
	"github.com/katalvlaran/tessera/placement"
	"github.com/katalvlaran/tessera/tile"
)

// Mosaic is a validated tile set with its neighbor graph.
type Mosaic struct {
	tiles []*tile.Tile
	byID  map[int]*tile.Tile
	graph *core.Graph
	log   logrus.FieldLogger
	popts []placement.Option

	solved    *placement.Result
	composite *bitmap.Bitmap
}

// New validates tiles and builds their neighbor graph.
//
// For more than one tile every tile must have between two and four
// neighbors and exactly four tiles must have two.
func New(tiles []*tile.Tile, opts ...Option) (*Mosaic, error) {
	mopts := DefaultOptions()
	for _, fn := range opts {
		fn(&mopts)
	}
	if len(tiles) == 0 {
		return nil, ErrNoTiles
	}

	m := &Mosaic{
		tiles: make([]*tile.Tile, len(tiles)),
		byID:  make(map[int]*tile.Tile, len(tiles)),
		log:   mopts.Logger,
	}
	copy(m.tiles, tiles)
	sort.Slice(m.tiles, func(i, j int) bool { return m.tiles[i].ID() < m.tiles[j].ID() })

	size := m.tiles[0].Size()
	for _, t := range m.tiles {
		if _, dup := m.byID[t.ID()]; dup {
			return nil, fmt.Errorf("%w: %w: %d", ErrInconsistentTileSet, ErrDuplicateTile, t.ID())
		}
		if t.Size() != size {
			return nil, fmt.Errorf("%w: %w: tile %d is %d, tile %d is %d",
				ErrInconsistentTileSet, ErrSizeMismatch, m.tiles[0].ID(), size, t.ID(), t.Size())
		}
		m.byID[t.ID()] = t
	}

	m.graph = NeighborGraph(m.tiles)
	corners, span, err := m.validate()
	if err != nil {
		return nil, err
	}
	m.log.WithFields(logrus.Fields{
		"tiles":   len(m.tiles),
		"size":    size,
		"edges":   m.graph.EdgeCount(),
		"corners": corners,
		"span":    span,
	}).Debug("neighbor graph built")

	m.popts = append([]placement.Option{
		placement.WithOnPlace(func(x, y int, t *tile.Tile) error {
			m.log.WithFields(logrus.Fields{"x": x, "y": y, "tile": t.String()}).Trace("place")
			return nil
		}),
		placement.WithOnBacktrack(func(x, y int, t *tile.Tile) {
			m.log.WithFields(logrus.Fields{"x": x, "y": y, "tile": t.ID()}).Trace("backtrack")
		}),
	}, mopts.Placement...)

	return m, nil
}

// NeighborGraph returns the graph joining every pair of distinct tiles that
// have compatible connectors. Each connector is indexed under both its
// checksum and its reversed checksum, then looked up by checksum.
func NeighborGraph(tiles []*tile.Tile) *core.Graph {
	g := core.NewGraph(core.WithCapacity(len(tiles)))
	index := make(map[uint64][]*tile.Tile, 8*len(tiles))
	for _, t := range tiles {
		g.AddVertex(t.ID())
		for _, c := range t.Connectors() {
			index[c.Checksum] = append(index[c.Checksum], t)
			if c.Reversed != c.Checksum {
				index[c.Reversed] = append(index[c.Reversed], t)
			}
		}
	}
	for _, t := range tiles {
		for _, c := range t.Connectors() {
			for _, other := range index[c.Checksum] {
				if other != t {
					_ = g.AddEdge(t.ID(), other.ID())
				}
			}
		}
	}

	return g
}

// validate enforces the neighbor and corner counts and connectivity. It
// returns the corner IDs and the hop distance from the first corner to the
// farthest tile.
func (m *Mosaic) validate() ([]int, int, error) {
	var corners []int
	for _, t := range m.tiles {
		deg, err := m.graph.Degree(t.ID())
		if err != nil {
			return nil, 0, err
		}
		if deg == 2 {
			corners = append(corners, t.ID())
		}
		if len(m.tiles) > 1 && (deg < 2 || deg > 4) {
			return nil, 0, fmt.Errorf("%w: %w: tile %d has %d", ErrInconsistentTileSet, ErrNeighborCount, t.ID(), deg)
		}
	}
	if len(m.tiles) > 1 && len(corners) != 4 {
		return nil, 0, fmt.Errorf("%w: %w: found %d %v", ErrInconsistentTileSet, ErrCornerCount, len(corners), corners)
	}

	start := m.tiles[0].ID()
	if len(corners) > 0 {
		start = corners[0]
	}
	reach, err := bfs.BFS(m.graph, start)
	if err != nil {
		return nil, 0, err
	}
	for _, t := range m.tiles {
		if !reach.Reached(t.ID()) {
			return nil, 0, fmt.Errorf("%w: %w: tile %d is not reachable from %d (%d of %d tiles reachable)",
				ErrInconsistentTileSet, ErrDisconnected, t.ID(), start, len(reach.Order), len(m.tiles))
		}
	}
	_, span := reach.Farthest()

	return corners, span, nil
}

// Tiles returns the tiles sorted by ID.
func (m *Mosaic) Tiles() []*tile.Tile {
	out := make([]*tile.Tile, len(m.tiles))
	copy(out, m.tiles)

	return out
}

// Tile returns the tile with the given ID.
func (m *Mosaic) Tile(id int) (*tile.Tile, bool) {
	t, ok := m.byID[id]
	return t, ok
}

// Graph returns a copy of the neighbor graph.
func (m *Mosaic) Graph() *core.Graph {
	return m.graph.Clone()
}

// Neighbors returns the graph neighbors of id sorted by ID.
func (m *Mosaic) Neighbors(id int) ([]*tile.Tile, error) {
	ids, err := m.graph.NeighborIDs(id)
	if err != nil {
		return nil, err
	}
	out := make([]*tile.Tile, len(ids))
	for i, nid := range ids {
		out[i] = m.byID[nid]
	}

	return out, nil
}

// CornerTiles returns the four tiles with exactly two neighbors, sorted by ID.
// A single-tile set has no corners and yields ErrCornerCount.
func (m *Mosaic) CornerTiles() ([]*tile.Tile, error) {
	var out []*tile.Tile
	for _, t := range m.tiles {
		if deg, _ := m.graph.Degree(t.ID()); deg == 2 {
			out = append(out, t)
		}
	}
	if len(out) != 4 {
		return nil, fmt.Errorf("%w: %w: found %d", ErrInconsistentTileSet, ErrCornerCount, len(out))
	}

	return out, nil
}

// solve runs the placement search once.
func (m *Mosaic) solve() (*placement.Result, error) {
	if m.solved != nil {
		return m.solved, nil
	}
	res, err := placement.Solve(m.tiles, m.graph, m.popts...)
	if err != nil {
		m.log.WithError(err).Debug("placement failed")
		return nil, err
	}
	if err = m.checkLayout(res.Grid); err != nil {
		return nil, err
	}
	var corners []int
	for _, t := range res.Grid.Corners() {
		corners = append(corners, t.ID())
	}
	m.log.WithFields(logrus.Fields{
		"start":      res.Start.String(),
		"steps":      res.Steps,
		"backtracks": res.Backtracks,
		"corners":    corners,
	}).Debug("placement complete")
	m.solved = res

	return res, nil
}

// checkLayout confirms that g is full and that every pair of adjacent cells
// holds tiles joined in the neighbor graph.
func (m *Mosaic) checkLayout(g *grid.Grid) error {
	if !g.Full() {
		return fmt.Errorf("%w: %d of %d cells filled", ErrLayoutMismatch, g.Filled(), g.Len())
	}
	for _, e := range g.ToCoreGraph().Edges() {
		if !m.graph.HasEdge(e.From, e.To) {
			return fmt.Errorf("%w: tiles %d and %d are adjacent but not neighbors", ErrLayoutMismatch, e.From, e.To)
		}
	}

	return nil
}

// Layout returns the solved arrangement. The grid must be treated as read-only.
func (m *Mosaic) Layout() (*grid.Grid, error) {
	res, err := m.solve()
	if err != nil {
		return nil, err
	}

	return res.Grid, nil
}

// Reconstruct returns the stitched picture. The search runs on the first call
// only; every call returns an independent copy.
func (m *Mosaic) Reconstruct() (*bitmap.Bitmap, error) {
	if m.composite == nil {
		res, err := m.solve()
		if err != nil {
			return nil, err
		}
		img, err := res.Grid.Stitch()
		if err != nil {
			return nil, err
		}
		m.composite = img
	}

	return m.composite.Clone(), nil
}

// FindMatches reconstructs the picture and searches it for marker under
// pattern.Transforms.
func (m *Mosaic) FindMatches(marker *bitmap.Bitmap) (pattern.Result, error) {
	img, err := m.Reconstruct()
	if err != nil {
		return pattern.Result{}, err
	}
	res, err := pattern.FindMatches(img, marker, pattern.Transforms())
	if err != nil {
		return pattern.Result{}, err
	}
	m.log.WithFields(logrus.Fields{
		"found":       res.Found,
		"orientation": res.Orientation.String(),
		"matches":     len(res.Offsets),
		"residual":    res.Residual,
	}).Debug("marker search complete")

	return res, nil
}

// Roughness returns the number of Mark cells not covered by any marker match.
func (m *Mosaic) Roughness(marker *bitmap.Bitmap) (int, error) {
	res, err := m.FindMatches(marker)
	if err != nil {
		return 0, err
	}

	return res.Residual, nil
}
