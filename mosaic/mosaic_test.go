package mosaic_test

import (
	"context"
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tessera/bitmap"
	"github.com/katalvlaran/tessera/core"
	"github.com/katalvlaran/tessera/internal/synth"
	"github.com/katalvlaran/tessera/mosaic"
	"github.com/katalvlaran/tessera/orient"
	"github.com/katalvlaran/tessera/placement"
	"github.com/katalvlaran/tessera/tile"
)

var seaMonster = bitmap.MustParse(`
..................#.
#....##....##....###
.#..#..#..#..#..#...
`)

func generate(t *testing.T, mutate func(*synth.Options)) *synth.Puzzle {
	t.Helper()
	opts := synth.DefaultOptions()
	if mutate != nil {
		mutate(&opts)
	}
	p, err := synth.Generate(opts)
	require.NoError(t, err)

	return p
}

// pairGraph is the quadratic reference for NeighborGraph.
func pairGraph(tiles []*tile.Tile) *core.Graph {
	g := core.NewGraph()
	for i, a := range tiles {
		g.AddVertex(a.ID())
		for _, b := range tiles[i+1:] {
			if a.CanConnect(b) {
				_ = g.AddEdge(a.ID(), b.ID())
			}
		}
	}

	return g
}

func TestNeighborGraph_MatchesPairwise(t *testing.T) {
	// tiny tiles collide often, which exercises the index
	rng := rand.New(rand.NewPCG(2, 0))
	var tiles []*tile.Tile
	for id := 1; id <= 40; id++ {
		b, err := bitmap.New(3, 3)
		require.NoError(t, err)
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				if rng.IntN(2) == 0 {
					b.Set(r, c, bitmap.Mark)
				}
			}
		}
		tl, err := tile.New(id, b)
		require.NoError(t, err)
		tiles = append(tiles, tl)
	}

	assert.Equal(t, pairGraph(tiles).Edges(), mosaic.NeighborGraph(tiles).Edges())
	assert.Equal(t, 40, mosaic.NeighborGraph(tiles).VertexCount())

	p := generate(t, func(o *synth.Options) { o.Side = 4 })
	assert.Equal(t, pairGraph(p.Tiles).Edges(), mosaic.NeighborGraph(p.Tiles).Edges())
}

func TestCornerTiles(t *testing.T) {
	p := generate(t, nil)
	m, err := mosaic.New(p.Tiles)
	require.NoError(t, err)

	corners, err := m.CornerTiles()
	require.NoError(t, err)
	require.Len(t, corners, 4)

	want := p.Corners()
	sort.Ints(want[:])
	for i, c := range corners {
		assert.Equal(t, want[i], c.ID())
	}

	nbrs, err := m.Neighbors(corners[0].ID())
	require.NoError(t, err)
	assert.Len(t, nbrs, 2)
}

func TestReconstruct(t *testing.T) {
	p := generate(t, func(o *synth.Options) { o.Side = 4; o.Seed = 9 })
	m, err := mosaic.New(p.Tiles)
	require.NoError(t, err)

	first, err := m.Reconstruct()
	require.NoError(t, err)

	// the smallest corner starts at the top left, only rotated, so the
	// picture comes out under its scramble followed by that rotation
	corners := p.Corners()
	sort.Ints(corners[:])
	layout, err := m.Layout()
	require.NoError(t, err)
	start := layout.At(0, 0)
	require.Equal(t, corners[0], start.ID())
	require.Equal(t, orient.MirrorNone, start.Orientation().Mirror)
	want := orient.Compose(p.Restore[start.ID()].Inverse(), start.Orientation())
	assert.True(t, p.Composite.Transform(want).Equal(first), "want picture under %v, got\n%s", want, first)
	got, ok := synth.Transform(p.Composite, first)
	require.True(t, ok)
	assert.Equal(t, want, got.Canonical())

	// the cache hands out copies
	first.Set(0, 0, bitmap.Consumed)
	second, err := m.Reconstruct()
	require.NoError(t, err)
	assert.NotEqual(t, bitmap.Consumed, second.At(0, 0))
	third, err := m.Reconstruct()
	require.NoError(t, err)
	assert.True(t, second.Equal(third))

	assert.True(t, layout.Full())
	assert.Equal(t, 4, layout.Width)
}

func TestSingleTile(t *testing.T) {
	p := generate(t, func(o *synth.Options) { o.Side = 1 })
	m, err := mosaic.New(p.Tiles)
	require.NoError(t, err)

	img, err := m.Reconstruct()
	require.NoError(t, err)
	assert.True(t, img.Equal(p.Tiles[0].Inner()))

	_, err = m.CornerTiles()
	assert.ErrorIs(t, err, mosaic.ErrInconsistentTileSet)
	assert.ErrorIs(t, err, mosaic.ErrCornerCount)
}

func TestNew_Validation(t *testing.T) {
	_, err := mosaic.New(nil)
	assert.ErrorIs(t, err, mosaic.ErrNoTiles)

	p := generate(t, nil)

	dup := append(append([]*tile.Tile{}, p.Tiles...), p.Tiles[0])
	_, err = mosaic.New(dup)
	assert.ErrorIs(t, err, mosaic.ErrInconsistentTileSet)
	assert.ErrorIs(t, err, mosaic.ErrDuplicateTile)

	small, err := tile.New(1, bitmap.MustParse("#..\n...\n..#"))
	require.NoError(t, err)
	_, err = mosaic.New(append(append([]*tile.Tile{}, p.Tiles[:8]...), small))
	assert.ErrorIs(t, err, mosaic.ErrSizeMismatch)

	// a blank tile matches nothing in the puzzle, whose borders are never
	// palindromes
	lone := append(append([]*tile.Tile{}, p.Tiles...), blankTile(t, 1))
	_, err = mosaic.New(lone)
	assert.ErrorIs(t, err, mosaic.ErrInconsistentTileSet)
	assert.ErrorIs(t, err, mosaic.ErrNeighborCount)
	assert.ErrorContains(t, err, "tile 1 has 0")
}

// blankTile returns a default-size tile with no marks: every connector
// checksum is zero.
func blankTile(t *testing.T, id int) *tile.Tile {
	t.Helper()
	b, err := bitmap.New(synth.DefaultOptions().Size, synth.DefaultOptions().Size)
	require.NoError(t, err)
	tl, err := tile.New(id, b)
	require.NoError(t, err)

	return tl
}

// TestNew_DuplicatedCentre adds a copy of the centre tile under a new ID.
// The copy fits the four true neighbors and the centre itself.
func TestNew_DuplicatedCentre(t *testing.T) {
	p := generate(t, nil)
	centre := p.Layout[1][1]
	var twin *tile.Tile
	for _, tl := range p.Tiles {
		if tl.ID() == centre {
			var err error
			twin, err = tile.New(1, tl.Data())
			require.NoError(t, err)
		}
	}
	require.NotNil(t, twin)

	_, err := mosaic.New(append(append([]*tile.Tile{}, p.Tiles...), twin))
	assert.ErrorIs(t, err, mosaic.ErrInconsistentTileSet)
	assert.ErrorIs(t, err, mosaic.ErrNeighborCount)
	assert.ErrorContains(t, err, "tile 1 has 5")
}

// TestNew_Disconnected adds four blank tiles to a valid puzzle. They join
// each other with three neighbors apiece, so degree and corner counts pass
// but the blank clique is cut off from the picture.
func TestNew_Disconnected(t *testing.T) {
	p := generate(t, nil)
	tiles := append([]*tile.Tile{}, p.Tiles...)
	for id := 1; id <= 4; id++ {
		tiles = append(tiles, blankTile(t, id))
	}

	_, err := mosaic.New(tiles)
	assert.ErrorIs(t, err, mosaic.ErrInconsistentTileSet)
	assert.ErrorIs(t, err, mosaic.ErrDisconnected)
	assert.ErrorContains(t, err, "tile 1 is not reachable")
	assert.NotErrorIs(t, err, mosaic.ErrCornerCount)
}

// TestNew_RingHasTooManyCorners drops the centre of a 3×3 puzzle: the eight
// remaining tiles all have two neighbors.
func TestNew_RingHasTooManyCorners(t *testing.T) {
	p := generate(t, nil)
	centre := p.Layout[1][1]
	var ring []*tile.Tile
	for _, tl := range p.Tiles {
		if tl.ID() != centre {
			ring = append(ring, tl)
		}
	}

	_, err := mosaic.New(ring)
	assert.ErrorIs(t, err, mosaic.ErrInconsistentTileSet)
	assert.ErrorIs(t, err, mosaic.ErrCornerCount)
}

func TestFindMatches(t *testing.T) {
	p := generate(t, func(o *synth.Options) {
		o.Side = 4
		o.Seed = 3
		o.Marker = seaMonster
		o.Plant = 3
	})
	require.Equal(t, 3, p.Planted)
	m, err := mosaic.New(p.Tiles)
	require.NoError(t, err)

	res, err := m.FindMatches(seaMonster)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Len(t, res.Offsets, 3)

	rough, err := m.Roughness(seaMonster)
	require.NoError(t, err)
	assert.Equal(t, p.Composite.Count(bitmap.Mark)-3*15, rough)
	assert.Equal(t, rough, res.Residual)
}

func TestFindMatches_NoMarker(t *testing.T) {
	p := generate(t, func(o *synth.Options) { o.Density = 0 })
	m, err := mosaic.New(p.Tiles)
	require.NoError(t, err)

	res, err := m.FindMatches(seaMonster)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Empty(t, res.Offsets)
	assert.Equal(t, p.Composite.Count(bitmap.Mark), res.Residual)
}

func TestLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.TraceLevel)

	p := generate(t, nil)
	m, err := mosaic.New(p.Tiles, mosaic.WithLogger(logger))
	require.NoError(t, err)
	_, err = m.Reconstruct()
	require.NoError(t, err)

	corners := p.Corners()
	sort.Ints(corners[:])
	var messages []string
	for _, e := range hook.AllEntries() {
		messages = append(messages, e.Message)
		switch e.Message {
		case "neighbor graph built":
			assert.Equal(t, corners[:], e.Data["corners"])
			// opposite corners of a 3×3 layout are four steps apart
			assert.Equal(t, 4, e.Data["span"])
		case "placement complete":
			placed, ok := e.Data["corners"].([]int)
			require.True(t, ok)
			require.Len(t, placed, 4)
			assert.Equal(t, corners[0], placed[0])
			sort.Ints(placed)
			assert.Equal(t, corners[:], placed)
		}
	}
	assert.Contains(t, messages, "neighbor graph built")
	assert.Contains(t, messages, "place")
	assert.Contains(t, messages, "placement complete")
}

func TestPlacementOptions(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := generate(t, nil)
	m, err := mosaic.New(p.Tiles, mosaic.WithPlacementOptions(placement.WithContext(ctx)))
	require.NoError(t, err)

	_, err = m.Reconstruct()
	assert.ErrorIs(t, err, context.Canceled)
}
