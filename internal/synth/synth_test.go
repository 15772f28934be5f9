package synth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tessera/bitmap"
	"github.com/katalvlaran/tessera/internal/synth"
	"github.com/katalvlaran/tessera/tile"
)

func TestGenerate_Shape(t *testing.T) {
	p, err := synth.Generate(synth.DefaultOptions())
	require.NoError(t, err)

	assert.Len(t, p.Tiles, 9)
	assert.Equal(t, 24, p.Composite.Rows())
	assert.Equal(t, 24, p.Composite.Cols())
	require.Len(t, p.Layout, 3)

	seen := make(map[int]bool)
	for _, tl := range p.Tiles {
		assert.Equal(t, 10, tl.Size())
		assert.False(t, seen[tl.ID()], "duplicate id %d", tl.ID())
		seen[tl.ID()] = true
		assert.Contains(t, p.Restore, tl.ID())
	}
}

func TestGenerate_Reproducible(t *testing.T) {
	a, err := synth.Generate(synth.DefaultOptions())
	require.NoError(t, err)
	b, err := synth.Generate(synth.DefaultOptions())
	require.NoError(t, err)

	assert.True(t, a.Composite.Equal(b.Composite))
	assert.Equal(t, a.Layout, b.Layout)
}

// TestGenerate_OnlyTrueNeighborsConnect checks the uniqueness guarantee that
// makes puzzles solvable: compatible pairs are exactly the layout neighbors.
func TestGenerate_OnlyTrueNeighborsConnect(t *testing.T) {
	opts := synth.DefaultOptions()
	opts.Side = 5
	p, err := synth.Generate(opts)
	require.NoError(t, err)

	pos := make(map[int][2]int)
	for y, row := range p.Layout {
		for x, id := range row {
			pos[id] = [2]int{x, y}
		}
	}
	for _, a := range p.Tiles {
		for _, b := range p.Tiles {
			if a == b {
				continue
			}
			pa, pb := pos[a.ID()], pos[b.ID()]
			dist := abs(pa[0]-pb[0]) + abs(pa[1]-pb[1])
			assert.Equal(t, dist == 1, a.CanConnect(b), "tiles %d at %v and %d at %v", a.ID(), pa, b.ID(), pb)
		}
	}
}

func TestGenerate_RestoreRendersLayout(t *testing.T) {
	p, err := synth.Generate(synth.DefaultOptions())
	require.NoError(t, err)

	byID := make(map[int]*tile.Tile)
	for _, tl := range p.Tiles {
		byID[tl.ID()] = tl
	}
	// top-left tile restored shows the composite's top-left inner block
	tl := byID[p.Layout[0][0]]
	tl.SetOrientation(p.Restore[tl.ID()])
	block, err := p.Composite.Crop(0, 0, 8, 8)
	require.NoError(t, err)
	assert.True(t, block.Equal(tl.Inner()))
}

func TestGenerate_Plant(t *testing.T) {
	marker := bitmap.MustParse(`
#.#
.#.
`)
	opts := synth.DefaultOptions()
	opts.Marker = marker
	opts.Plant = 3
	p, err := synth.Generate(opts)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Planted)
	assert.GreaterOrEqual(t, p.Composite.Count(bitmap.Mark), 9)
}

func TestGenerate_InvalidOptions(t *testing.T) {
	opts := synth.DefaultOptions()
	opts.Side = 0
	_, err := synth.Generate(opts)
	assert.ErrorIs(t, err, synth.ErrInvalidOptions)

	opts = synth.DefaultOptions()
	opts.Size = 65
	_, err = synth.Generate(opts)
	assert.ErrorIs(t, err, synth.ErrInvalidOptions)

	opts = synth.DefaultOptions()
	big, _ := bitmap.New(30, 30)
	opts.Marker = big
	_, err = synth.Generate(opts)
	assert.ErrorIs(t, err, synth.ErrInvalidOptions)

	// a single free cell per border cannot avoid palindromes
	opts = synth.DefaultOptions()
	opts.Size = 3
	_, err = synth.Generate(opts)
	assert.ErrorIs(t, err, synth.ErrExhausted)
}

func TestTransform(t *testing.T) {
	p, err := synth.Generate(synth.DefaultOptions())
	require.NoError(t, err)

	o, ok := synth.Transform(p.Composite, p.Composite.RotateCW().FlipCols())
	require.True(t, ok)
	assert.True(t, p.Composite.Transform(o).Equal(p.Composite.RotateCW().FlipCols()))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
