package tile_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tessera/bitmap"
	"github.com/katalvlaran/tessera/orient"
	"github.com/katalvlaran/tessera/tile"
)

// sampleTile is tile 2311 of the classic ten-by-ten example.
const sampleTile = `
..##.#..#.
##..#.....
#...##..#.
####.#...#
##.##.###.
##...#.###
.#.#.#..##
..#....#..
###...#.#.
..###..###
`

func mustTile(t *testing.T, id int, text string) *tile.Tile {
	t.Helper()
	tl, err := tile.New(id, bitmap.MustParse(text))
	require.NoError(t, err)

	return tl
}

func randomBitmap(rng *rand.Rand, rows, cols int) *bitmap.Bitmap {
	b, _ := bitmap.New(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if rng.IntN(2) == 1 {
				b.Set(r, c, bitmap.Mark)
			}
		}
	}

	return b
}

func reverse(s []bitmap.Symbol) []bitmap.Symbol {
	out := make([]bitmap.Symbol, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}

	return out
}

// clockwise reads side d of b in clockwise order.
func clockwise(b *bitmap.Bitmap, d orient.Direction) []bitmap.Symbol {
	n := b.Rows()
	switch d {
	case orient.North:
		return b.Row(0)
	case orient.East:
		return b.Col(n - 1)
	case orient.South:
		return reverse(b.Row(n - 1))
	default:
		return reverse(b.Col(0))
	}
}

func TestNew_Validation(t *testing.T) {
	_, err := tile.New(1, nil)
	assert.ErrorIs(t, err, tile.ErrNilData)

	_, err = tile.New(1, bitmap.MustParse("#..\n..."))
	assert.ErrorIs(t, err, tile.ErrNotSquare)

	_, err = tile.New(1, bitmap.MustParse("#.\n.#"))
	assert.ErrorIs(t, err, tile.ErrTooSmall)

	big, err := bitmap.New(65, 65)
	require.NoError(t, err)
	_, err = tile.New(1, big)
	assert.ErrorIs(t, err, tile.ErrTooLarge)

	full, err := bitmap.New(64, 64)
	require.NoError(t, err)
	full.Set(0, 0, bitmap.Mark)
	tl, err := tile.New(1, full)
	require.NoError(t, err)
	assert.Equal(t, uint64(1)<<63, tl.Connector(orient.North).Checksum)
}

func TestConnectors_KnownValues(t *testing.T) {
	tl := mustTile(t, 2311, sampleTile)
	// ..##.#..#. = 0b0011010010
	assert.Equal(t, uint64(210), tl.Connector(orient.North).Checksum)
	assert.Equal(t, uint64(300), tl.Connector(orient.North).Reversed)
	// east column top to bottom: ...#.##..# = 0b0001011001
	assert.Equal(t, uint64(89), tl.Connector(orient.East).Checksum)
	// south right to left: ###..###.. = 0b1110011100
	assert.Equal(t, uint64(924), tl.Connector(orient.South).Checksum)
	// west bottom to top: .#..#####. = 0b0100111110
	assert.Equal(t, uint64(318), tl.Connector(orient.West).Checksum)

	for _, d := range orient.Directions() {
		c := tl.Connector(d)
		assert.Same(t, tl, c.Tile())
		assert.Equal(t, d, c.Side())
	}
}

func TestConnector_ReversedMatchesReversedBorder(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 0))
	for i := 0; i < 50; i++ {
		data := randomBitmap(rng, 10, 10)
		tl, err := tile.New(i, data)
		require.NoError(t, err)
		for _, d := range orient.Directions() {
			border := clockwise(data, d)
			c := tl.Connector(d)
			assert.Equal(t, tile.Checksum(border), c.Checksum)
			assert.Equal(t, tile.Checksum(reverse(border)), c.Reversed)
		}
	}
}

func TestBorder_DistinctAndOwned(t *testing.T) {
	tl := mustTile(t, 2311, sampleTile)
	own := tl.Connectors()
	for _, m := range orient.Mirrors() {
		for _, r := range orient.Rotations() {
			tl.SetOrientation(orient.Orientation{Rotation: r, Mirror: m})
			seen := make(map[*tile.Connector]bool)
			for _, d := range orient.Directions() {
				c := tl.Border(d)
				assert.Contains(t, own[:], c)
				assert.False(t, seen[c], "%v returns %v twice", tl.Orientation(), c)
				seen[c] = true
			}
		}
	}
}

// TestBorder_MatchesRender checks that arithmetic border lookup agrees with
// physically transforming the pixels.
func TestBorder_MatchesRender(t *testing.T) {
	tl := mustTile(t, 2311, sampleTile)
	for _, m := range orient.Mirrors() {
		for _, r := range orient.Rotations() {
			o := orient.Orientation{Rotation: r, Mirror: m}
			tl.SetOrientation(o)
			img := tl.Render()
			for _, d := range orient.Directions() {
				c := tl.Border(d)
				assert.Equal(t, tile.Checksum(clockwise(img, d)), c.Forward(), "orientation %v side %v", o, d)
				assert.Equal(t, d, c.Facing())
			}
		}
	}
}

func TestCompatible_Symmetric(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 0))
	var conns []*tile.Connector
	for i := 0; i < 20; i++ {
		// small tiles so that collisions actually happen
		tl, err := tile.New(i, randomBitmap(rng, 3, 3))
		require.NoError(t, err)
		c := tl.Connectors()
		conns = append(conns, c[:]...)
	}
	for _, a := range conns {
		for _, b := range conns {
			assert.Equal(t, tile.Compatible(a, b), tile.Compatible(b, a))
		}
	}
}

// splitPair cuts one random n×(2n-1) picture into two tiles sharing a column.
func splitPair(t *testing.T, rng *rand.Rand, n int) (left, right *bitmap.Bitmap) {
	t.Helper()
	pic := randomBitmap(rng, n, 2*n-1)
	left, err := pic.Crop(0, 0, n, n)
	require.NoError(t, err)
	right, err = pic.Crop(0, n-1, n, n)
	require.NoError(t, err)

	return left, right
}

func TestConfigurations_RecoverOrientation(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 0))
	for i := 0; i < 10; i++ {
		left, right := splitPair(t, rng, 8)
		a, err := tile.New(1, left)
		require.NoError(t, err)

		for _, want := range orient.All() {
			// b rendered under want shows the picture's right half
			b, err := tile.New(2, right.Transform(want.Inverse()))
			require.NoError(t, err)
			before := orient.Orientation{Rotation: orient.Rot270, Mirror: orient.MirrorVertical}
			b.SetOrientation(before)

			got := tile.Configurations(a.Border(orient.East), b)
			assert.Contains(t, got, tile.Configuration{Tile: b, Orientation: want})
			assert.Equal(t, before, b.Orientation(), "orientation restored")

			for _, cfg := range got {
				cfg.Apply()
				assert.True(t, tile.Fits(a.Border(orient.East), b.Border(orient.West)))
			}
		}
	}
}

func TestConfigurations_ReferenceOriented(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 0))
	left, right := splitPair(t, rng, 6)

	// a stores the left half turned back a quarter; its orientation undoes that
	quarter := orient.Orientation{Rotation: orient.Rot90}
	a, err := tile.New(1, left.Transform(quarter.Inverse()))
	require.NoError(t, err)
	a.SetOrientation(quarter)
	b, err := tile.New(2, right)
	require.NoError(t, err)

	got := tile.Configurations(a.Border(orient.East), b)
	assert.Contains(t, got, tile.Configuration{Tile: b, Orientation: orient.Identity})
}

func TestCanConnect(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 0))
	left, right := splitPair(t, rng, 10)
	a, err := tile.New(1, left)
	require.NoError(t, err)
	b, err := tile.New(2, right.FlipRows())
	require.NoError(t, err)

	assert.True(t, a.CanConnect(b))
	assert.True(t, b.CanConnect(a))
	assert.False(t, a.CanConnect(a))
}

func TestInnerAndString(t *testing.T) {
	tl := mustTile(t, 2311, sampleTile)
	inner := tl.Inner()
	assert.Equal(t, 8, inner.Rows())
	assert.Equal(t, "#..#....", inner.Format(bitmap.DefaultCharset())[:8])

	tl.SetOrientation(orient.Orientation{Rotation: orient.Rot90, Mirror: orient.MirrorHorizontal})
	assert.Equal(t, "2311 090h", tl.String())
	want, err := tl.Render().Crop(1, 1, 8, 8)
	require.NoError(t, err)
	assert.True(t, want.Equal(tl.Inner()))
}
