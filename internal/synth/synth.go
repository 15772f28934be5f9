// Package synth generates solvable tile puzzles with a known answer.
//
// A puzzle is cut from one large random picture. Neighboring tiles share
// their border line, every border line is unique up to reversal and none
// reads the same in both directions, so the only compatible connector pairs
// are the true neighbors. Tiles are then shuffled and each one is given a
// random orientation.
package synth

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/tessera/bitmap"
	"github.com/katalvlaran/tessera/orient"
	"github.com/katalvlaran/tessera/tile"
)

// Sentinel errors for puzzle generation.
var (
	// ErrInvalidOptions indicates out-of-range generator options.
	ErrInvalidOptions = errors.New("synth: invalid options")
	// ErrExhausted indicates the generator ran out of unique border values.
	ErrExhausted = errors.New("synth: unique borders exhausted")
)

// Options controls puzzle generation.
type Options struct {
	// Side is the number of tiles per row and per column.
	Side int
	// Size is the tile side length in cells.
	Size int
	// Seed makes generation reproducible.
	Seed int64
	// Density is the probability that a cell off the border lines is Mark.
	Density float64
	// Marker, if set, is planted Plant times into the composite picture.
	Marker *bitmap.Bitmap
	Plant  int
	// Scramble shuffles the tiles and gives each a random orientation.
	Scramble bool
}

// DefaultOptions returns a 3×3 puzzle of 10×10 tiles, scrambled, with
// sparse inner cells.
func DefaultOptions() Options {
	return Options{Side: 3, Size: 10, Seed: 1, Density: 0.125, Scramble: true}
}

// Puzzle is a generated tile set together with its answer.
type Puzzle struct {
	// Tiles in scrambled order.
	Tiles []*tile.Tile
	// Composite is the expected stitched picture in the generator's frame.
	Composite *bitmap.Bitmap
	// Layout[y][x] is the ID of the tile that belongs at (x,y).
	Layout [][]int
	// Restore maps each tile ID to the orientation that undoes its scramble.
	Restore map[int]orient.Orientation
	// Planted is the number of marker copies actually placed.
	Planted int
}

// Corners returns the IDs at the four corners of Layout.
func (p *Puzzle) Corners() [4]int {
	n := len(p.Layout) - 1
	return [4]int{p.Layout[0][0], p.Layout[0][n], p.Layout[n][0], p.Layout[n][n]}
}

// pcgStream is the fixed PCG stream selector; Seed picks the state.
const pcgStream = 0x7e55e7a

type generator struct {
	opts Options
	rng  *rand.Rand
	step int // Size-1: distance between border lines
	pic  *bitmap.Bitmap
}

// Generate builds a puzzle from opts.
func Generate(opts Options) (*Puzzle, error) {
	if opts.Side < 1 || opts.Size < tile.MinSize || opts.Size > tile.MaxSize {
		return nil, fmt.Errorf("%w: side %d, size %d", ErrInvalidOptions, opts.Side, opts.Size)
	}
	if opts.Density < 0 || opts.Density > 1 {
		return nil, fmt.Errorf("%w: density %v", ErrInvalidOptions, opts.Density)
	}
	inner := (opts.Size - 2) * opts.Side
	if opts.Marker != nil && (opts.Marker.Rows() > inner || opts.Marker.Cols() > inner) {
		return nil, fmt.Errorf("%w: marker %dx%d exceeds picture %dx%d",
			ErrInvalidOptions, opts.Marker.Rows(), opts.Marker.Cols(), inner, inner)
	}

	g := &generator{opts: opts, rng: rand.New(rand.NewPCG(uint64(opts.Seed), pcgStream)), step: opts.Size - 1}
	span := g.step*opts.Side + 1
	pic, err := bitmap.New(span, span)
	if err != nil {
		return nil, err
	}
	g.pic = pic

	g.fill()
	if err = g.borders(); err != nil {
		return nil, err
	}
	p := &Puzzle{Planted: g.plant()}
	p.Composite = g.composite()
	if err = g.cut(p); err != nil {
		return nil, err
	}

	return p, nil
}

// fill randomizes every cell: border lines at one half, the rest at Density.
func (g *generator) fill() {
	for r := 0; r < g.pic.Rows(); r++ {
		for c := 0; c < g.pic.Cols(); c++ {
			p := g.opts.Density
			if r%g.step == 0 || c%g.step == 0 {
				p = 0.5
			}
			if g.rng.Float64() < p {
				g.pic.Set(r, c, bitmap.Mark)
			}
		}
	}
}

// borders rewrites the free cells of every border segment until each
// segment has a fresh key and is not a palindrome. Segment endpoints are
// shared between segments and stay fixed.
func (g *generator) borders() error {
	free := g.opts.Size - 2
	attempts := 4 << min(free, 12)
	used := make(map[uint64]bool)

	segment := func(r0, c0, dr, dc int) error {
		line := make([]bitmap.Symbol, g.opts.Size)
		rev := make([]bitmap.Symbol, g.opts.Size)
		for try := 0; try < attempts; try++ {
			for k := 1; k <= free; k++ {
				s := bitmap.Blank
				if g.rng.IntN(2) == 1 {
					s = bitmap.Mark
				}
				g.pic.Set(r0+k*dr, c0+k*dc, s)
			}
			for k := range line {
				line[k] = g.pic.At(r0+k*dr, c0+k*dc)
				rev[len(line)-1-k] = line[k]
			}
			fwd, back := tile.Checksum(line), tile.Checksum(rev)
			key := min(fwd, back)
			if fwd == back || used[key] {
				continue
			}
			used[key] = true

			return nil
		}

		return fmt.Errorf("%w: segment at (%d,%d) after %d attempts", ErrExhausted, r0, c0, attempts)
	}

	for i := 0; i <= g.opts.Side; i++ {
		for j := 0; j < g.opts.Side; j++ {
			if err := segment(i*g.step, j*g.step, 0, 1); err != nil {
				return err
			}
			if err := segment(j*g.step, i*g.step, 1, 0); err != nil {
				return err
			}
		}
	}

	return nil
}

// picCoord maps a composite row or column to the picture.
func (g *generator) picCoord(k int) int {
	block := g.opts.Size - 2
	return (k/block)*g.step + 1 + k%block
}

// plant stamps non-overlapping marker copies into the inner cells.
func (g *generator) plant() int {
	m := g.opts.Marker
	if m == nil || g.opts.Plant <= 0 {
		return 0
	}
	inner := (g.opts.Size - 2) * g.opts.Side
	type box struct{ r, c int }
	var boxes []box
	overlaps := func(r, c int) bool {
		for _, b := range boxes {
			if r < b.r+m.Rows() && b.r < r+m.Rows() && c < b.c+m.Cols() && b.c < c+m.Cols() {
				return true
			}
		}

		return false
	}

	for try := 0; try < 100*g.opts.Plant && len(boxes) < g.opts.Plant; try++ {
		r := g.rng.IntN(inner - m.Rows() + 1)
		c := g.rng.IntN(inner - m.Cols() + 1)
		if overlaps(r, c) {
			continue
		}
		boxes = append(boxes, box{r, c})
		for i := 0; i < m.Rows(); i++ {
			for j := 0; j < m.Cols(); j++ {
				if m.At(i, j) == bitmap.Mark {
					g.pic.Set(g.picCoord(r+i), g.picCoord(c+j), bitmap.Mark)
				}
			}
		}
	}

	return len(boxes)
}

// composite drops every border line from the picture.
func (g *generator) composite() *bitmap.Bitmap {
	inner := (g.opts.Size - 2) * g.opts.Side
	out, _ := bitmap.New(inner, inner)
	for r := 0; r < inner; r++ {
		for c := 0; c < inner; c++ {
			out.Set(r, c, g.pic.At(g.picCoord(r), g.picCoord(c)))
		}
	}

	return out
}

// cut slices the picture into tiles, assigns IDs and scrambles.
func (g *generator) cut(p *Puzzle) error {
	n := g.opts.Side * g.opts.Side
	ids := g.rng.Perm(max(9000, n))[:n]
	all := orient.All()

	p.Layout = make([][]int, g.opts.Side)
	p.Restore = make(map[int]orient.Orientation, n)
	p.Tiles = make([]*tile.Tile, 0, n)
	for y := 0; y < g.opts.Side; y++ {
		p.Layout[y] = make([]int, g.opts.Side)
		for x := 0; x < g.opts.Side; x++ {
			id := 1000 + ids[y*g.opts.Side+x]
			data, err := g.pic.Crop(y*g.step, x*g.step, g.opts.Size, g.opts.Size)
			if err != nil {
				return err
			}
			scramble := orient.Identity
			if g.opts.Scramble {
				scramble = all[g.rng.IntN(len(all))]
			}
			t, err := tile.New(id, data.Transform(scramble))
			if err != nil {
				return err
			}
			p.Layout[y][x] = id
			p.Restore[id] = scramble.Inverse()
			p.Tiles = append(p.Tiles, t)
		}
	}
	if g.opts.Scramble {
		g.rng.Shuffle(len(p.Tiles), func(i, j int) { p.Tiles[i], p.Tiles[j] = p.Tiles[j], p.Tiles[i] })
	}

	return nil
}

// Transform returns the orientation o with want.Transform(o) equal to got.
func Transform(want, got *bitmap.Bitmap) (orient.Orientation, bool) {
	for _, o := range orient.All() {
		if want.Transform(o).Equal(got) {
			return o, true
		}
	}

	return orient.Identity, false
}
