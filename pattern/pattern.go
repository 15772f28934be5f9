// Package pattern searches a bitmap for a smaller marker under the eight
// rigid transforms of the searched image.
//
// Only Mark cells of the marker are significant; its Blank cells are
// wildcards. A match at offset (r,c) requires every marker Mark cell (i,j) to
// land on a Mark cell at (r+i, c+j). Matches may overlap.
//
// FindMatches tries the transforms in the given order and stops at the first
// one with at least one match. Cells covered by a match are set to Consumed
// in the returned image and Residual counts the Mark cells left over.
//
// Complexity: O(T·R·C·k) for T transforms, an R×C image and k marker marks.
package pattern

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tessera/bitmap"
	"github.com/katalvlaran/tessera/orient"
)

var (
	// ErrNilBitmap indicates a nil image or marker.
	ErrNilBitmap = errors.New("pattern: nil bitmap")
	// ErrEmptyMarker indicates a marker without Mark cells.
	ErrEmptyMarker = errors.New("pattern: marker has no mark cells")
)

// Offset is the top-left corner of a match.
type Offset struct {
	Row, Col int
}

// Result describes the outcome of FindMatches.
type Result struct {
	// Found is true when some transform produced at least one match.
	Found bool
	// Orientation is the winning transform of the searched image.
	Orientation orient.Orientation
	// Offsets lists the matches in row-major order.
	Offsets []Offset
	// Image is the transformed image with matched cells Consumed. Without a
	// match it is an unmodified copy of the input.
	Image *bitmap.Bitmap
	// Residual counts Mark cells not covered by any match.
	Residual int
}

// Transforms returns the eight image transforms in search order: the four
// rotations without mirror, then the four rotations of the horizontal mirror.
func Transforms() []orient.Orientation {
	return orient.All()
}

// marks lists the (row, col) of every Mark cell of marker.
func marks(marker *bitmap.Bitmap) [][2]int {
	var out [][2]int
	for i := 0; i < marker.Rows(); i++ {
		for j := 0; j < marker.Cols(); j++ {
			if marker.At(i, j) == bitmap.Mark {
				out = append(out, [2]int{i, j})
			}
		}
	}

	return out
}

// Offsets returns every offset at which marker matches img, row-major.
func Offsets(img, marker *bitmap.Bitmap) []Offset {
	return offsets(img, marker.Rows(), marker.Cols(), marks(marker))
}

func offsets(img *bitmap.Bitmap, h, w int, cells [][2]int) []Offset {
	var out []Offset
	for r := 0; r+h <= img.Rows(); r++ {
	scan:
		for c := 0; c+w <= img.Cols(); c++ {
			for _, p := range cells {
				if img.At(r+p[0], c+p[1]) != bitmap.Mark {
					continue scan
				}
			}
			out = append(out, Offset{Row: r, Col: c})
		}
	}

	return out
}

// Consume sets every cell covered by a marker Mark at each offset to Consumed.
func Consume(img, marker *bitmap.Bitmap, at []Offset) {
	cells := marks(marker)
	for _, o := range at {
		for _, p := range cells {
			img.Set(o.Row+p[0], o.Col+p[1], bitmap.Consumed)
		}
	}
}

// FindMatches searches img under each transform in order and returns the
// first transform with matches. img is not modified.
func FindMatches(img, marker *bitmap.Bitmap, transforms []orient.Orientation) (Result, error) {
	if img == nil || marker == nil {
		return Result{}, ErrNilBitmap
	}
	cells := marks(marker)
	if len(cells) == 0 {
		return Result{}, fmt.Errorf("%w: %dx%d", ErrEmptyMarker, marker.Rows(), marker.Cols())
	}

	for _, o := range transforms {
		view := img.Transform(o)
		found := offsets(view, marker.Rows(), marker.Cols(), cells)
		if len(found) == 0 {
			continue
		}
		Consume(view, marker, found)

		return Result{
			Found:       true,
			Orientation: o,
			Offsets:     found,
			Image:       view,
			Residual:    view.Count(bitmap.Mark),
		}, nil
	}

	return Result{Image: img.Clone(), Residual: img.Count(bitmap.Mark)}, nil
}
