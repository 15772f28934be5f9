package bitmap

import (
	"github.com/katalvlaran/tessera/orient"
)

// FlipRows mirrors b across its horizontal axis: the top row becomes the bottom row.
func (b *Bitmap) FlipRows() *Bitmap {
	out := &Bitmap{rows: b.rows, cols: b.cols, data: make([]Symbol, len(b.data))}
	for r := 0; r < b.rows; r++ {
		copy(out.data[out.indexOf(b.rows-1-r, 0):], b.data[b.indexOf(r, 0):b.indexOf(r, 0)+b.cols])
	}

	return out
}

// FlipCols mirrors b across its vertical axis: the left column becomes the right column.
func (b *Bitmap) FlipCols() *Bitmap {
	out := &Bitmap{rows: b.rows, cols: b.cols, data: make([]Symbol, len(b.data))}
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			out.data[out.indexOf(r, b.cols-1-c)] = b.data[b.indexOf(r, c)]
		}
	}

	return out
}

// RotateCW rotates b a quarter turn clockwise. An r×c bitmap becomes c×r.
func (b *Bitmap) RotateCW() *Bitmap {
	out := &Bitmap{rows: b.cols, cols: b.rows, data: make([]Symbol, len(b.data))}
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			// (r,c) moves to (c, rows-1-r)
			out.data[out.indexOf(c, b.rows-1-r)] = b.data[b.indexOf(r, c)]
		}
	}

	return out
}

// Transform returns b under o: mirror first, then rotate clockwise.
func (b *Bitmap) Transform(o orient.Orientation) *Bitmap {
	var out *Bitmap
	switch o.Mirror {
	case orient.MirrorHorizontal:
		out = b.FlipRows()
	case orient.MirrorVertical:
		out = b.FlipCols()
	default:
		out = b.Clone()
	}
	for i := 0; i < int(orient.Rot0.Add(o.Rotation))/90; i++ {
		out = out.RotateCW()
	}

	return out
}
