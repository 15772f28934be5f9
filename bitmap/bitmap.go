package bitmap

import (
	"fmt"
	"strings"
)

// New returns a rows×cols bitmap filled with Blank.
func New(rows, cols int) (*Bitmap, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, cols)
	}

	return &Bitmap{rows: rows, cols: cols, data: make([]Symbol, rows*cols)}, nil
}

// FromRows builds a bitmap from one string per row.
// Every rune must belong to cs and all rows must share one length.
func FromRows(lines []string, cs Charset) (*Bitmap, error) {
	if len(lines) == 0 {
		return nil, ErrEmpty
	}
	cols := len([]rune(lines[0]))
	if cols == 0 {
		return nil, ErrEmpty
	}

	b := &Bitmap{rows: len(lines), cols: cols, data: make([]Symbol, 0, len(lines)*cols)}
	for r, line := range lines {
		runes := []rune(line)
		if len(runes) != cols {
			return nil, fmt.Errorf("%w: row %d has length %d, expected %d", ErrNonRectangular, r, len(runes), cols)
		}
		for c, ch := range runes {
			s, ok := cs.Symbol(ch)
			if !ok {
				return nil, fmt.Errorf("%w: %q at row %d col %d", ErrUnknownSymbol, ch, r, c)
			}
			b.data = append(b.data, s)
		}
	}

	return b, nil
}

// Parse splits text on newlines, drops surrounding blank lines and trailing
// carriage returns, then calls FromRows.
func Parse(text string, cs Charset) (*Bitmap, error) {
	raw := strings.Split(strings.Trim(text, "\r\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		lines = append(lines, strings.TrimRight(l, "\r"))
	}
	if len(lines) == 1 && lines[0] == "" {
		return nil, ErrEmpty
	}

	return FromRows(lines, cs)
}

// MustParse is Parse with DefaultCharset that panics on error.
// It is meant for literals in tests and package-level variables.
func MustParse(text string) *Bitmap {
	b, err := Parse(text, DefaultCharset())
	if err != nil {
		panic(err)
	}

	return b
}

// Rows returns the number of rows.
func (b *Bitmap) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Bitmap) Cols() int { return b.cols }

// InBounds reports whether (r,c) lies inside b.
func (b *Bitmap) InBounds(r, c int) bool {
	return r >= 0 && r < b.rows && c >= 0 && c < b.cols
}

// indexOf maps (r,c) to the flat offset. Callers check bounds.
func (b *Bitmap) indexOf(r, c int) int {
	return r*b.cols + c
}

// At returns the symbol at (r,c). It panics when (r,c) is out of bounds.
func (b *Bitmap) At(r, c int) Symbol {
	if !b.InBounds(r, c) {
		panic(fmt.Sprintf("bitmap: index (%d,%d) out of range %dx%d", r, c, b.rows, b.cols))
	}

	return b.data[b.indexOf(r, c)]
}

// Set stores s at (r,c). It panics when (r,c) is out of bounds.
func (b *Bitmap) Set(r, c int, s Symbol) {
	if !b.InBounds(r, c) {
		panic(fmt.Sprintf("bitmap: index (%d,%d) out of range %dx%d", r, c, b.rows, b.cols))
	}
	b.data[b.indexOf(r, c)] = s
}

// Row returns a copy of row r, left to right.
func (b *Bitmap) Row(r int) []Symbol {
	out := make([]Symbol, b.cols)
	copy(out, b.data[b.indexOf(r, 0):b.indexOf(r, 0)+b.cols])

	return out
}

// Col returns a copy of column c, top to bottom.
func (b *Bitmap) Col(c int) []Symbol {
	out := make([]Symbol, b.rows)
	for r := range out {
		out[r] = b.data[b.indexOf(r, c)]
	}

	return out
}

// Clone returns a deep copy of b.
func (b *Bitmap) Clone() *Bitmap {
	data := make([]Symbol, len(b.data))
	copy(data, b.data)

	return &Bitmap{rows: b.rows, cols: b.cols, data: data}
}

// Equal reports whether b and o have the same shape and cells.
func (b *Bitmap) Equal(o *Bitmap) bool {
	if b == nil || o == nil {
		return b == o
	}
	if b.rows != o.rows || b.cols != o.cols {
		return false
	}
	for i := range b.data {
		if b.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// Count returns how many cells hold s.
func (b *Bitmap) Count(s Symbol) int {
	n := 0
	for _, v := range b.data {
		if v == s {
			n++
		}
	}

	return n
}

// Crop returns the h×w sub-bitmap whose top-left corner is (r0,c0).
func (b *Bitmap) Crop(r0, c0, h, w int) (*Bitmap, error) {
	if h <= 0 || w <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, h, w)
	}
	if !b.InBounds(r0, c0) || !b.InBounds(r0+h-1, c0+w-1) {
		return nil, fmt.Errorf("%w: crop %dx%d at (%d,%d) from %dx%d", ErrOutOfBounds, h, w, r0, c0, b.rows, b.cols)
	}

	out := &Bitmap{rows: h, cols: w, data: make([]Symbol, 0, h*w)}
	for r := r0; r < r0+h; r++ {
		start := b.indexOf(r, c0)
		out.data = append(out.data, b.data[start:start+w]...)
	}

	return out, nil
}

// Paste copies src into b with src's top-left corner at (r0,c0).
func (b *Bitmap) Paste(src *Bitmap, r0, c0 int) error {
	if !b.InBounds(r0, c0) || !b.InBounds(r0+src.rows-1, c0+src.cols-1) {
		return fmt.Errorf("%w: paste %dx%d at (%d,%d) into %dx%d", ErrOutOfBounds, src.rows, src.cols, r0, c0, b.rows, b.cols)
	}
	for r := 0; r < src.rows; r++ {
		copy(b.data[b.indexOf(r0+r, c0):], src.data[src.indexOf(r, 0):src.indexOf(r, 0)+src.cols])
	}

	return nil
}

// Format renders b with one line per row using cs. Rows are separated by
// '\n' with no trailing newline.
func (b *Bitmap) Format(cs Charset) string {
	var sb strings.Builder
	sb.Grow(b.rows * (b.cols + 1))
	for r := 0; r < b.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < b.cols; c++ {
			sb.WriteRune(cs.Rune(b.data[b.indexOf(r, c)]))
		}
	}

	return sb.String()
}

// String renders b with DefaultCharset.
func (b *Bitmap) String() string {
	return b.Format(DefaultCharset())
}
