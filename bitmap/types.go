package bitmap

import (
	"errors"
	"fmt"
	"unicode"
)

// Sentinel errors for bitmap construction and region operations.
var (
	// ErrInvalidDimensions indicates requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("bitmap: dimensions must be > 0")
	// ErrEmpty indicates textual input without rows or columns.
	ErrEmpty = errors.New("bitmap: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("bitmap: all rows must have the same length")
	// ErrUnknownSymbol indicates a rune that is not part of the charset.
	ErrUnknownSymbol = errors.New("bitmap: unknown symbol")
	// ErrOutOfBounds indicates a crop or paste region outside the bitmap.
	ErrOutOfBounds = errors.New("bitmap: region out of bounds")
	// ErrInvalidCharset indicates a charset with missing, repeated or whitespace runes.
	ErrInvalidCharset = errors.New("bitmap: invalid charset")
)

// Symbol is the value of one cell.
type Symbol uint8

const (
	// Blank is an empty cell. In a marker it is a wildcard.
	Blank Symbol = iota
	// Mark is a set cell.
	Mark
	// Consumed is a Mark cell covered by a marker match.
	Consumed
)

func (s Symbol) String() string {
	switch s {
	case Blank:
		return "blank"
	case Mark:
		return "mark"
	case Consumed:
		return "consumed"
	default:
		return fmt.Sprintf("Symbol(%d)", uint8(s))
	}
}

// Charset maps symbols to runes for text input and output.
type Charset struct {
	Mark     rune
	Blank    rune
	Consumed rune
}

// DefaultCharset returns '#' for Mark, '.' for Blank and 'O' for Consumed.
func DefaultCharset() Charset {
	return Charset{Mark: '#', Blank: '.', Consumed: 'O'}
}

// Validate checks that all three runes are set, distinct and not whitespace.
func (cs Charset) Validate() error {
	runes := []rune{cs.Mark, cs.Blank, cs.Consumed}
	for i, r := range runes {
		if r == 0 || unicode.IsSpace(r) {
			return fmt.Errorf("%w: rune %q", ErrInvalidCharset, r)
		}
		for _, other := range runes[:i] {
			if other == r {
				return fmt.Errorf("%w: rune %q used twice", ErrInvalidCharset, r)
			}
		}
	}

	return nil
}

// Symbol returns the symbol for r, or false if r is not in the charset.
func (cs Charset) Symbol(r rune) (Symbol, bool) {
	switch r {
	case cs.Mark:
		return Mark, true
	case cs.Blank:
		return Blank, true
	case cs.Consumed:
		return Consumed, true
	default:
		return Blank, false
	}
}

// Rune returns the text rune for s.
func (cs Charset) Rune(s Symbol) rune {
	switch s {
	case Mark:
		return cs.Mark
	case Consumed:
		return cs.Consumed
	default:
		return cs.Blank
	}
}

// Bitmap is a row-major grid of symbols.
// rows and cols are positive; data holds rows*cols cells.
type Bitmap struct {
	rows, cols int
	data       []Symbol
}
