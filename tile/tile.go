package tile

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tessera/bitmap"
	"github.com/katalvlaran/tessera/orient"
)

// Size limits for tile data.
const (
	// MinSize keeps a non-empty inner block after the border ring is dropped.
	MinSize = 3
	// MaxSize is the longest border a uint64 fingerprint can hold.
	MaxSize = 64
)

// Sentinel errors returned by New.
var (
	// ErrNilData indicates New was called without a bitmap.
	ErrNilData = errors.New("tile: nil data")
	// ErrNotSquare indicates tile data whose row and column counts differ.
	ErrNotSquare = errors.New("tile: data is not square")
	// ErrTooSmall indicates a tile smaller than MinSize.
	ErrTooSmall = errors.New("tile: size below minimum")
	// ErrTooLarge indicates a tile larger than MaxSize.
	ErrTooLarge = errors.New("tile: size above maximum")
)

// Tile is one square piece of the picture.
type Tile struct {
	id          int
	data        *bitmap.Bitmap
	connectors  [4]*Connector
	orientation orient.Orientation
}

// New validates data and fingerprints its borders. The bitmap is cloned.
func New(id int, data *bitmap.Bitmap) (*Tile, error) {
	if data == nil {
		return nil, fmt.Errorf("tile %d: %w", id, ErrNilData)
	}
	n := data.Rows()
	if n != data.Cols() {
		return nil, fmt.Errorf("tile %d: %w: %dx%d", id, ErrNotSquare, data.Rows(), data.Cols())
	}
	if n < MinSize {
		return nil, fmt.Errorf("tile %d: %w: %d < %d", id, ErrTooSmall, n, MinSize)
	}
	if n > MaxSize {
		return nil, fmt.Errorf("tile %d: %w: %d > %d", id, ErrTooLarge, n, MaxSize)
	}

	t := &Tile{id: id, data: data.Clone()}
	t.connectors[orient.North.Index()] = newConnector(t, orient.North, t.data.Row(0))
	t.connectors[orient.East.Index()] = newConnector(t, orient.East, t.data.Col(n-1))
	t.connectors[orient.South.Index()] = newConnector(t, orient.South, reversed(t.data.Row(n-1)))
	t.connectors[orient.West.Index()] = newConnector(t, orient.West, reversed(t.data.Col(0)))

	return t, nil
}

func reversed(s []bitmap.Symbol) []bitmap.Symbol {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}

	return s
}

// ID returns the tile identifier.
func (t *Tile) ID() int { return t.id }

// Size returns the side length in cells.
func (t *Tile) Size() int { return t.data.Rows() }

// Data returns a copy of the unoriented pixels.
func (t *Tile) Data() *bitmap.Bitmap { return t.data.Clone() }

// Orientation returns the current orientation.
func (t *Tile) Orientation() orient.Orientation { return t.orientation }

// SetOrientation replaces the current orientation. Connectors are unchanged.
func (t *Tile) SetOrientation(o orient.Orientation) { t.orientation = o }

// Connectors returns the four connectors in north, east, south, west order
// of the unoriented tile.
func (t *Tile) Connectors() [4]*Connector { return t.connectors }

// Connector returns the connector built from the unoriented side d.
func (t *Tile) Connector(d orient.Direction) *Connector {
	return t.connectors[d.Index()]
}

// Border returns the connector that currently faces d.
func (t *Tile) Border(d orient.Direction) *Connector {
	return t.connectors[t.orientation.Source(d).Index()]
}

// CanConnect reports whether any connector of t is compatible with any
// connector of o. A tile never connects to itself.
func (t *Tile) CanConnect(o *Tile) bool {
	if t == o {
		return false
	}
	for _, a := range t.connectors {
		for _, b := range o.connectors {
			if Compatible(a, b) {
				return true
			}
		}
	}

	return false
}

// Render returns the pixels as currently oriented.
func (t *Tile) Render() *bitmap.Bitmap {
	return t.data.Transform(t.orientation)
}

// Inner returns the oriented pixels without the outer ring.
func (t *Tile) Inner() *bitmap.Bitmap {
	n := t.Size()
	inner, err := t.Render().Crop(1, 1, n-2, n-2)
	if err != nil {
		// unreachable: New enforces n >= MinSize
		panic(err)
	}

	return inner
}

// String renders the id and orientation, e.g. "1951 090h".
func (t *Tile) String() string {
	return fmt.Sprintf("%d %s", t.id, t.orientation)
}
