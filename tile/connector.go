package tile

import (
	"fmt"

	"github.com/katalvlaran/tessera/bitmap"
	"github.com/katalvlaran/tessera/orient"
)

// Connector is the fingerprint of one tile border in the unoriented frame.
type Connector struct {
	Checksum uint64
	Reversed uint64

	tile *Tile
	side orient.Direction
}

// Checksum returns the big-endian value of border with Mark as 1.
// Borders longer than 64 cells overflow; New rejects such tiles.
func Checksum(border []bitmap.Symbol) uint64 {
	var v uint64
	for _, s := range border {
		v <<= 1
		if s == bitmap.Mark {
			v |= 1
		}
	}

	return v
}

func newConnector(t *Tile, side orient.Direction, border []bitmap.Symbol) *Connector {
	rev := make([]bitmap.Symbol, len(border))
	for i, s := range border {
		rev[len(border)-1-i] = s
	}

	return &Connector{
		Checksum: Checksum(border),
		Reversed: Checksum(rev),
		tile:     t,
		side:     side,
	}
}

// Tile returns the owning tile.
func (c *Connector) Tile() *Tile { return c.tile }

// Side returns the side the connector occupied at construction.
func (c *Connector) Side() orient.Direction { return c.side }

// Forward is the checksum read clockwise under the owner's current orientation.
func (c *Connector) Forward() uint64 {
	if c.tile.orientation.Mirror != orient.MirrorNone {
		return c.Reversed
	}

	return c.Checksum
}

// Backward is the checksum read counter-clockwise under the owner's current orientation.
func (c *Connector) Backward() uint64 {
	if c.tile.orientation.Mirror != orient.MirrorNone {
		return c.Checksum
	}

	return c.Reversed
}

// Facing returns the compass side the connector occupies under the owner's
// current orientation.
func (c *Connector) Facing() orient.Direction {
	return c.tile.orientation.Apply(c.side)
}

func (c *Connector) String() string {
	return fmt.Sprintf("%d/%s(%#x,%#x)", c.tile.id, c.side, c.Checksum, c.Reversed)
}

// Compatible reports whether a and b could face each other under some
// orientation of their tiles.
func Compatible(a, b *Connector) bool {
	return a.Checksum == b.Checksum || a.Checksum == b.Reversed
}

// Fits reports whether a and b line up cell for cell as their tiles are
// currently oriented.
func Fits(a, b *Connector) bool {
	return a.Forward() == b.Backward()
}
