package orient

import "fmt"

// Rotation is a clockwise rotation in degrees.
type Rotation int

const (
	Rot0   Rotation = 0
	Rot90  Rotation = 90
	Rot180 Rotation = 180
	Rot270 Rotation = 270
)

// Rotations returns the four rotations in ascending order.
func Rotations() [4]Rotation {
	return [4]Rotation{Rot0, Rot90, Rot180, Rot270}
}

// Add returns r+o reduced modulo 360.
func (r Rotation) Add(o Rotation) Rotation {
	return Rotation(mod360(int(r) + int(o)))
}

// steps is the number of quarter turns in r.
func (r Rotation) steps() int {
	return mod360(int(r)) / 90
}

// Mirror selects the reflection applied before rotating.
type Mirror int

const (
	// MirrorNone leaves the square as is.
	MirrorNone Mirror = iota
	// MirrorHorizontal reflects across the horizontal axis: top and bottom swap.
	MirrorHorizontal
	// MirrorVertical reflects across the vertical axis: left and right swap.
	MirrorVertical
)

// Mirrors returns every mirror value, including the redundant vertical one.
func Mirrors() [3]Mirror {
	return [3]Mirror{MirrorNone, MirrorHorizontal, MirrorVertical}
}

// Rune is the one-character code used in layout dumps.
func (m Mirror) Rune() rune {
	switch m {
	case MirrorHorizontal:
		return 'h'
	case MirrorVertical:
		return 'v'
	default:
		return '-'
	}
}

func (m Mirror) String() string {
	switch m {
	case MirrorNone:
		return "none"
	case MirrorHorizontal:
		return "horizontal"
	case MirrorVertical:
		return "vertical"
	default:
		return fmt.Sprintf("Mirror(%d)", int(m))
	}
}

// Direction is a compass side of a square, in degrees clockwise from North.
type Direction int

const (
	North Direction = 0
	East  Direction = 90
	South Direction = 180
	West  Direction = 270
)

// Directions returns the four sides in clockwise order starting at North.
func Directions() [4]Direction {
	return [4]Direction{North, East, South, West}
}

// Opposite returns the side facing d across a shared edge.
func (d Direction) Opposite() Direction {
	return Direction(mod360(int(d) + 180))
}

// Index maps North, East, South, West to 0, 1, 2, 3.
func (d Direction) Index() int {
	return mod360(int(d)) / 90
}

func (d Direction) String() string {
	switch Direction(mod360(int(d))) {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Orientation is a mirror followed by a clockwise rotation.
// The zero value is the identity.
type Orientation struct {
	Rotation Rotation
	Mirror   Mirror
}

// Identity leaves a square unchanged.
var Identity = Orientation{}

// Canonical folds a vertical mirror into a horizontal mirror plus a half
// turn. Two orientations act identically iff their canonical forms are equal.
func (o Orientation) Canonical() Orientation {
	if o.Mirror == MirrorVertical {
		return Orientation{Rotation: o.Rotation.Add(Rot180), Mirror: MirrorHorizontal}
	}

	return o
}

// Source returns the side of the untransformed square that ends up facing d
// once o is applied:
//
//	MirrorNone:       d - rotation
//	MirrorHorizontal: 180 - d + rotation
//	MirrorVertical:   360 - d + rotation
//
// all modulo 360. It is the inverse of Apply.
func (o Orientation) Source(d Direction) Direction {
	var deg int
	switch o.Mirror {
	case MirrorHorizontal:
		deg = 180 - int(d) + int(o.Rotation)
	case MirrorVertical:
		deg = 360 - int(d) + int(o.Rotation)
	default:
		deg = int(d) - int(o.Rotation)
	}

	return Direction(mod360(deg))
}

// Apply returns the side that the unoriented side d faces once o is applied.
func (o Orientation) Apply(d Direction) Direction {
	return applyTable[o.index()][d.Index()]
}

// Inverse returns the orientation that undoes o.
func (o Orientation) Inverse() Orientation {
	return canonical[inverseTable[o.index()]]
}

// String renders o as three rotation digits plus the mirror rune, e.g. "090h".
func (o Orientation) String() string {
	return fmt.Sprintf("%03d%c", int(o.Rotation), o.Mirror.Rune())
}

// index is the position of o's canonical form in All().
func (o Orientation) index() int {
	c := o.Canonical()
	if c.Mirror == MirrorHorizontal {
		return 4 + c.Rotation.steps()
	}

	return c.Rotation.steps()
}

// Compose returns the orientation equivalent to applying first and then
// then. The result is canonical.
func Compose(first, then Orientation) Orientation {
	return canonical[composeTable[first.index()][then.index()]]
}

// All returns the eight distinct orientations in a fixed order: the four
// rotations without mirror, then the four rotations of the horizontal mirror.
func All() []Orientation {
	out := make([]Orientation, len(canonical))
	copy(out, canonical[:])

	return out
}

func mod360(deg int) int {
	return ((deg % 360) + 360) % 360
}
