// Package orient models the rigid orientations of a square: four clockwise
// rotations combined with an optional mirror, and the compass directions
// they act on.
//
// What:
//
//   - Rotation: 0, 90, 180 or 270 degrees, clockwise.
//   - Mirror: none, horizontal (top and bottom swap) or vertical (left and
//     right swap). The mirror is always applied before the rotation.
//   - Orientation: a (Rotation, Mirror) pair. Vertical mirroring equals a
//     horizontal mirror followed by a 180° turn, so the twelve pairs name the
//     eight elements of the dihedral group D4. Canonical() folds them onto
//     the eight pairs with Mirror ∈ {MirrorNone, MirrorHorizontal}.
//   - Direction: North, East, South, West expressed in degrees.
//
// How:
//
//	Every orientation is represented by a 2×2 integer matrix acting on
//	screen vectors (x right, y down). Compose and Inverse are table lookups
//	that are derived once, at package initialisation, from products and
//	transposes of those matrices. Call sites never repeat modular
//	arithmetic.
//
// Complexity:
//
//   - Compose, Inverse, Apply, Source: O(1).
package orient
