// Package bitmap provides the two-symbol raster shared by tiles, composites
// and markers.
//
// What:
//
//   - Bitmap is a rows×cols grid of Symbol values stored row-major in a flat
//     slice (cache friendly, one allocation).
//   - Symbol is Blank or Mark. A third value, Consumed, is produced only by
//     marker search to flag cells covered by a match.
//   - Charset maps symbols to text runes ('#', '.', 'O' by default).
//
// Transforms:
//
//   - FlipRows (horizontal mirror), FlipCols (vertical mirror), RotateCW and
//     Transform(orient.Orientation) all return a new Bitmap; the receiver is
//     never modified. Transform applies the mirror first, then the rotation.
//
// Errors:
//
//   - ErrInvalidDimensions: requested rows or cols ≤ 0.
//   - ErrEmpty: textual input with no rows or no columns.
//   - ErrNonRectangular: textual rows of differing lengths.
//   - ErrUnknownSymbol: a rune outside the charset.
//   - ErrOutOfBounds: crop or paste region outside the bitmap.
//   - ErrInvalidCharset: charset runes missing, repeated or whitespace.
//
// Complexity:
//
//   - At, Set: O(1). Transforms, Clone, Count, Equal: O(rows·cols).
package bitmap
