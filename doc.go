// Package tessera reassembles a picture from square tiles that were cut
// apart, shuffled, rotated and mirrored, then searches the picture for a
// marker pattern.
//
// Every tile border is fingerprinted as a pair of checksums (read clockwise
// and reversed). Tiles sharing a fingerprint become neighbors in a graph;
// the four tiles with exactly two neighbors are the corners. A
// backtracking search places the tiles row by row starting from a corner,
// trying each candidate in all eight orientations. The tile borders are then
// stripped and the inner blocks stitched into one bitmap.
//
// Packages:
//
//	orient/      rotation, mirror and direction values; orientation algebra
//	bitmap/      two-symbol raster with flips, rotations, crop, paste and BMP export
//	tile/        tiles, border connectors and orientation enumeration
//	core/        undirected graph of tile IDs
//	bfs/         breadth-first search over core graphs
//	grid/        square layout of placed tiles and the stitcher
//	placement/   row-major backtracking solver
//	pattern/     marker search over the eight rigid transforms
//	mosaic/      validated tile set: corners, reconstruction, marker search
//	tileset/     plain-text tile and marker format
//
// Quick example:
//
//	p, _ := tileset.NewParser(bitmap.DefaultCharset())
//	tiles, _ := p.ParseTilesFile("tiles.txt")
//	m, _ := mosaic.New(tiles)
//	corners, _ := m.CornerTiles()
//	picture, _ := m.Reconstruct()
//
// The tessera command (cmd/tessera) wraps the same flow.
package tessera
