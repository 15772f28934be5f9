// Package tile holds square bitmap tiles, their border fingerprints and the
// orientation search used to line two tiles up.
//
// A Tile keeps its pixels exactly as read. Its four Connectors (north, east,
// south, west) are fingerprinted once at construction by reading each border
// clockwise around the square:
//
//	north: left → right    east: top → bottom
//	south: right → left    west: bottom → top
//
// The fingerprint is the big-endian binary value of that string with Mark as
// 1. Reversed is the same over the reversed string.
//
// Orientation is view state. Border(d) maps the requested compass side back
// to the stored connector through orient.Orientation.Source and never touches
// the pixels. A mirrored tile reads its border counter-clockwise, so its
// oriented forward value is the stored Reversed value.
//
// Two connectors face each other exactly when one's oriented forward value
// equals the other's oriented reversed value (Fits). Compatible is the cheap
// orientation-free filter used to build neighbor graphs.
package tile
