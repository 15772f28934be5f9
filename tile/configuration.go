package tile

import (
	"fmt"

	"github.com/katalvlaran/tessera/orient"
)

// Configuration is an orientation that makes Tile fit a given connector.
type Configuration struct {
	Tile        *Tile
	Orientation orient.Orientation
}

// Apply sets the tile's orientation.
func (c Configuration) Apply() {
	c.Tile.SetOrientation(c.Orientation)
}

func (c Configuration) String() string {
	return fmt.Sprintf("%d %s", c.Tile.ID(), c.Orientation)
}

// Configurations returns every orientation of cand under which the border
// facing back toward a fits a. a is read as its own tile is currently oriented.
// Orientations are tried in orient.All order. cand's orientation is restored
// before returning.
func Configurations(a *Connector, cand *Tile) []Configuration {
	saved := cand.Orientation()
	defer cand.SetOrientation(saved)

	back := a.Facing().Opposite()
	var out []Configuration
	for _, o := range orient.All() {
		cand.SetOrientation(o)
		if Fits(a, cand.Border(back)) {
			out = append(out, Configuration{Tile: cand, Orientation: o})
		}
	}

	return out
}
