package mosaic

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/tessera/placement"
)

// Sentinel errors for tile-set validation.
var (
	// ErrNoTiles indicates an empty tile set.
	ErrNoTiles = errors.New("mosaic: no tiles")

	// ErrInconsistentTileSet wraps every tile-set validation failure below.
	ErrInconsistentTileSet = errors.New("mosaic: inconsistent tile set")

	// ErrDuplicateTile indicates two tiles with the same ID.
	ErrDuplicateTile = errors.New("mosaic: duplicate tile id")

	// ErrSizeMismatch indicates tiles of differing sizes.
	ErrSizeMismatch = errors.New("mosaic: tiles differ in size")

	// ErrNeighborCount indicates a tile with fewer than 2 or more than 4 neighbors.
	ErrNeighborCount = errors.New("mosaic: neighbor count out of range")

	// ErrCornerCount indicates a corner count other than four.
	ErrCornerCount = errors.New("mosaic: corner count is not four")

	// ErrDisconnected indicates a neighbor graph with more than one component.
	ErrDisconnected = errors.New("mosaic: tile set is disconnected")

	// ErrLayoutMismatch indicates a solved layout that places two tiles side
	// by side without a neighbor-graph edge between them.
	ErrLayoutMismatch = errors.New("mosaic: layout disagrees with neighbor graph")
)

// Option configures a Mosaic.
type Option func(*Options)

// Options holds the collaborators of a Mosaic.
type Options struct {
	// Logger receives graph statistics at Debug and search steps at Trace.
	Logger logrus.FieldLogger

	// Placement is passed to placement.Solve after the logging hooks, so
	// caller hooks replace them.
	Placement []placement.Option
}

// DefaultOptions returns Options with a logger that discards everything.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{Logger: l}
}

// WithLogger routes log output to l. A nil logger has no effect.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithPlacementOptions appends options for the placement search, for
// example placement.WithContext.
func WithPlacementOptions(opts ...placement.Option) Option {
	return func(o *Options) {
		o.Placement = append(o.Placement, opts...)
	}
}
