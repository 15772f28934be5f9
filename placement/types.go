// Package placement defines the options and result types of the tile
// placement search, including cancellation and per-step hooks.
package placement

import (
	"context"
	"errors"

	"github.com/katalvlaran/tessera/grid"
	"github.com/katalvlaran/tessera/tile"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Solve.
	ErrGraphNil = errors.New("placement: graph is nil")

	// ErrNoTiles is returned for an empty tile set.
	ErrNoTiles = errors.New("placement: no tiles")

	// ErrNotSquare indicates a tile count that is not a perfect square.
	ErrNotSquare = errors.New("placement: tile count is not a perfect square")

	// ErrUnknownTile indicates a graph vertex without a matching tile.
	ErrUnknownTile = errors.New("placement: graph references unknown tile")

	// ErrNoStart indicates that no corner tile can be turned to face the interior.
	ErrNoStart = errors.New("placement: no usable start corner")

	// ErrPlacementFailed indicates that the search exhausted every candidate.
	ErrPlacementFailed = errors.New("placement: no valid arrangement")
)

// Option configures optional behavior of Solve.
type Option func(*Options)

// Options holds configurable parameters for the placement search.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is checked once per search step.
	Ctx context.Context

	// OnPlace, if non-nil, is invoked after a tile is put into a cell with its
	// trial orientation. Returning an error aborts the search with that error.
	OnPlace func(x, y int, t *tile.Tile) error

	// OnBacktrack, if non-nil, is invoked after a tile is taken back out of a cell.
	OnBacktrack func(x, y int, t *tile.Tile)
}

// DefaultOptions returns Options with a background context and no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		OnPlace:     nil,
		OnBacktrack: nil,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnPlace returns an Option that installs fn as the placement hook.
func WithOnPlace(fn func(x, y int, t *tile.Tile) error) Option {
	return func(o *Options) {
		o.OnPlace = fn
	}
}

// WithOnBacktrack returns an Option that installs fn as the backtrack hook.
func WithOnBacktrack(fn func(x, y int, t *tile.Tile)) Option {
	return func(o *Options) {
		o.OnBacktrack = fn
	}
}

// Result captures a successful arrangement and search diagnostics.
type Result struct {
	// Grid holds every tile in its cell, oriented as placed.
	Grid *grid.Grid

	// Start is the corner tile fixed at (0,0).
	Start *tile.Tile

	// Steps counts tile placements, the start tile included.
	Steps int

	// Backtracks counts placements that were undone.
	Backtracks int
}
