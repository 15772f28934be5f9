package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tessera/internal/synth"
	"github.com/katalvlaran/tessera/tileset"
)

func newGenerateCmd(a *app) *cobra.Command {
	opts := synth.DefaultOptions()
	var markerPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic tile set to stdout",
		Long: `Cut a random picture into side×side tiles of size×size cells, shuffle them
and give each a random rotation and mirror. Every border is unique, so the
set has exactly one solution. With --plant, copies of the marker are drawn
into the picture first.

Examples:
  tessera generate --side 12 --seed 7 > tiles.txt
  tessera generate --plant 4 --marker glider.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.Plant > 0 {
				marker, err := a.loadMarker(markerPath)
				if err != nil {
					return err
				}
				opts.Marker = marker
			}
			p, err := synth.Generate(opts)
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{
				"side":    opts.Side,
				"size":    opts.Size,
				"seed":    opts.Seed,
				"planted": p.Planted,
				"corners": p.Corners(),
			}).Info("puzzle generated")

			return tileset.Write(cmd.OutOrStdout(), p.Tiles, a.cs)
		},
	}

	cmd.Flags().IntVar(&opts.Side, "side", opts.Side, "tiles per row and column")
	cmd.Flags().IntVar(&opts.Size, "size", opts.Size, "tile side length in cells")
	cmd.Flags().Int64Var(&opts.Seed, "seed", opts.Seed, "random seed")
	cmd.Flags().Float64Var(&opts.Density, "density", opts.Density, "probability of a marked cell inside the tiles")
	cmd.Flags().IntVar(&opts.Plant, "plant", 0, "number of marker copies to draw into the picture")
	cmd.Flags().BoolVar(&opts.Scramble, "scramble", opts.Scramble, "shuffle and reorient the tiles")
	cmd.Flags().StringVarP(&markerPath, "marker", "m", "", "marker file for --plant (default: config marker, then the sea monster)")

	return cmd
}
