package cmd

import (
	_ "embed"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tessera/bitmap"
	"github.com/katalvlaran/tessera/tileset"
)

// seaMonster is the default marker, always in the default charset.
//
//go:embed seamonster.txt
var seaMonster string

// loadMarker reads the marker from path, then the configured marker file,
// then falls back to the built-in sea monster.
func (a *app) loadMarker(path string) (*bitmap.Bitmap, error) {
	if path == "" {
		path = a.cfg.Marker
	}
	if path == "" {
		p, err := tileset.NewParser(bitmap.DefaultCharset())
		if err != nil {
			return nil, err
		}
		return p.ParseMarkerString(seaMonster)
	}

	p, err := a.parser()
	if err != nil {
		return nil, err
	}
	m, err := p.ParseMarkerFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse marker %s: %w", path, err)
	}

	return m, nil
}

func newRoughnessCmd(a *app) *cobra.Command {
	var (
		markerPath string
		show       bool
	)

	cmd := &cobra.Command{
		Use:   "roughness <tiles-file>",
		Short: "Count marked cells not covered by any marker match",
		Long: `Reassemble the picture and search it for the marker in all eight rotations
and mirror images. Prints the number of matches, the transform they were
found under and the number of marked cells left uncovered.

Examples:
  tessera roughness tiles.txt
  tessera roughness --marker glider.txt --show tiles.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			marker, err := a.loadMarker(markerPath)
			if err != nil {
				return err
			}
			m, err := a.loadMosaic(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			res, err := m.FindMatches(marker)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if show {
				fmt.Fprintf(out, "%s\n\n", res.Image.Format(a.cs))
			}
			fmt.Fprintf(out, "matches: %d\n", len(res.Offsets))
			if res.Found {
				fmt.Fprintf(out, "transform: %s\n", res.Orientation)
			}
			fmt.Fprintf(out, "roughness: %d\n", res.Residual)

			return nil
		},
	}

	cmd.Flags().StringVarP(&markerPath, "marker", "m", "", "marker file (default: config marker, then the sea monster)")
	cmd.Flags().BoolVar(&show, "show", false, "print the picture with matched cells highlighted")

	return cmd
}
