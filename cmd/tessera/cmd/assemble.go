package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newAssembleCmd(a *app) *cobra.Command {
	var (
		bmpPath    string
		scale      int
		showLayout bool
	)

	cmd := &cobra.Command{
		Use:   "assemble <tiles-file>",
		Short: "Reassemble the tiles and print the stitched picture",
		Long: `Place every tile into the square grid, strip the tile borders and print the
resulting picture. With --layout the solved arrangement is printed first,
one row per line, each cell as "<id> <rotation><mirror>".

Examples:
  tessera assemble tiles.txt
  tessera assemble --layout --bmp picture.bmp --scale 8 tiles.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if scale < 1 {
				return fmt.Errorf("--scale must be at least 1, got %d", scale)
			}
			m, err := a.loadMosaic(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			img, err := m.Reconstruct()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if showLayout {
				layout, err := m.Layout()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\n\n", layout)
			}
			fmt.Fprintln(out, img.Format(a.cs))

			if bmpPath == "" {
				return nil
			}
			f, err := os.Create(bmpPath)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", bmpPath, err)
			}
			if err = img.WriteBMP(f, scale); err != nil {
				f.Close()
				return fmt.Errorf("failed to write %s: %w", bmpPath, err)
			}
			a.log.WithFields(logrus.Fields{"file": bmpPath, "scale": scale}).Info("bitmap written")

			return f.Close()
		},
	}

	cmd.Flags().StringVar(&bmpPath, "bmp", "", "also write the picture as a BMP image")
	cmd.Flags().IntVar(&scale, "scale", 4, "pixels per cell in the BMP image")
	cmd.Flags().BoolVarP(&showLayout, "layout", "l", false, "print the solved layout")

	return cmd
}
