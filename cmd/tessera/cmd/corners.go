package cmd

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"
)

func newCornersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "corners <tiles-file>",
		Short: "Print the four corner tile IDs and their product",
		Long: `Build the neighbor graph of a tile set and print the IDs of the four tiles
that border exactly two others, followed by the product of those IDs.

Example:
  tessera corners tiles.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadMosaic(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			corners, err := m.CornerTiles()
			if err != nil {
				return err
			}

			product := big.NewInt(1)
			out := cmd.OutOrStdout()
			for _, t := range corners {
				fmt.Fprintln(out, t.ID())
				product.Mul(product, big.NewInt(int64(t.ID())))
			}
			fmt.Fprintf(out, "product: %s\n", product)

			return nil
		},
	}
}
