package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSimilarityCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "similarity A B",
		Short: "Compare two colors or two palettes",
		Long: `Compare two colors or two palettes. 0 means identical.

A and B are single colors or palettes written as colors separated by
spaces or semicolons, e.g. "0D39B6 5EA1EB". Two single colors are compared
by RGB distance; anything else is compared by the color trend of each
palette.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pa, e := parsePalette(args[0])
			if e != nil {
				return e
			}
			pb, e := parsePalette(args[1])
			if e != nil {
				return e
			}

			var s float64
			if pa.Len() == 1 && pb.Len() == 1 {
				s = pa.At(0).Similarity(pb.At(0))
			} else if s, e = pa.Similarity(pb); e != nil {
				return e
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%.5f\n", s)
			return nil
		},
	}
}
