package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mmuldo/paleta/palette"
)

func newExtractCmd(a *app) *cobra.Command {
	var size int

	extractCmd := &cobra.Command{
		Use:   "extract IMAGE",
		Short: "Extract the dominant colors of an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("size") {
				size = a.v.GetInt("size")
			}

			p, e := palette.Generate(palette.Options{
				Scheme:    palette.Image,
				Image:     args[0],
				Size:      size,
				Extractor: a.extractor(),
			})
			if e != nil {
				return e
			}

			printPalette(cmd.OutOrStdout(), p, a.v.GetBool("swatch"))
			return nil
		},
	}
	extractCmd.Flags().IntVarP(&size, "size", "n", palette.DefaultSize, "number of colors")

	return extractCmd
}
