package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmuldo/paleta/image"
)

func newSwatchCmd(a *app) *cobra.Command {
	var (
		f    schemeFlags
		out  string
		tile int
	)

	swatchCmd := &cobra.Command{
		Use:   "swatch [SEED]",
		Short: "Draw a generated palette as an image",
		Long: `Draw a generated palette as an image of labelled tiles, four to a row.

The palette is generated as by the generate command. The image format
follows the extension of --out.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, e := f.generate(a, cmd, args)
			if e != nil {
				return e
			}

			img, e := image.Swatch(p.Colors(), tile)
			if e != nil {
				return e
			}
			if e := image.Save(img, out); e != nil {
				return e
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	f.register(swatchCmd)
	swatchCmd.Flags().StringVarP(&out, "out", "o", "palette.png", "image file to write")
	swatchCmd.Flags().IntVar(&tile, "tile", image.DefaultTileSize, "side of each tile, in pixels")

	return swatchCmd
}
