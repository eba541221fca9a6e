package cmd

import (
	"github.com/spf13/cobra"
)

func newColorCmd(a *app) *cobra.Command {
	var (
		lighten, darken                float64
		invert, desaturate, complement bool
	)

	colorCmd := &cobra.Command{
		Use:   "color COLOR",
		Short: "Show a color as hex, RGB and HSL",
		Long: `Show a color as hex, RGB and HSL, optionally after changing it.

COLOR is hex (5EA1EB), RGB components (94,161,235) or HSL components
(hsl:211,78,64). Changes apply in the order lighten, darken, invert,
desaturate, complement.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, e := parseColor(args[0])
			if e != nil {
				return e
			}

			if lighten != 0 {
				c.Lighten(lighten)
			}
			if darken != 0 {
				c.Darken(darken)
			}
			if invert {
				c.Invert()
			}
			if desaturate {
				c.Desaturate()
			}
			if complement {
				c.Complement()
			}

			printColor(cmd.OutOrStdout(), c, a.v.GetBool("swatch"))
			return nil
		},
	}

	colorCmd.Flags().Float64Var(&lighten, "lighten", 0, "raise lightness by this many percent")
	colorCmd.Flags().Float64Var(&darken, "darken", 0, "lower lightness by this many percent")
	colorCmd.Flags().BoolVar(&invert, "invert", false, "invert the color")
	colorCmd.Flags().BoolVar(&desaturate, "desaturate", false, "drop saturation to zero")
	colorCmd.Flags().BoolVar(&complement, "complement", false, "rotate the hue by 180 degrees")

	return colorCmd
}
