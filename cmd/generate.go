package cmd

import (
	"math/rand"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mmuldo/paleta/palette"
)

// schemeFlags are the palette generation flags shared by generate and theme.
type schemeFlags struct {
	scheme   string
	size     int
	image    string
	randSeed int64
}

func (f *schemeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.scheme, "scheme", "s", palette.Shades.String(), "shades, analogous, monochromatic, complementary, triad, tetrad, split_complement, random or image")
	cmd.Flags().IntVarP(&f.size, "size", "n", palette.DefaultSize, "number of colors")
	cmd.Flags().StringVarP(&f.image, "image", "i", "", "image to extract colors from (implies --scheme image)")
	cmd.Flags().Int64Var(&f.randSeed, "rand-seed", 0, "seed for the random scheme (0 uses the clock)")
}

// options resolves the flags, falling back to the config file for those the
// user did not set.
func (f *schemeFlags) options(a *app, cmd *cobra.Command, args []string) (palette.Options, error) {
	var opts palette.Options

	name := f.scheme
	if !cmd.Flags().Changed("scheme") {
		name = a.v.GetString("scheme")
	}
	if f.image != "" {
		name = palette.Image.String()
	}
	s, e := palette.ParseScheme(name)
	if e != nil {
		return opts, e
	}

	opts.Scheme = s
	opts.Size = f.size
	if !cmd.Flags().Changed("size") {
		opts.Size = a.v.GetInt("size")
	}
	opts.Image = f.image
	opts.Extractor = a.extractor()
	if f.randSeed != 0 {
		opts.Rand = rand.New(rand.NewSource(f.randSeed))
	}

	if len(args) > 0 {
		if opts.From, e = parseColor(args[0]); e != nil {
			return opts, e
		}
	}
	return opts, nil
}

func (f *schemeFlags) generate(a *app, cmd *cobra.Command, args []string) (*palette.Palette, error) {
	opts, e := f.options(a, cmd, args)
	if e != nil {
		return nil, e
	}

	a.logger.Debug("generating palette",
		zap.Stringer("scheme", opts.Scheme),
		zap.Int("size", opts.Size),
		zap.Stringer("from", opts.From),
		zap.String("image", opts.Image),
	)
	return palette.Generate(opts)
}

func newGenerateCmd(a *app) *cobra.Command {
	var f schemeFlags

	generateCmd := &cobra.Command{
		Use:   "generate [SEED]",
		Short: "Generate a palette from a seed color or an image",
		Long: `Generate a palette from a seed color or an image.

SEED is written as for the color command. It is required for every scheme
except random, where it becomes the first color, and image.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, e := f.generate(a, cmd, args)
			if e != nil {
				return e
			}
			printPalette(cmd.OutOrStdout(), p, a.v.GetBool("swatch"))
			return nil
		},
	}
	f.register(generateCmd)

	return generateCmd
}
