package cmd

import (
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/mmuldo/paleta/theme"
)

func newThemeCmd(a *app) *cobra.Command {
	var (
		f        schemeFlags
		template string
		set      map[string]string
	)

	themeCmd := &cobra.Command{
		Use:   "theme [SEED]",
		Short: "Render a terminal theme from a generated palette",
		Long: `Render a terminal theme from a generated palette.

The palette is generated as by the generate command. Its darker half
becomes color0..colorN/2-1 and its lighter half the rest. The theme is
rendered through a pongo2 template (termite's [colors] section unless
--template or the "template" config key names one) and written to stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, e := f.generate(a, cmd, args)
			if e != nil {
				return e
			}

			opts := make(map[string]interface{}, len(set))
			for k, v := range set {
				opts[k] = v
			}
			t, e := theme.Create(p, opts)
			if e != nil {
				return e
			}

			if !cmd.Flags().Changed("template") {
				template = a.v.GetString("template")
			}
			if template == "" {
				return theme.RenderString(cmd.OutOrStdout(), theme.DefaultTemplate, t)
			}
			path, e := homedir.Expand(template)
			if e != nil {
				return e
			}
			return theme.Render(cmd.OutOrStdout(), path, t)
		},
	}
	f.register(themeCmd)
	themeCmd.Flags().StringVarP(&template, "template", "t", "", "pongo2 template to render")
	themeCmd.Flags().StringToStringVar(&set, "set", nil, "extra theme values, e.g. --set font=mono")

	return themeCmd
}
