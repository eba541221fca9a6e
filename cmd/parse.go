package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mmuldo/paleta/color"
	"github.com/mmuldo/paleta/palette"
	"github.com/mmuldo/paleta/theme"
)

// parseColor reads a color written as hex ("5EA1EB", "#5ea1eb"), as RGB
// components ("94,161,235" or "rgb:94,161,235") or as HSL components
// ("hsl:211,78,64").
func parseColor(s string) (*color.Color, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "hsl:"):
		v, e := components(strings.TrimPrefix(s, "hsl:"))
		if e != nil {
			return nil, e
		}
		return color.FromHSL(v[0], v[1], v[2])
	case strings.HasPrefix(s, "rgb:"):
		s = strings.TrimPrefix(s, "rgb:")
		fallthrough
	case strings.Contains(s, ","):
		v, e := components(s)
		if e != nil {
			return nil, e
		}
		return color.FromRGB(v[0], v[1], v[2])
	default:
		return color.FromHex(s)
	}
}

func components(s string) ([3]float64, error) {
	var v [3]float64
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return v, fmt.Errorf("%w: %q needs three components", palette.ErrArgument, s)
	}
	for i, p := range parts {
		f, e := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if e != nil {
			return v, fmt.Errorf("%w: component %q of %q is not a number", palette.ErrArgument, p, s)
		}
		v[i] = f
	}
	return v, nil
}

// parsePalette reads a palette written as colors separated by spaces or
// semicolons, e.g. "0D39B6 5EA1EB" or "13,57,182;94,161,235".
func parsePalette(s string) (*palette.Palette, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ';' || r == ' '
	})
	p, _ := palette.New()
	for _, f := range fields {
		c, e := parseColor(f)
		if e != nil {
			return nil, e
		}
		if e := p.Append(c); e != nil {
			return nil, e
		}
	}
	return p, nil
}

func printColor(w io.Writer, c *color.Color, swatch bool) {
	line := fmt.Sprintf("%s  rgb(%d, %d, %d)  hsl(%.1f, %.1f%%, %.1f%%)",
		c.Hex(), int(c.Red()), int(c.Green()), int(c.Blue()),
		c.Hue(), c.Saturation(), c.Lightness())
	if swatch {
		line = theme.Swatch(c, "██") + " " + line
	}
	fmt.Fprintln(w, line)
}

func printPalette(w io.Writer, p *palette.Palette, swatch bool) {
	for _, c := range p.Colors() {
		printColor(w, c, swatch)
	}
}
