// Package theme turns a palette into a desktop theme: a set of color roles
// (color0, color1, ...) plus options such as background and foreground,
// ready to be rendered into an application's config template.
package theme

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/flosch/pongo2"
	"github.com/jkl1337/go-chromath"
	"github.com/muesli/termenv"

	"github.com/mmuldo/paleta/color"
	"github.com/mmuldo/paleta/palette"
)

var (
	// for RGB-to-Lab conversion
	targetIlluminant = &chromath.IlluminantRefD50
	rgb2Xyz          = chromath.NewRGBTransformer(
		&chromath.SpaceSRGB,
		&chromath.AdaptationBradford,
		targetIlluminant,
		&chromath.Scaler8bClamping,
		1.0,
		nil,
	)
	lab2Xyz = chromath.NewLabTransformer(targetIlluminant)
)

// DefaultTemplate renders a theme as a termite [colors] section.
const DefaultTemplate = `[colors]
foreground = {{ foreground }}
background = {{ background }}
{% for c in colors %}{{ c.role }} = {{ c.value }}
{% endfor %}`

// Theme represents a desktop theme.
type Theme map[string]interface{}

// Roles returns the colorN keys of t in numeric order.
func (t Theme) Roles() []string {
	var n []int
	for k := range t {
		var i int
		if _, e := fmt.Sscanf(k, "color%d", &i); e == nil && k == "color"+strconv.Itoa(i) {
			n = append(n, i)
		}
	}
	sort.Ints(n)

	roles := make([]string, len(n))
	for i, v := range n {
		roles[i] = "color" + strconv.Itoa(v)
	}
	return roles
}

//**exported functions**//

// Create creates a new desktop theme based on a provided palette and other
// options. Options override the generated roles.
func Create(p *palette.Palette, opts map[string]interface{}) (Theme, error) {
	if p.Len() == 0 {
		return nil, fmt.Errorf("%w: cannot create a theme from an empty palette", palette.ErrArgument)
	}
	t := make(Theme)

	for i, c := range Delegate(p) {
		t["color"+strconv.Itoa(i)] = Hex(c)
	}

	for k, v := range opts {
		t[k] = v
	}

	setDefaults(t, p.Len()/2)

	return t, nil
}

// Delegate assigns roles to the colors of p. The darker half of the palette
// takes the low roles and the lighter half the high ones; within each half
// colors keep their palette order, which for extracted palettes is their
// prevalence.
func Delegate(p *palette.Palette) []*color.Color {
	cs := p.Colors()

	// group colors into darks and lights
	byDarkness := make([]int, len(cs))
	for i := range byDarkness {
		byDarkness[i] = i
	}
	sort.SliceStable(byDarkness, func(i, j int) bool {
		return Lab(cs[byDarkness[i]]).L() < Lab(cs[byDarkness[j]]).L()
	})
	dark := make([]bool, len(cs))
	for _, i := range byDarkness[:len(cs)/2] {
		dark[i] = true
	}

	roles := make([]*color.Color, 0, len(cs))
	for i, c := range cs {
		if dark[i] {
			roles = append(roles, c)
		}
	}
	for i, c := range cs {
		if !dark[i] {
			roles = append(roles, c)
		}
	}
	return roles
}

// Render executes the pongo2 template at tplPath with t and writes the
// result to w. The template sees every key of t plus "colors", the color
// roles in order, each with a "role" and a "value".
func Render(w io.Writer, tplPath string, t Theme) error {
	tpl, e := pongo2.FromFile(tplPath)
	if e != nil {
		return e
	}
	return execute(w, tpl, t)
}

// RenderString is Render for a template held in memory.
func RenderString(w io.Writer, tpl string, t Theme) error {
	compiled, e := pongo2.FromString(tpl)
	if e != nil {
		return e
	}
	return execute(w, compiled, t)
}

// Lab converts c to CIE L*a*b* under D50.
func Lab(c *color.Color) chromath.Lab {
	r, g, b := c.RGB255()
	xyz := rgb2Xyz.Convert(chromath.RGB{float64(r), float64(g), float64(b)})
	return lab2Xyz.Invert(xyz)
}

// Hex formats c the way terminal configs expect it, e.g. #5ea1eb.
func Hex(c *color.Color) string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Swatch returns s printed in c on a true color terminal.
func Swatch(c *color.Color, s string) string {
	return termenv.String(s).Foreground(termenv.TrueColor.Color(Hex(c))).String()
}

//**helper functions**//

func execute(w io.Writer, tpl *pongo2.Template, t Theme) error {
	ctxt := pongo2.Context{}
	for k, v := range t {
		ctxt[k] = v
	}
	var colors []map[string]interface{}
	for _, r := range t.Roles() {
		colors = append(colors, map[string]interface{}{"role": r, "value": t[r]})
	}
	ctxt["colors"] = colors

	return tpl.ExecuteWriter(ctxt, w)
}

// the first light role, right after the darks, is the foreground
func setDefaults(t Theme, darks int) {
	if _, ok := t["background"]; !ok {
		t["background"] = t["color0"]
	}

	if _, ok := t["transparency"]; !ok {
		t["transparency"] = 1.0
	}

	if _, ok := t["foreground"]; !ok {
		t["foreground"] = t["color"+strconv.Itoa(darks)]
	}
}
