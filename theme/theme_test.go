package theme

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmuldo/paleta/color"
	"github.com/mmuldo/paleta/palette"
)

func testPalette(t *testing.T) *palette.Palette {
	t.Helper()
	var cs []*color.Color
	for _, hex := range []string{"000000", "FFFFFF", "FF0000", "0066CC"} {
		c, e := color.FromHex(hex)
		require.NoError(t, e)
		cs = append(cs, c)
	}
	p, e := palette.New(cs...)
	require.NoError(t, e)
	return p
}

func TestDelegate(t *testing.T) {
	roles := Delegate(testPalette(t))

	var hexes []string
	for _, c := range roles {
		hexes = append(hexes, c.Hex())
	}
	assert.Equal(t, []string{"000000", "0066CC", "FFFFFF", "FF0000"}, hexes)
}

func TestCreate(t *testing.T) {
	th, e := Create(testPalette(t), map[string]interface{}{"color3": "#123456", "font": "mono"})
	require.NoError(t, e)

	assert.Equal(t, "#000000", th["color0"])
	assert.Equal(t, "#0066cc", th["color1"])
	assert.Equal(t, "#ffffff", th["color2"])
	assert.Equal(t, "#123456", th["color3"])
	assert.Equal(t, "mono", th["font"])
	assert.Equal(t, "#000000", th["background"])
	assert.Equal(t, "#ffffff", th["foreground"])
	assert.Equal(t, 1.0, th["transparency"])
	assert.Equal(t, []string{"color0", "color1", "color2", "color3"}, th.Roles())
}

func TestCreate_Empty(t *testing.T) {
	p, _ := palette.New()
	_, e := Create(p, nil)
	assert.ErrorIs(t, e, palette.ErrArgument)
}

func TestRoles(t *testing.T) {
	th := Theme{"color10": "", "color2": "", "color01": "", "colorful": "", "background": ""}
	assert.Equal(t, []string{"color2", "color10"}, th.Roles())
}

func TestRenderString(t *testing.T) {
	th, e := Create(testPalette(t), nil)
	require.NoError(t, e)

	var buf bytes.Buffer
	require.NoError(t, RenderString(&buf, DefaultTemplate, th))

	assert.Equal(t, `[colors]
foreground = #ffffff
background = #000000
color0 = #000000
color1 = #0066cc
color2 = #ffffff
color3 = #ff0000
`, buf.String())
}

func TestRender(t *testing.T) {
	th, e := Create(testPalette(t), map[string]interface{}{"name": "test"})
	require.NoError(t, e)

	tpl := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(tpl, []byte("{{ name }}: {{ background }} {{ color3 }}"), 0644))

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, tpl, th))
	assert.Equal(t, "test: #000000 #ff0000", buf.String())

	assert.Error(t, Render(&buf, filepath.Join(t.TempDir(), "missing"), th))
}

func TestLab(t *testing.T) {
	black, _ := color.FromHex("000000")
	white, _ := color.FromHex("FFFFFF")

	assert.InDelta(t, 0, Lab(black).L(), 0.5)
	assert.InDelta(t, 100, Lab(white).L(), 0.5)
}

func TestSwatch(t *testing.T) {
	c, _ := color.FromRGB(1, 2, 3)
	assert.Equal(t, "\033[38;2;1;2;3mx\033[0m", Swatch(c, "x"))
}
