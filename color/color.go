// Package color provides a color value that keeps its RGB, HSL and
// hexadecimal representations in sync.
package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mmuldo/paleta/calc"
)

// DefaultPercent is the step used by Lighten and Darken when callers have no
// better value.
const DefaultPercent = 5

var (
	// ErrRange is returned when a component is outside its bounds.
	ErrRange = errors.New("component range exceeded")
	// ErrFormat is returned for a malformed hex string.
	ErrFormat = errors.New("invalid hex string")
)

// maxDistance is the distance between black and white in RGB space.
var maxDistance = math.Sqrt(3 * 255 * 255)

// Color is a single color. Red, green and blue lie in [0,255], hue in
// [0,360) and saturation and lightness in [0,100]. Every mutator leaves all
// three representations describing the same color before it returns.
//
// A Color is not safe for concurrent mutation.
type Color struct {
	red, green, blue           float64
	hue, saturation, lightness float64
	hex                        string
}

// New returns black.
func New() *Color {
	c := &Color{}
	c.updateHex()
	return c
}

// FromRGB returns the color with the given red, green and blue components.
func FromRGB(r, g, b float64) (*Color, error) {
	c := &Color{}
	if e := c.SetRGB(r, g, b); e != nil {
		return nil, e
	}
	return c, nil
}

// FromHSL returns the color with the given hue, saturation and lightness.
func FromHSL(h, s, l float64) (*Color, error) {
	c := &Color{}
	if e := c.SetHSL(h, s, l); e != nil {
		return nil, e
	}
	return c, nil
}

// FromHex parses a 6 digit hex string such as "5EA1EB" or "#5ea1eb". A
// leading # is allowed and not counted as a digit, so "#5EA1EB" is valid
// while "5EA1EB0" is not.
func FromHex(hex string) (*Color, error) {
	c := &Color{}
	if e := c.SetHex(hex); e != nil {
		return nil, e
	}
	return c, nil
}

// FromColor returns an independent copy of c.
func FromColor(c *Color) *Color {
	d := *c
	return &d
}

// Copy is shorthand for FromColor(c).
func (c *Color) Copy() *Color {
	return FromColor(c)
}

func (c *Color) Red() float64        { return c.red }
func (c *Color) Green() float64      { return c.green }
func (c *Color) Blue() float64       { return c.blue }
func (c *Color) Hue() float64        { return c.hue }
func (c *Color) Saturation() float64 { return c.saturation }
func (c *Color) Lightness() float64  { return c.lightness }

// Hex returns the uppercase, zero padded RRGGBB form of c.
func (c *Color) Hex() string { return c.hex }

// String implements fmt.Stringer.
func (c *Color) String() string { return c.hex }

// RGB255 returns the components truncated to bytes.
func (c *Color) RGB255() (r, g, b uint8) {
	return uint8(c.red), uint8(c.green), uint8(c.blue)
}

// RGBA implements image/color.Color so a *Color can be drawn directly.
func (c *Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.RGB255()
	r = uint32(r8)
	r |= r << 8
	g = uint32(g8)
	g |= g << 8
	b = uint32(b8)
	b |= b << 8
	return r, g, b, 0xffff
}

//**setters**//

// SetRed, SetGreen and SetBlue replace one RGB component, as SetRGB does.
func (c *Color) SetRed(v float64) error {
	return c.SetRGB(v, c.green, c.blue)
}

func (c *Color) SetGreen(v float64) error {
	return c.SetRGB(c.red, v, c.blue)
}

func (c *Color) SetBlue(v float64) error {
	return c.SetRGB(c.red, c.green, v)
}

// SetRGB replaces all three RGB components at once. Nothing changes if any of
// them is out of range.
func (c *Color) SetRGB(r, g, b float64) error {
	for _, v := range [...]float64{r, g, b} {
		if e := validate("rgb component", v, 0, 255, true); e != nil {
			return e
		}
	}
	c.red, c.green, c.blue = r, g, b
	c.updateHSL()
	c.updateHex()
	return nil
}

// SetHue, SetSaturation and SetLightness replace one HSL component, as
// SetHSL does.
func (c *Color) SetHue(v float64) error {
	return c.SetHSL(v, c.saturation, c.lightness)
}

func (c *Color) SetSaturation(v float64) error {
	return c.SetHSL(c.hue, v, c.lightness)
}

func (c *Color) SetLightness(v float64) error {
	return c.SetHSL(c.hue, c.saturation, v)
}

// SetHSL replaces hue, saturation and lightness at once. Nothing changes if
// any of them is out of range.
func (c *Color) SetHSL(h, s, l float64) error {
	if e := validate("hue", h, 0, 360, false); e != nil {
		return e
	}
	if e := validate("saturation", s, 0, 100, true); e != nil {
		return e
	}
	if e := validate("lightness", l, 0, 100, true); e != nil {
		return e
	}
	c.hue, c.saturation, c.lightness = h, s, l
	c.updateRGB()
	c.updateHex()
	return nil
}

// SetHex replaces the color with the one encoded by hex. RGB is taken straight
// from the digits.
func (c *Color) SetHex(hex string) error {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return fmt.Errorf("%q has %d digits: %w", hex, len(digits), ErrFormat)
	}
	v, e := strconv.ParseUint(digits, 16, 32)
	if e != nil {
		return fmt.Errorf("%q: %w", hex, ErrFormat)
	}
	c.red = float64(v >> 16 & 0xff)
	c.green = float64(v >> 8 & 0xff)
	c.blue = float64(v & 0xff)
	c.hex = strings.ToUpper(digits)
	c.updateHSL()
	return nil
}

//**operations**//

// Lighten raises lightness by pct, stopping at 100. A NaN pct changes
// nothing.
func (c *Color) Lighten(pct float64) {
	if math.IsNaN(pct) {
		return
	}
	c.lightness = clamp(c.lightness+pct, 0, 100)
	c.updateRGB()
	c.updateHex()
}

// Lightened returns a lightened copy of c.
func (c *Color) Lightened(pct float64) *Color {
	d := c.Copy()
	d.Lighten(pct)
	return d
}

// Darken lowers lightness by pct, stopping at 0. A NaN pct changes nothing.
func (c *Color) Darken(pct float64) {
	if math.IsNaN(pct) {
		return
	}
	c.lightness = clamp(c.lightness-pct, 0, 100)
	c.updateRGB()
	c.updateHex()
}

// Darkened returns a darkened copy of c.
func (c *Color) Darkened(pct float64) *Color {
	d := c.Copy()
	d.Darken(pct)
	return d
}

// Invert replaces each RGB component with 255 minus itself.
func (c *Color) Invert() {
	c.red, c.green, c.blue = 255-c.red, 255-c.green, 255-c.blue
	c.updateHSL()
	c.updateHex()
}

// Inverted returns an inverted copy of c.
func (c *Color) Inverted() *Color {
	d := c.Copy()
	d.Invert()
	return d
}

// Desaturate drops saturation to 0, leaving the gray of the same lightness.
func (c *Color) Desaturate() {
	c.saturation = 0
	c.updateRGB()
	c.updateHex()
}

// Desaturated returns a desaturated copy of c.
func (c *Color) Desaturated() *Color {
	d := c.Copy()
	d.Desaturate()
	return d
}

// Complement rotates the hue by 180 degrees.
func (c *Color) Complement() {
	c.hue = math.Mod(c.hue+180, 360)
	c.updateRGB()
	c.updateHex()
}

// Complemented returns the complement of c as a new color.
func (c *Color) Complemented() *Color {
	d := c.Copy()
	d.Complement()
	return d
}

// Similarity returns the RGB distance between c and other scaled to [0,1]:
// 0 for identical colors, 1 for black against white.
func (c *Color) Similarity(other *Color) float64 {
	return calc.Distance(c.axes(), other.axes()) / maxDistance
}

// Equal reports whether c and other have the same hex value.
func (c *Color) Equal(other *Color) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.hex == other.hex
}

func (c *Color) axes() calc.Axes {
	return calc.Axes{X: c.red, Y: c.green, Z: c.blue}
}

//**helper functions**//

func validate(name string, v, lo, hi float64, inclusive bool) error {
	if math.IsNaN(v) || v < lo || v > hi || (!inclusive && v == hi) {
		return fmt.Errorf("%s %v not in %v..%v: %w", name, v, lo, hi, ErrRange)
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
