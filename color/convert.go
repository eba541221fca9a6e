package color

import (
	"fmt"
	"math"
)

// updateHSL derives hue, saturation and lightness from red, green and blue.
func (c *Color) updateHSL() {
	r, g, b := c.red/255, c.green/255, c.blue/255
	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))
	delta := hi - lo
	l := (hi + lo) / 2

	s := 0.0
	if l != 0 && l != 1 {
		s = delta / (1 - math.Abs(2*l-1))
	}

	h := 0.0
	if delta != 0 {
		switch hi {
		case r:
			h = mod((g-b)/delta, 6)
		case g:
			h = (b-r)/delta + 2
		default:
			h = (r-g)/delta + 4
		}
		h *= 60
		if h < 0 {
			h += 360
		}
		if h >= 360 {
			h -= 360
		}
	}

	c.hue = h
	c.saturation = clamp(s*100, 0, 100)
	c.lightness = clamp(l*100, 0, 100)
}

// updateRGB derives red, green and blue from hue, saturation and lightness.
// The components are left unrounded.
func (c *Color) updateRGB() {
	h := c.hue / 60
	s := c.saturation / 100
	l := c.lightness / 100

	d1 := (1 - math.Abs(2*l-1)) * s
	d2 := d1 * (1 - math.Abs(mod(h, 2)-1))
	d3 := l - d1/2

	var r, g, b float64
	switch int(mod(math.Floor(h), 6)) {
	case 0:
		r, g, b = d1, d2, 0
	case 1:
		r, g, b = d2, d1, 0
	case 2:
		r, g, b = 0, d1, d2
	case 3:
		r, g, b = 0, d2, d1
	case 4:
		r, g, b = d2, 0, d1
	case 5:
		r, g, b = d1, 0, d2
	}

	c.red = clamp(255*(r+d3), 0, 255)
	c.green = clamp(255*(g+d3), 0, 255)
	c.blue = clamp(255*(b+d3), 0, 255)
}

// updateHex truncates each component and writes it as two uppercase digits.
func (c *Color) updateHex() {
	c.hex = fmt.Sprintf("%02X%02X%02X", int(c.red), int(c.green), int(c.blue))
}

// mod is the floored modulo, so the result has the sign of m.
func mod(v, m float64) float64 {
	r := math.Mod(v, m)
	if r < 0 {
		r += m
	}
	return r
}
