// Package palette groups colors into ordered palettes and generates color
// schemes from a single seed color.
package palette

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mmuldo/paleta/color"
)

// ErrArgument is returned for a missing color or a bad generation option.
var ErrArgument = errors.New("invalid argument")

// Palette is an ordered list of colors. Colors appended one at a time may
// repeat; colors merged in from another palette are added only when absent.
//
// A Palette owns its colors and is not safe for concurrent mutation.
type Palette struct {
	colors []*color.Color
}

// Less orders two colors.
type Less func(a, b *color.Color) bool

// ByHue, BySaturation and ByLightness order colors along one HSL axis.
var (
	ByHue        Less = func(a, b *color.Color) bool { return a.Hue() < b.Hue() }
	BySaturation Less = func(a, b *color.Color) bool { return a.Saturation() < b.Saturation() }
	ByLightness  Less = func(a, b *color.Color) bool { return a.Lightness() < b.Lightness() }
)

// New returns a palette holding colors in the order given.
func New(colors ...*color.Color) (*Palette, error) {
	p := &Palette{colors: make([]*color.Color, 0, len(colors))}
	for _, c := range colors {
		if e := p.Append(c); e != nil {
			return nil, e
		}
	}
	return p, nil
}

// Len returns the number of colors in p.
func (p *Palette) Len() int { return len(p.colors) }

// At returns the color at i, counting from the end when i is negative, or nil
// when there is no such color.
func (p *Palette) At(i int) *color.Color {
	if i, ok := p.index(i); ok {
		return p.colors[i]
	}
	return nil
}

// Colors returns the colors of p in order. The slice is a copy; the colors
// are not.
func (p *Palette) Colors() []*color.Color {
	return append([]*color.Color(nil), p.colors...)
}

// Append adds c to the end of p.
func (p *Palette) Append(c *color.Color) error {
	if c == nil {
		return fmt.Errorf("append to palette: %w: not a color", ErrArgument)
	}
	p.colors = append(p.colors, c)
	return nil
}

// Merge appends copies of the colors of other that p does not already
// include. Later changes to p leave other alone.
func (p *Palette) Merge(other *Palette) {
	for _, c := range other.colors {
		if !p.Include(c) {
			p.colors = append(p.colors, c.Copy())
		}
	}
}

// Include reports whether p holds a color equal to c.
func (p *Palette) Include(c *color.Color) bool {
	return p.Index(c) >= 0
}

// Index returns the position of the first color equal to c, or -1.
func (p *Palette) Index(c *color.Color) int {
	for i, x := range p.colors {
		if x.Equal(c) {
			return i
		}
	}
	return -1
}

// Pop removes and returns the last color, or nil if p is empty.
func (p *Palette) Pop() *color.Color {
	if len(p.colors) == 0 {
		return nil
	}
	c := p.colors[len(p.colors)-1]
	p.colors = p.colors[:len(p.colors)-1]
	return c
}

// Delete removes and returns the color at i, or returns nil when there is no
// such color.
func (p *Palette) Delete(i int) *color.Color {
	i, ok := p.index(i)
	if !ok {
		return nil
	}
	c := p.colors[i]
	p.colors = append(p.colors[:i], p.colors[i+1:]...)
	return c
}

// Lighten lightens every color in p by pct.
func (p *Palette) Lighten(pct float64) {
	for _, c := range p.colors {
		c.Lighten(pct)
	}
}

// Darken darkens every color in p by pct.
func (p *Palette) Darken(pct float64) {
	for _, c := range p.colors {
		c.Darken(pct)
	}
}

// Invert inverts every color in p.
func (p *Palette) Invert() {
	for _, c := range p.colors {
		c.Invert()
	}
}

// Sort orders p in place. Equal colors keep their relative order.
func (p *Palette) Sort(less Less) {
	sort.SliceStable(p.colors, func(i, j int) bool {
		return less(p.colors[i], p.colors[j])
	})
}

// Sorted returns a sorted copy of p, leaving p untouched.
func (p *Palette) Sorted(less Less) *Palette {
	q := p.Copy()
	q.Sort(less)
	return q
}

// Copy returns a palette holding copies of the colors of p.
func (p *Palette) Copy() *Palette {
	q := &Palette{colors: make([]*color.Color, len(p.colors))}
	for i, c := range p.colors {
		q.colors[i] = c.Copy()
	}
	return q
}

// Hexes returns the hex value of each color in order.
func (p *Palette) Hexes() []string {
	hexes := make([]string, len(p.colors))
	for i, c := range p.colors {
		hexes[i] = c.Hex()
	}
	return hexes
}

func (p *Palette) String() string {
	return "[" + strings.Join(p.Hexes(), " ") + "]"
}

func (p *Palette) index(i int) (int, bool) {
	if i < 0 {
		i += len(p.colors)
	}
	return i, i >= 0 && i < len(p.colors)
}
