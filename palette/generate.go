package palette

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/mmuldo/paleta/color"
)

// DefaultSize is the palette size used when Options.Size is zero.
const DefaultSize = 5

// analogousStep is the hue distance between neighbours in an analogous scheme.
const analogousStep = 20

// ErrExhausted is returned when a scheme runs out of distinct, in-range
// colors before reaching the requested size.
var ErrExhausted = errors.New("no more colors in scheme")

// Scheme selects a generation algorithm.
type Scheme int

const (
	Shades Scheme = iota
	Analogous
	Monochromatic
	Complementary
	Triad
	Tetrad
	SplitComplement
	Random
	Image
)

var schemeNames = [...]string{
	Shades:          "shades",
	Analogous:       "analogous",
	Monochromatic:   "monochromatic",
	Complementary:   "complementary",
	Triad:           "triad",
	Tetrad:          "tetrad",
	SplitComplement: "split_complement",
	Random:          "random",
	Image:           "image",
}

func (s Scheme) String() string {
	if s < 0 || int(s) >= len(schemeNames) {
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
	return schemeNames[s]
}

// ParseScheme returns the scheme called name. Dashes and underscores are
// interchangeable.
func ParseScheme(name string) (Scheme, error) {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for s, sn := range schemeNames {
		if sn == n {
			return Scheme(s), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown palette scheme %q (try shades, analogous, monochromatic, complementary, triad, tetrad, split_complement, random or image)", ErrArgument, name)
}

// Options configures Generate.
type Options struct {
	Scheme Scheme
	// From is the seed color. Every scheme except Random and Image needs one;
	// Random uses it as its first color when present.
	From *color.Color
	// Size is the number of colors to generate. Zero means DefaultSize.
	Size int
	// Image is the path read by the Image scheme.
	Image string
	// Extractor reads colors out of images. Without one the Image scheme
	// is unavailable.
	Extractor Extractor
	// Rand is the source for the Random scheme. Nil seeds one from the clock.
	Rand *rand.Rand
}

// Validate checks that o carries what its scheme needs.
func (o Options) Validate() error {
	if o.Scheme < 0 || int(o.Scheme) >= len(schemeNames) {
		return fmt.Errorf("%w: unknown palette scheme %v", ErrArgument, o.Scheme)
	}
	if o.Size < 0 {
		return fmt.Errorf("%w: palette size %d is negative", ErrArgument, o.Size)
	}

	switch o.Scheme {
	case Random:
	case Image:
		if o.Image == "" {
			return fmt.Errorf("%w: the image scheme needs an image path", ErrArgument)
		}
		if o.Extractor == nil {
			return ErrNoExtractor
		}
	default:
		if o.From == nil {
			return fmt.Errorf("%w: the %v scheme needs a seed color", ErrArgument, o.Scheme)
		}
	}
	return nil
}

// Generate builds a new palette as described by opts. The seed color itself
// is never modified; the palette holds a copy of it.
func Generate(opts Options) (*Palette, error) {
	if e := opts.Validate(); e != nil {
		return nil, e
	}
	n := opts.Size
	if n == 0 {
		n = DefaultSize
	}

	switch opts.Scheme {
	case Shades:
		return shades(opts.From, n)
	case Analogous:
		return analogous(opts.From, n)
	case Monochromatic:
		return monochromatic(opts.From, n)
	case Complementary:
		return complementary(opts.From, n)
	case Triad:
		return rotations(opts.From, n, 120, 120)
	case Tetrad:
		return rotations(opts.From, n, 90, 90, 90)
	case SplitComplement:
		return rotations(opts.From, n, 150, 60)
	case Random:
		return random(opts.From, n, opts.Rand)
	default:
		return fromImage(opts.Extractor, opts.Image, n)
	}
}

//**schemes**//

func shades(seed *color.Color, n int) (*Palette, error) {
	return oscillate(seed, n, seed.Lightness(), func(l float64) (*color.Color, error) {
		return color.FromHSL(seed.Hue(), seed.Saturation(), l)
	}, ByLightness)
}

func monochromatic(seed *color.Color, n int) (*Palette, error) {
	return oscillate(seed, n, seed.Saturation(), func(s float64) (*color.Color, error) {
		return color.FromHSL(seed.Hue(), s, seed.Lightness())
	}, BySaturation)
}

// oscillate steps one axis down from start by 100/n until the next step would
// fall below 0, then steps up from start again.
func oscillate(seed *color.Color, n int, start float64, at func(float64) (*color.Color, error), less Less) (*Palette, error) {
	p := &Palette{colors: []*color.Color{seed.Copy()}}
	step := float64(100 / n)
	v, down := start, true

	for p.Len() < n {
		if down && v-step < 0 {
			down, v = false, start
		}
		if down {
			v -= step
		} else {
			v += step
		}
		if v > 100 {
			return nil, fmt.Errorf("%d steps of %v from %v: %w", n, step, start, ErrExhausted)
		}

		c, e := at(v)
		if e != nil {
			return nil, e
		}
		p.colors = append(p.colors, c)
	}

	p.Sort(less)
	return p, nil
}

func analogous(seed *color.Color, n int) (*Palette, error) {
	p := &Palette{colors: []*color.Color{seed.Copy()}}
	below := n / 2
	above := n / 2
	if n%2 == 0 {
		above--
	}

	for i := 1; i <= below; i++ {
		if e := p.appendHSL(seed.Hue()-float64(i*analogousStep), seed.Saturation(), seed.Lightness()); e != nil {
			return nil, e
		}
	}
	for i := 1; i <= above; i++ {
		if e := p.appendHSL(seed.Hue()+float64(i*analogousStep), seed.Saturation(), seed.Lightness()); e != nil {
			return nil, e
		}
	}

	p.Sort(ByHue)
	return p, nil
}

func complementary(seed *color.Color, n int) (*Palette, error) {
	p := &Palette{colors: []*color.Color{seed.Copy(), seed.Complemented()}}
	return fill(p, seed, n)
}

// rotations seeds a palette with seed followed by colors whose hues each turn
// a further offset around the wheel, then fills it to size.
func rotations(seed *color.Color, n int, offsets ...float64) (*Palette, error) {
	p := &Palette{colors: []*color.Color{seed.Copy()}}
	hue := seed.Hue()
	for _, o := range offsets {
		hue += o
		if e := p.appendHSL(hue, seed.Saturation(), seed.Lightness()); e != nil {
			return nil, e
		}
	}
	return fill(p, seed, n)
}

func random(seed *color.Color, n int, r *rand.Rand) (*Palette, error) {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	p := &Palette{}
	if seed != nil {
		p.colors = append(p.colors, seed.Copy())
	}
	for p.Len() < n {
		c, e := color.FromRGB(float64(r.Intn(256)), float64(r.Intn(256)), float64(r.Intn(256)))
		if e != nil {
			return nil, e
		}
		p.colors = append(p.colors, c)
	}
	return p, nil
}

// fill grows p to n colors by cycling through the hues already in p. Every
// second color moves saturation away from the seed's, alternately above and
// below it, each time one step further than the last move in that
// direction. Colors already in p are skipped. ErrExhausted is returned once
// saturation cannot move and a full cycle of hues adds nothing.
func fill(p *Palette, seed *color.Color, n int) (*Palette, error) {
	if p.Len() >= n {
		p.colors = p.colors[:n]
		p.Sort(BySaturation)
		return p, nil
	}

	hues := make([]float64, p.Len())
	for i, c := range p.colors {
		hues[i] = c.Hue()
	}

	step := float64(100 / n)
	base := seed.Saturation()
	ugap, dgap := step, step
	saturation := base
	raise := true
	// above 100 colors the step rounds down to 0 and saturation cannot move
	exhausted := step == 0

	// once saturation can no longer move, a full cycle without a new color
	// means there are none left
	stale := 0
	for i := 0; p.Len() < n; i++ {
		if i%2 == 1 && !exhausted {
			canRaise := base+ugap < 100
			canLower := base-dgap >= 0
			switch {
			case canRaise && (raise || !canLower):
				saturation = base + ugap
				ugap += step
			case canLower:
				saturation = base - dgap
				dgap += step
			default:
				exhausted = true
			}
			raise = !raise
		}

		c, e := color.FromHSL(hues[i%len(hues)], saturation, seed.Lightness())
		if e != nil {
			return nil, e
		}
		if p.Include(c) {
			if exhausted {
				stale++
			}
			if stale > 2*len(hues) {
				return nil, fmt.Errorf("%d colors around %d hues: %w", n, len(hues), ErrExhausted)
			}
			continue
		}
		p.colors = append(p.colors, c)
		stale = 0
	}

	p.Sort(BySaturation)
	return p, nil
}

// appendHSL appends the color with the given components, wrapping the hue
// onto the wheel.
func (p *Palette) appendHSL(h, s, l float64) error {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	c, e := color.FromHSL(h, s, l)
	if e != nil {
		return e
	}
	p.colors = append(p.colors, c)
	return nil
}
