package palette

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmuldo/paleta/color"
)

func seed(t *testing.T, hex string) *color.Color {
	t.Helper()
	c, e := color.FromHex(hex)
	require.NoError(t, e)
	return c
}

func hues(p *Palette) []float64 {
	var v []float64
	for _, c := range p.Colors() {
		v = append(v, c.Hue())
	}
	return v
}

func saturations(p *Palette) []float64 {
	var v []float64
	for _, c := range p.Colors() {
		v = append(v, c.Saturation())
	}
	return v
}

func lightnesses(p *Palette) []float64 {
	var v []float64
	for _, c := range p.Colors() {
		v = append(v, c.Lightness())
	}
	return v
}

func assertAll(t *testing.T, want []float64, got []float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9, "index %d", i)
	}
}

func TestParseScheme(t *testing.T) {
	tests := []struct {
		name string
		want Scheme
	}{
		{"shades", Shades},
		{"Analogous", Analogous},
		{"monochromatic", Monochromatic},
		{"complementary", Complementary},
		{"triad", Triad},
		{"tetrad", Tetrad},
		{"split_complement", SplitComplement},
		{"split-complement", SplitComplement},
		{"random", Random},
		{" image ", Image},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, e := ParseScheme(tt.name)
			require.NoError(t, e)
			assert.Equal(t, tt.want, s)
		})
	}

	_, e := ParseScheme("pastel")
	assert.ErrorIs(t, e, ErrArgument)

	assert.Equal(t, "split_complement", SplitComplement.String())
	assert.Equal(t, "Scheme(42)", Scheme(42).String())
}

func TestOptionsValidate(t *testing.T) {
	c := seed(t, "0066CC")
	x := ExtractorFunc(func(string, int) ([][3]uint8, error) { return nil, nil })

	tests := []struct {
		name string
		opts Options
		want error
	}{
		{"seeded", Options{Scheme: Triad, From: c}, nil},
		{"missing seed", Options{Scheme: Shades}, ErrArgument},
		{"random without seed", Options{Scheme: Random}, nil},
		{"negative size", Options{Scheme: Shades, From: c, Size: -1}, ErrArgument},
		{"unknown scheme", Options{Scheme: Scheme(99), From: c}, ErrArgument},
		{"image without path", Options{Scheme: Image, Extractor: x}, ErrArgument},
		{"image without extractor", Options{Scheme: Image, Image: "a.png"}, ErrNoExtractor},
		{"image", Options{Scheme: Image, Image: "a.png", Extractor: x}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := tt.opts.Validate()
			if tt.want == nil {
				assert.NoError(t, e)
				return
			}
			assert.ErrorIs(t, e, tt.want)

			_, e = Generate(tt.opts)
			assert.ErrorIs(t, e, tt.want)
		})
	}
}

func TestGenerate_Analogous(t *testing.T) {
	s := seed(t, "0066CC")

	p, e := Generate(Options{Scheme: Analogous, From: s, Size: 5})
	require.NoError(t, e)

	assertAll(t, []float64{170, 190, 210, 230, 250}, hues(p))
	for _, c := range p.Colors() {
		assert.Equal(t, s.Saturation(), c.Saturation())
		assert.Equal(t, s.Lightness(), c.Lightness())
	}
	assert.Equal(t, "0066CC", p.At(2).Hex())
}

func TestGenerate_AnalogousWraps(t *testing.T) {
	p, e := Generate(Options{Scheme: Analogous, From: seed(t, "FF0000"), Size: 4})
	require.NoError(t, e)

	assertAll(t, []float64{0, 20, 320, 340}, hues(p))
}

func TestGenerate_DefaultSize(t *testing.T) {
	p, e := Generate(Options{Scheme: Analogous, From: seed(t, "0066CC")})
	require.NoError(t, e)
	assert.Equal(t, DefaultSize, p.Len())
}

func TestGenerate_Shades(t *testing.T) {
	s := seed(t, "0066CC")

	p, e := Generate(Options{Scheme: Shades, From: s, Size: 5})
	require.NoError(t, e)

	assertAll(t, []float64{0, 20, 40, 60, 80}, lightnesses(p))
	for _, c := range p.Colors() {
		assert.Equal(t, 210.0, c.Hue())
	}
	assert.Equal(t, "000000", p.At(0).Hex())
	assert.Equal(t, "0066CC", p.At(2).Hex())
}

func TestGenerate_ShadesSorted(t *testing.T) {
	s := seed(t, "EDAC21")

	for _, n := range []int{2, 4, 5, 10, 20} {
		p, e := Generate(Options{Scheme: Shades, From: s, Size: n})
		require.NoError(t, e)
		require.Equal(t, n, p.Len())

		l := lightnesses(p)
		for i := 1; i < len(l); i++ {
			assert.LessOrEqual(t, l[i-1], l[i])
		}
	}
}

func TestGenerate_ShadesFromBlack(t *testing.T) {
	p, e := Generate(Options{Scheme: Shades, From: color.New(), Size: 5})
	require.NoError(t, e)

	assertAll(t, []float64{0, 20, 40, 60, 80}, lightnesses(p))
}

func TestGenerate_Monochromatic(t *testing.T) {
	s := seed(t, "0066CC")

	p, e := Generate(Options{Scheme: Monochromatic, From: s, Size: 5})
	require.NoError(t, e)

	assertAll(t, []float64{20, 40, 60, 80, 100}, saturations(p))
	for _, c := range p.Colors() {
		assert.Equal(t, 210.0, c.Hue())
		assert.Equal(t, 40.0, c.Lightness())
	}
}

func TestGenerate_MonochromaticOscillates(t *testing.T) {
	p, e := Generate(Options{Scheme: Monochromatic, From: seed(t, "EDAC21"), Size: 5})
	require.NoError(t, e)

	assertAll(t, []float64{5, 25, 45, 65, 85}, saturations(p))
}

func TestGenerate_Complementary(t *testing.T) {
	s := seed(t, "0066CC")

	p, e := Generate(Options{Scheme: Complementary, From: s, Size: 5})
	require.NoError(t, e)

	assertAll(t, []float64{60, 80, 80, 100, 100}, saturations(p))
	assertAll(t, []float64{30, 30, 210, 210, 30}, hues(p))
	assert.True(t, p.Include(s))
	assert.True(t, p.Include(s.Complemented()))
}

func TestGenerate_Triad(t *testing.T) {
	p, e := Generate(Options{Scheme: Triad, From: seed(t, "0066CC"), Size: 5})
	require.NoError(t, e)

	assertAll(t, []float64{80, 80, 100, 100, 100}, saturations(p))
	assertAll(t, []float64{330, 90, 210, 330, 90}, hues(p))
}

func TestGenerate_Tetrad(t *testing.T) {
	p, e := Generate(Options{Scheme: Tetrad, From: seed(t, "0066CC"), Size: 6})
	require.NoError(t, e)

	assertAll(t, []float64{84, 84, 100, 100, 100, 100}, saturations(p))
	assertAll(t, []float64{300, 30, 210, 300, 30, 120}, hues(p))
}

func TestGenerate_SplitComplement(t *testing.T) {
	p, e := Generate(Options{Scheme: SplitComplement, From: seed(t, "0066CC"), Size: 5})
	require.NoError(t, e)

	assertAll(t, []float64{80, 80, 100, 100, 100}, saturations(p))
	assertAll(t, []float64{0, 60, 210, 0, 60}, hues(p))
}

func TestGenerate_SmallerThanScheme(t *testing.T) {
	p, e := Generate(Options{Scheme: Tetrad, From: seed(t, "0066CC"), Size: 2})
	require.NoError(t, e)

	assert.Equal(t, 2, p.Len())
	assertAll(t, []float64{210, 300}, hues(p))
}

func TestGenerate_Exhausted(t *testing.T) {
	_, e := Generate(Options{Scheme: Complementary, From: seed(t, "FFFFFF"), Size: 5})
	assert.ErrorIs(t, e, ErrExhausted)
}

// generateWithin fails the test if Generate does not return within d.
func generateWithin(t *testing.T, opts Options, d time.Duration) (*Palette, error) {
	t.Helper()
	type result struct {
		p *Palette
		e error
	}
	done := make(chan result, 1)
	go func() {
		p, e := Generate(opts)
		done <- result{p, e}
	}()

	select {
	case r := <-done:
		return r.p, r.e
	case <-time.After(d):
		t.Fatalf("Generate(%v, size %d) did not return within %v", opts.Scheme, opts.Size, d)
		return nil, nil
	}
}

func TestGenerate_Sizes(t *testing.T) {
	x := ExtractorFunc(func(path string, size int) ([][3]uint8, error) {
		triples := make([][3]uint8, size)
		for i := range triples {
			triples[i] = [3]uint8{uint8(i), uint8(i / 2), 7}
		}
		return triples, nil
	})

	for _, scheme := range []Scheme{Shades, Analogous, Monochromatic, Complementary, Triad, Tetrad, SplitComplement, Random, Image} {
		for _, n := range []int{1, 100, 101} {
			opts := Options{
				Scheme:    scheme,
				From:      seed(t, "0066CC"),
				Size:      n,
				Image:     "photo.png",
				Extractor: x,
				Rand:      rand.New(rand.NewSource(int64(n))),
			}
			p, e := generateWithin(t, opts, 5*time.Second)
			if e != nil {
				assert.ErrorIs(t, e, ErrExhausted, "%v size %d", scheme, n)
				continue
			}
			assert.Equal(t, n, p.Len(), "%v size %d", scheme, n)
		}
	}
}

func TestGenerate_FillExhaustedAbove100(t *testing.T) {
	for _, scheme := range []Scheme{Complementary, Triad, Tetrad, SplitComplement} {
		_, e := generateWithin(t, Options{Scheme: scheme, From: seed(t, "0066CC"), Size: 101}, 5*time.Second)
		assert.ErrorIs(t, e, ErrExhausted, scheme.String())
	}
}

func TestGenerate_OscillateAbove100(t *testing.T) {
	p, e := generateWithin(t, Options{Scheme: Shades, From: seed(t, "0066CC"), Size: 101}, 5*time.Second)
	require.NoError(t, e)
	require.Equal(t, 101, p.Len())
	for i, c := range p.Colors() {
		assert.InDelta(t, 40, c.Lightness(), 1e-9, "index %d", i)
		assert.InDelta(t, 210, c.Hue(), 1e-9, "index %d", i)
	}
}

func TestGenerate_LeavesSeedAlone(t *testing.T) {
	s := seed(t, "0066CC")

	p, e := Generate(Options{Scheme: Shades, From: s, Size: 5})
	require.NoError(t, e)
	p.Invert()

	assert.Equal(t, "0066CC", s.Hex())
}

func TestGenerate_Random(t *testing.T) {
	s := seed(t, "0066CC")

	p, e := Generate(Options{Scheme: Random, From: s, Size: 8, Rand: rand.New(rand.NewSource(1))})
	require.NoError(t, e)
	assert.Equal(t, 8, p.Len())
	assert.Equal(t, "0066CC", p.At(0).Hex())

	q, e := Generate(Options{Scheme: Random, Size: 8, Rand: rand.New(rand.NewSource(1))})
	require.NoError(t, e)
	assert.Equal(t, 8, q.Len())
	assert.Equal(t, p.Hexes()[1:], q.Hexes()[:7], "same source, same colors")

	q, e = Generate(Options{Scheme: Random, Size: 3})
	require.NoError(t, e)
	assert.Equal(t, 3, q.Len())
}

func TestGenerate_Image(t *testing.T) {
	var gotPath string
	var gotSize int
	x := ExtractorFunc(func(path string, size int) ([][3]uint8, error) {
		gotPath, gotSize = path, size
		return [][3]uint8{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}, {1, 2, 3}}, nil
	})

	p, e := Generate(Options{Scheme: Image, Image: "photo.png", Size: 3, Extractor: x})
	require.NoError(t, e)

	assert.Equal(t, "photo.png", gotPath)
	assert.Equal(t, 3, gotSize)
	assert.Equal(t, []string{"FF0000", "00FF00", "0000FF"}, p.Hexes())
}

func TestGenerate_ImageError(t *testing.T) {
	bad := errors.New("cannot decode")
	x := ExtractorFunc(func(string, int) ([][3]uint8, error) { return nil, bad })

	_, e := Generate(Options{Scheme: Image, Image: "photo.png", Extractor: x})
	assert.Equal(t, bad, e)
}
