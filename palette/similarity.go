package palette

import (
	"fmt"
	"math"

	"github.com/mmuldo/paleta/calc"
)

// maxDistance spans the doubled domain of a fitted line evaluated at 255.
var maxDistance = math.Sqrt(3 * 65025 * 65025)

// Fit runs a multiple regression over the red, green and blue channels of
// the colors in p.
func (p *Palette) Fit() (calc.Regression, error) {
	r := make([]float64, len(p.colors))
	g := make([]float64, len(p.colors))
	b := make([]float64, len(p.colors))
	for i, c := range p.colors {
		r[i], g[i], b[i] = c.Red(), c.Green(), c.Blue()
	}
	return calc.MultipleRegression(r, g, b)
}

// Similarity compares the overall color trend of p with that of other. Each
// palette is reduced to the line fitted through its colors; the lines are
// compared at both ends of the channel range. 0 means the trends match.
func (p *Palette) Similarity(other *Palette) (float64, error) {
	ra, e := p.Fit()
	if e != nil {
		return 0, fmt.Errorf("fit palette: %w", e)
	}
	rb, e := other.Fit()
	if e != nil {
		return 0, fmt.Errorf("fit other palette: %w", e)
	}

	d1 := calc.Distance(ra.At(0), rb.At(0)) / maxDistance
	d2 := calc.Distance(ra.At(255), rb.At(255)) / maxDistance

	return d1 + d2, nil
}
