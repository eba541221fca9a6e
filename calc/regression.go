// Package calc holds the numeric helpers shared by colors and palettes.
package calc

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrLength is returned when the sample sequences differ in length.
	ErrLength = errors.New("sequences are not the same length")
	// ErrEmpty is returned when there are no samples to fit.
	ErrEmpty = errors.New("no samples to fit")
)

// Axes is a value per labeled axis.
type Axes struct {
	X, Y, Z float64
}

// At evaluates the line described by slope and offset at t.
func At(slope, offset Axes, t float64) Axes {
	return Axes{
		X: t*slope.X + offset.X,
		Y: t*slope.Y + offset.Y,
		Z: t*slope.Z + offset.Z,
	}
}

// Regression is the slope and offset of a least-squares line per axis.
type Regression struct {
	Slope  Axes
	Offset Axes
}

// At evaluates the fitted line at t.
func (r Regression) At(t float64) Axes {
	return At(r.Slope, r.Offset, t)
}

// MultipleRegression fits a line per axis through the samples dx, dy and dz.
//
// A single sample has nothing to fit; its values become the slope and the
// offsets are zero. The y and z slopes share the Σyz cross term and differ
// only in their denominators.
func MultipleRegression(dx, dy, dz []float64) (Regression, error) {
	size := len(dx)
	if size != len(dy) || size != len(dz) {
		return Regression{}, fmt.Errorf("multiple regression over %d, %d and %d samples: %w", len(dx), len(dy), len(dz), ErrLength)
	}
	if size == 0 {
		return Regression{}, ErrEmpty
	}

	if size == 1 {
		return Regression{Slope: Axes{dx[0], dy[0], dz[0]}}, nil
	}

	// Σzx takes no part in any of the three lines.
	var sxx, syy, szz, sxy, syz, sx, sy, sz float64
	for i := range dx {
		x, y, z := dx[i], dy[i], dz[i]
		sxx += x * x
		syy += y * y
		szz += z * z
		sxy += x * y
		syz += y * z
		sx += x
		sy += y
		sz += z
	}

	n := float64(size)
	var r Regression
	r.Slope.X = slope(n*sxy-sx*sy, n*sxx-sx*sx)
	r.Slope.Y = slope(n*syz-sy*sz, n*syy-sy*sy)
	r.Slope.Z = slope(n*syz-sy*sz, n*szz-sz*sz)

	r.Offset.X = (sy - r.Slope.X*sx) / n
	r.Offset.Y = (sz - r.Slope.Y*sy) / n
	r.Offset.Z = (sx - r.Slope.Z*sz) / n

	return r, nil
}

// slope is flat when every sample shares the same abscissa.
func slope(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Axes) float64 {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
