package palette

import (
	"errors"
	"fmt"

	"github.com/mmuldo/paleta/color"
)

// ErrNoExtractor is returned for the Image scheme when no Extractor is set.
var ErrNoExtractor = errors.New("no image extractor configured")

// Extractor reads the representative colors of an image.
//
// Extract returns at most size RGB triples, most representative first, or
// an error when the image cannot be opened or decoded.
type Extractor interface {
	Extract(path string, size int) ([][3]uint8, error)
}

// ExtractorFunc adapts a function to Extractor.
type ExtractorFunc func(path string, size int) ([][3]uint8, error)

// Extract calls f(path, size).
func (f ExtractorFunc) Extract(path string, size int) ([][3]uint8, error) {
	return f(path, size)
}

// fromImage returns extractor errors as they are.
func fromImage(x Extractor, path string, n int) (*Palette, error) {
	triples, e := x.Extract(path, n)
	if e != nil {
		return nil, e
	}
	if len(triples) > n {
		triples = triples[:n]
	}

	p := &Palette{colors: make([]*color.Color, 0, len(triples))}
	for _, t := range triples {
		c, e := color.FromRGB(float64(t[0]), float64(t[1]), float64(t[2]))
		if e != nil {
			return nil, fmt.Errorf("color from %s: %w", path, e)
		}
		p.colors = append(p.colors, c)
	}
	return p, nil
}
