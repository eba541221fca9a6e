package image

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/esimov/colorquant"
	"go.uber.org/zap"
)

// DefaultMaxDimension bounds the longer side of an image before it is
// quantized.
const DefaultMaxDimension = 512

// Extractor reads the dominant colors of image files. It satisfies
// palette.Extractor.
type Extractor struct {
	// MaxDimension is the longest side, in pixels, an image is scaled down
	// to before quantizing. Zero means DefaultMaxDimension; negative
	// disables scaling.
	MaxDimension int
	Logger       *zap.Logger
}

// NewExtractor returns an Extractor that logs to logger.
func NewExtractor(logger *zap.Logger) *Extractor {
	return &Extractor{Logger: logger}
}

// Extract loads the image at path, quantizes it to the smallest perfect
// square of colors no less than size and returns up to size of those colors,
// most prevalent first.
func (x *Extractor) Extract(path string, size int) ([][3]uint8, error) {
	if size < 1 {
		return nil, fmt.Errorf("extract %d colors from %s: size must be positive", size, path)
	}
	log := x.logger()

	i, e := Load(path)
	if e != nil {
		return nil, e
	}

	i = x.shrink(i)
	n := QuantizedSize(size)
	log.Debug("quantizing image",
		zap.String("path", path),
		zap.Int("width", i.Bounds().Dx()),
		zap.Int("height", i.Bounds().Dy()),
		zap.Int("colors", n),
	)

	ranked := RankColors(GetColors(Quantize(i, n)))
	if len(ranked) > size {
		ranked = ranked[:size]
	}

	triples := make([][3]uint8, len(ranked))
	for k, cc := range ranked {
		triples[k] = [3]uint8{cc.Color.R, cc.Color.G, cc.Color.B}
	}
	log.Debug("extracted colors", zap.String("path", path), zap.Int("count", len(triples)))

	return triples, nil
}

// QuantizedSize returns the smallest perfect square no less than size.
func QuantizedSize(size int) int {
	r := int(math.Ceil(math.Sqrt(float64(size))))
	return r * r
}

// Quantize reduces img to at most num colors.
func Quantize(img image.Image, num int) *image.NRGBA {
	b := img.Bounds()
	o := image.NewNRGBA(image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y))
	colorquant.NoDither.Quantize(img, o, num, false, true)
	return o
}

func (x *Extractor) shrink(img image.Image) image.Image {
	limit := x.MaxDimension
	if limit == 0 {
		limit = DefaultMaxDimension
	}
	b := img.Bounds()
	if limit < 0 || (b.Dx() <= limit && b.Dy() <= limit) {
		return img
	}
	return imaging.Fit(img, limit, limit, imaging.Lanczos)
}

func (x *Extractor) logger() *zap.Logger {
	if x.Logger == nil {
		return zap.NewNop()
	}
	return x.Logger
}
