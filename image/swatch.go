package image

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/mitchellh/go-homedir"

	paleta "github.com/mmuldo/paleta/color"
)

const (
	// DefaultTileSize is the side, in pixels, of one swatch tile.
	DefaultTileSize = 200
	// swatchColumns is the number of tiles in a full swatch row.
	swatchColumns = 4
)

// Swatch draws colors as square tiles of side tile, four to a row, each
// labelled with its hex value.
func Swatch(colors []*paleta.Color, tile int) (image.Image, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("swatch: no colors to draw")
	}
	if tile < 1 {
		return nil, fmt.Errorf("swatch: tile size %d must be positive", tile)
	}

	cols := swatchColumns
	if len(colors) < cols {
		cols = len(colors)
	}
	rows := (len(colors) + cols - 1) / cols

	dc := gg.NewContext(cols*tile, rows*tile)
	dc.SetColor(color.White)
	dc.Clear()

	for i, c := range colors {
		x := float64(i%cols*tile)
		y := float64(i/cols*tile)

		dc.SetColor(c)
		dc.DrawRectangle(x, y, float64(tile), float64(tile))
		dc.Fill()

		// dark text on light tiles
		if c.Lightness() > 50 {
			dc.SetColor(color.Black)
		} else {
			dc.SetColor(color.White)
		}
		dc.DrawStringAnchored(c.Hex(), x+float64(tile)/2, y+float64(tile)-10, 0.5, 0)
	}

	return dc.Image(), nil
}

// Save writes img to path. The format follows the file extension.
func Save(img image.Image, path string) error {
	p, e := homedir.Expand(path)
	if e != nil {
		return e
	}
	return imaging.Save(img, p)
}
