package image

import (
	"image"
	"image/color"
	"sort"
)

type ColorCount struct {
	Color color.NRGBA
	Count int
}

// ColorCountList orders colors by prevalence, most common first. Ties go to
// the numerically smaller RGB value so the order does not depend on map
// iteration.
type ColorCountList []ColorCount

func (ccl ColorCountList) Len() int      { return len(ccl) }
func (ccl ColorCountList) Swap(i, j int) { ccl[i], ccl[j] = ccl[j], ccl[i] }
func (ccl ColorCountList) Less(i, j int) bool {
	if ccl[i].Count != ccl[j].Count {
		return ccl[i].Count > ccl[j].Count
	}
	return pack(ccl[i].Color) < pack(ccl[j].Color)
}

// GetColors returns a map of an image's opaque and translucent colors and
// the number of times each color occurs. Fully transparent pixels are
// skipped.
func GetColors(img image.Image) map[color.NRGBA]int {
	m := make(map[color.NRGBA]int)

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.A == 0 {
				continue
			}
			c.A = 0xff
			m[c]++
		}
	}

	return m
}

func RankColors(m map[color.NRGBA]int) ColorCountList {
	cc := make(ColorCountList, 0, len(m))
	for k, v := range m {
		cc = append(cc, ColorCount{k, v})
	}

	sort.Sort(cc)
	return cc
}

func pack(c color.NRGBA) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}
