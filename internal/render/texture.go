package render

import (
	"image"
	"image/color"
	"math"

	"github.com/nfnt/resize"
)

// brushFalloff sharpens the radial gradient so the centre saturates.
const brushFalloff = 2.5

// NewBrushTexture builds a size×size soft round brush in the ink colour: the
// centre is opaque and alpha falls to zero at the inscribed circle.
func NewBrushTexture(size int, ink color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	c := color.NRGBAModel.Convert(ink).(color.NRGBA)
	mid := float64(size / 2)

	for y := range size {
		for x := range size {
			d := math.Hypot(mid-float64(x), mid-float64(y))
			a := (d - mid) / (d - float64(size)) * brushFalloff
			a = min(max(a, 0), 1)
			img.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a * float64(c.A))})
		}
	}
	return img
}

// ScaleBrush resamples brush to px×px for backends that draw stamps at a
// fixed pixel size.
func ScaleBrush(brush image.Image, px int) image.Image {
	if px < 1 {
		px = 1
	}
	return resize.Resize(uint(px), uint(px), brush, resize.Bilinear)
}
