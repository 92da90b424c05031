package badge

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/packforge/awardgen/internal/fonts"
)

var (
	placeholderFill   = color.NRGBA{R: 0, G: 63, B: 135, A: 255}
	placeholderStroke = color.NRGBA{R: 255, G: 199, B: 44, A: 255}
)

// placeholderDigits is the text shown inside a placeholder badge: the last
// three digits of the SKU, or the whole SKU when shorter. This is an
// observable contract covered by golden images, not a cosmetic detail.
func placeholderDigits(sku string) string {
	if len(sku) > 3 {
		return sku[len(sku)-3:]
	}
	return sku
}

// placeholder synthesizes a circular stand-in badge for a SKU whose art
// could not be resolved. Same SKU and size always produce identical pixels.
func placeholder(f *fonts.Resolver, sku string, size int) image.Image {
	dc := gg.NewContext(size, size)

	margin := float64(size) / 20
	r := float64(size)/2 - margin
	cx, cy := float64(size)/2, float64(size)/2

	dc.DrawCircle(cx, cy, r)
	dc.SetColor(placeholderFill)
	dc.FillPreserve()
	dc.SetColor(placeholderStroke)
	dc.SetLineWidth(float64(size) / 100)
	dc.Stroke()

	dc.SetFontFace(f.Face(float64(size) * 0.28))
	dc.SetColor(color.White)
	text := placeholderDigits(sku)
	w, _ := dc.MeasureString(text)
	dc.DrawString(text, cx-w/2, cy+float64(size)*0.1)

	return dc.Image()
}
