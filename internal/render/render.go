// Package render draws layout plans onto the fixed certificate canvas.
//
// The renderer is intentionally dumb: a fixed background, then each placed
// element in plan order. It never re-sorts or redraws, so z-stacking is
// entirely the plan's ordering.
package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/packforge/awardgen/internal/fonts"
	"github.com/packforge/awardgen/internal/layout"
)

type Renderer struct {
	Fonts *fonts.Resolver
}

func New(f *fonts.Resolver) *Renderer {
	return &Renderer{Fonts: f}
}

// Render produces the certificate raster, always exactly 1920x1080. It has
// no side effects; encoding and file naming belong to the caller.
func (r *Renderer) Render(p *layout.Plan) image.Image {
	dc := gg.NewContext(layout.Width, layout.Height)

	r.drawBackground(dc, p)

	for _, e := range p.Elements {
		if e.Image != nil {
			drawImage(dc, e)
		} else {
			r.drawText(dc, e)
		}
	}
	return dc.Image()
}

func (r *Renderer) drawBackground(dc *gg.Context, p *layout.Plan) {
	dc.SetColor(p.Palette.Background)
	dc.Clear()

	dc.SetColor(p.Palette.Primary)
	dc.DrawRectangle(0, 0, layout.Width, layout.BarHeight)
	dc.Fill()
	dc.DrawRectangle(0, layout.Height-layout.BarHeight, layout.Width, layout.BarHeight)
	dc.Fill()

	if band := p.FeaturedBand; !band.Empty() {
		dc.SetColor(lighten(p.Palette.Background, 30))
		dc.DrawRectangle(float64(band.Min.X), float64(band.Min.Y), float64(band.Dx()), float64(band.Dy()))
		dc.Fill()
		dc.SetColor(p.Palette.Primary)
		dc.DrawRectangle(float64(band.Min.X), float64(band.Min.Y), float64(band.Dx()), 3)
		dc.Fill()
		dc.DrawRectangle(float64(band.Min.X), float64(band.Max.Y-3), float64(band.Dx()), 3)
		dc.Fill()
	}
}

// drawImage letterboxes the source into its box: scaled down preserving
// aspect ratio when too large, centered either way, never stretched.
func drawImage(dc *gg.Context, e layout.Element) {
	src := e.Image.Image
	b := src.Bounds()
	if b.Dx() > e.Box.Dx() || b.Dy() > e.Box.Dy() {
		src = imaging.Fit(src, e.Box.Dx(), e.Box.Dy(), imaging.Lanczos)
		b = src.Bounds()
	}
	x := e.Box.Min.X + (e.Box.Dx()-b.Dx())/2
	y := e.Box.Min.Y + (e.Box.Dy()-b.Dy())/2
	dc.DrawImage(src, x, y)
}

// drawText draws left-to-right with the baseline at the box's vertical
// center, anchored horizontally per the element.
func (r *Renderer) drawText(dc *gg.Context, e layout.Element) {
	dc.SetFontFace(r.Fonts.Face(e.TextSize))
	dc.SetColor(e.TextColor)
	w, _ := dc.MeasureString(e.Text)
	x := float64(e.Box.Min.X) + e.Anchor*(float64(e.Box.Dx())-w)
	y := float64(e.Box.Min.Y+e.Box.Max.Y) / 2
	dc.DrawString(e.Text, x, y)
}

func lighten(c color.NRGBA, d uint8) color.NRGBA {
	add := func(v uint8) uint8 {
		if v > 255-d {
			return 255
		}
		return v + d
	}
	return color.NRGBA{R: add(c.R), G: add(c.G), B: add(c.B), A: 255}
}
