package layout

import (
	"image"
	"image/color"

	"github.com/packforge/awardgen/internal/badge"
)

// Kind tags what a placed element draws.
type Kind int

const (
	KindText Kind = iota
	KindEmblem
	KindFeatured
	KindGrid
)

// Element is one placed visual. Image elements carry a resolved badge or
// emblem; text elements carry the string, pixel size, color, and a
// horizontal anchor (0 = left edge of box, 0.5 = centered).
type Element struct {
	Kind  Kind
	Box   image.Rectangle
	Image *badge.Resolved

	Text      string
	TextSize  float64
	TextColor color.NRGBA
	Anchor    float64
}

// Plan is the full layout for one certificate. Elements are in draw order;
// the renderer draws them sequentially and never re-sorts, so plan order is
// the z-stacking invariant.
type Plan struct {
	Palette Palette

	// FeaturedBand is the full-width band behind the featured row. Zero
	// when the featured region collapsed.
	FeaturedBand image.Rectangle

	Elements []Element
}
