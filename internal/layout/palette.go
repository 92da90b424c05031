package layout

import (
	"image/color"

	"github.com/packforge/awardgen/internal/award"
)

// Palette is the fixed per-rank color scheme driving the certificate
// background, accent bars, and den-info text.
type Palette struct {
	Primary    color.NRGBA
	Accent     color.NRGBA
	Background color.NRGBA
}

var defaultPalette = Palette{
	Primary:    color.NRGBA{R: 188, G: 208, B: 54, A: 255},
	Accent:     color.NRGBA{R: 0, G: 63, B: 135, A: 255},
	Background: color.NRGBA{R: 26, G: 26, B: 46, A: 255}, // dark navy
}

var palettes = map[award.DenType]Palette{
	award.DenLions: {
		Primary:    color.NRGBA{R: 255, G: 199, B: 44, A: 255},
		Accent:     color.NRGBA{R: 0, G: 63, B: 135, A: 255},
		Background: color.NRGBA{R: 51, G: 40, B: 9, A: 255},
	},
	award.DenTigers: {
		Primary:    color.NRGBA{R: 252, G: 106, B: 33, A: 255},
		Accent:     color.NRGBA{R: 0, G: 63, B: 135, A: 255},
		Background: color.NRGBA{R: 50, G: 21, B: 7, A: 255},
	},
	award.DenWolves: {
		Primary:    color.NRGBA{R: 188, G: 208, B: 54, A: 255},
		Accent:     color.NRGBA{R: 0, G: 63, B: 135, A: 255},
		Background: color.NRGBA{R: 30, G: 33, B: 9, A: 255},
	},
	award.DenBears: {
		Primary:    color.NRGBA{R: 0, G: 174, B: 239, A: 255},
		Accent:     color.NRGBA{R: 0, G: 63, B: 135, A: 255},
		Background: color.NRGBA{R: 0, G: 28, B: 38, A: 255},
	},
	award.DenWebelos: {
		Primary:    color.NRGBA{R: 0, G: 132, B: 61, A: 255},
		Accent:     color.NRGBA{R: 0, G: 63, B: 135, A: 255},
		Background: color.NRGBA{R: 0, G: 26, B: 12, A: 255},
	},
	award.DenAOL: {
		Primary:    color.NRGBA{R: 0, G: 132, B: 61, A: 255},
		Accent:     color.NRGBA{R: 0, G: 63, B: 135, A: 255},
		Background: color.NRGBA{R: 0, G: 26, B: 12, A: 255},
	},
}

// PaletteFor returns the rank palette, falling back to the default scheme
// for unknown den types.
func PaletteFor(den award.DenType) Palette {
	if p, ok := palettes[den]; ok {
		return p
	}
	return defaultPalette
}

var white = color.NRGBA{R: 245, G: 245, B: 245, A: 255}
