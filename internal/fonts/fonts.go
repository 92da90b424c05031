// Package fonts resolves a renderable font face for any pixel size.
//
// Resolution walks a fixed fallback chain: a display font found on disk
// (Impact, then common bold sans files), the embedded Go Bold font, and
// finally the engine's built-in bitmap face. The chain guarantees Face
// always returns something drawable, so font availability can never fail
// a certificate render.
package fonts

import (
	"log"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

var defaultSearchPaths = []string{
	"/usr/share/fonts/truetype/msttcorefonts",
	"/usr/share/fonts/truetype",
	"/usr/share/fonts",
	"/usr/local/share/fonts",
	"/Library/Fonts",
	"/System/Library/Fonts",
}

var displayFontNames = []string{
	"Impact.ttf", "impact.ttf",
	"Arial_Bold.ttf", "Arial Bold.ttf", "arialbd.ttf",
	"DejaVuSans-Bold.ttf", "LiberationSans-Bold.ttf",
}

// Resolver caches one font.Face per requested pixel size. Resolved faces
// are immutable and safe to share across concurrent renders.
type Resolver struct {
	mu     sync.Mutex
	parsed *opentype.Font
	faces  map[float64]font.Face
}

// NewResolver builds a resolver, preferring a display font found under the
// given search paths (default system font directories when none are given).
func NewResolver(searchPaths ...string) *Resolver {
	if len(searchPaths) == 0 {
		searchPaths = defaultSearchPaths
	}
	r := &Resolver{faces: make(map[float64]font.Face)}

	data := findDisplayFont(searchPaths)
	if data == nil {
		data = gobold.TTF
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		// Disk font was unreadable as OpenType; the embedded font always parses.
		parsed, err = opentype.Parse(gobold.TTF)
		if err != nil {
			log.Printf("fonts: embedded font unavailable, using builtin face: %v", err)
			return r
		}
	}
	r.parsed = parsed
	return r
}

func findDisplayFont(searchPaths []string) []byte {
	for _, dir := range searchPaths {
		for _, name := range displayFontNames {
			if data, err := os.ReadFile(filepath.Join(dir, name)); err == nil {
				return data
			}
		}
	}
	return nil
}

// Face returns a face sized to the given pixel height. Faces are resolved
// once per size and cached for the life of the resolver.
func (r *Resolver) Face(px float64) font.Face {
	r.mu.Lock()
	defer r.mu.Unlock()

	if f, ok := r.faces[px]; ok {
		return f
	}
	f := r.newFace(px)
	r.faces[px] = f
	return f
}

func (r *Resolver) newFace(px float64) font.Face {
	if r.parsed == nil {
		return basicfont.Face7x13
	}
	f, err := opentype.NewFace(r.parsed, &opentype.FaceOptions{
		Size:    px,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	return f
}
