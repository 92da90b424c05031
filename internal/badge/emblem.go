package badge

import (
	"fmt"
	"image"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"

	"github.com/packforge/awardgen/internal/award"
)

// emblemFiles maps each den type to its rank emblem file. Webelos and
// Arrow of Light share the same art.
var emblemFiles = map[award.DenType]string{
	award.DenLions:   "rank_lion.png",
	award.DenTigers:  "rank_tiger.png",
	award.DenWolves:  "rank_wolf.png",
	award.DenBears:   "rank_bear.png",
	award.DenWebelos: "rank_webelos.png",
	award.DenAOL:     "rank_webelos.png",
}

// EmblemSet loads rank emblems from a local assets directory. Unlike badge
// art, a missing emblem is a configuration error: there is no placeholder
// tier for rank emblems.
type EmblemSet struct {
	dir string

	mu    sync.Mutex
	cache map[string]image.Image
}

func NewEmblemSet(dir string) *EmblemSet {
	return &EmblemSet{dir: dir, cache: make(map[string]image.Image)}
}

// Emblem returns the rank emblem for a den type, loading and caching it on
// first use.
func (e *EmblemSet) Emblem(den award.DenType) (image.Image, error) {
	file, ok := emblemFiles[den]
	if !ok {
		return nil, fmt.Errorf("no rank emblem defined for den type %q", den)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if img, ok := e.cache[file]; ok {
		return img, nil
	}

	img, err := imaging.Open(filepath.Join(e.dir, file))
	if err != nil {
		return nil, fmt.Errorf("rank emblem %s for den %q: %w", file, den, err)
	}
	e.cache[file] = img
	return img, nil
}

// Verify checks up front that emblems exist for every den type in use.
func (e *EmblemSet) Verify(dens []award.DenType) error {
	for _, d := range dens {
		if _, err := e.Emblem(d); err != nil {
			return err
		}
	}
	return nil
}
