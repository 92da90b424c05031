// Package badge resolves award SKUs to ready-to-composite images.
//
// Resolution is a three-tier chain that always succeeds: cached art, then a
// bounded remote fetch persisted to the cache, then a synthesized
// placeholder. Certificate generation is never blocked by network or
// catalog gaps.
package badge

import (
	"bytes"
	"image"
	"log"
	"time"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/singleflight"

	"github.com/packforge/awardgen/internal/award"
	"github.com/packforge/awardgen/internal/fonts"
	"github.com/packforge/awardgen/internal/util"
)

// Origin records which tier produced a resolved image.
type Origin int

const (
	OriginCache Origin = iota
	OriginFetched
	OriginPlaceholder
)

func (o Origin) String() string {
	switch o {
	case OriginCache:
		return "cache"
	case OriginFetched:
		return "fetched"
	default:
		return "placeholder"
	}
}

// Resolved is a badge image ready for compositing. It is shared read-only
// between the planner and renderer for the duration of one render.
type Resolved struct {
	Image  image.Image
	W, H   int
	Origin Origin
}

// Resolver owns the badge cache and the fetch/fallback policy.
type Resolver struct {
	store   Store
	catalog award.Catalog
	fonts   *fonts.Resolver
	timeout time.Duration
	group   singleflight.Group
}

func NewResolver(store Store, catalog award.Catalog, fonts *fonts.Resolver, timeout time.Duration) *Resolver {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Resolver{store: store, catalog: catalog, fonts: fonts, timeout: timeout}
}

func cacheKey(sku string) string {
	return "sku_" + sku
}

// Resolve returns an image for the SKU, never failing. size bounds the
// returned image (larger art is downscaled) and fixes the synthesis size
// of placeholders. Concurrent resolves of the same SKU share one fetch.
func (r *Resolver) Resolve(sku string, size int) Resolved {
	v, _, _ := r.group.Do(cacheKey(sku), func() (any, error) {
		return r.resolve(sku, size), nil
	})
	return v.(Resolved)
}

func (r *Resolver) resolve(sku string, size int) Resolved {
	key := cacheKey(sku)

	if data, ok := r.store.Get(key); ok {
		if img, err := imaging.Decode(bytes.NewReader(data)); err == nil {
			return newResolved(bound(img, size), OriginCache)
		}
		log.Printf("badge: cached entry %s undecodable, refetching", key)
	}

	if url, ok := r.catalog.URL(sku); ok {
		if img, err := r.fetch(key, url); err == nil {
			return newResolved(bound(img, size), OriginFetched)
		} else {
			log.Printf("badge: fetch for SKU %s failed, using placeholder: %v", sku, err)
		}
	}

	return newResolved(placeholder(r.fonts, sku, size), OriginPlaceholder)
}

func (r *Resolver) fetch(key, url string) (image.Image, error) {
	data, err := util.GetBytes(url, r.timeout)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if err := r.store.Put(key, data); err != nil {
		// The image is still usable this run; only persistence failed.
		log.Printf("badge: caching %s failed: %v", key, err)
	}
	return img, nil
}

// bound downscales art whose larger dimension exceeds the requested size.
// Smaller art is left alone; the renderer letterboxes either way.
func bound(img image.Image, size int) image.Image {
	b := img.Bounds()
	if b.Dx() <= size && b.Dy() <= size {
		return img
	}
	return imaging.Fit(img, size, size, imaging.Lanczos)
}

func newResolved(img image.Image, origin Origin) Resolved {
	b := img.Bounds()
	return Resolved{Image: img, W: b.Dx(), H: b.Dy(), Origin: origin}
}
