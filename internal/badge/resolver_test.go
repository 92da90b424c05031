package badge

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packforge/awardgen/internal/award"
	"github.com/packforge/awardgen/internal/fonts"
)

func testFonts(t *testing.T) *fonts.Resolver {
	t.Helper()
	return fonts.NewResolver(filepath.Join(t.TempDir(), "nofonts"))
}

func testStore(t *testing.T) *DirStore {
	t.Helper()
	s, err := NewDirStore(filepath.Join(t.TempDir(), "cache"))
	require.NoError(t, err)
	return s
}

func pngBytes(t *testing.T, w, h int, c color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func encode(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestResolveCacheHit(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.Put("sku_999", pngBytes(t, 40, 40, color.NRGBA{R: 200, A: 255})))

	r := NewResolver(store, award.Catalog{}, testFonts(t), time.Second)
	res := r.Resolve("999", 400)

	assert.Equal(t, OriginCache, res.Origin)
	assert.Equal(t, 40, res.W)
	assert.Equal(t, 40, res.H)
}

func TestResolveFetchesAndCaches(t *testing.T) {
	art := pngBytes(t, 64, 64, color.NRGBA{G: 150, A: 255})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Write(art)
	}))
	defer srv.Close()

	store := testStore(t)
	catalog := award.Catalog{"619941": {SKU: "619941", ImageURL: srv.URL + "/619941.png"}}
	r := NewResolver(store, catalog, testFonts(t), time.Second)

	res := r.Resolve("619941", 400)
	assert.Equal(t, OriginFetched, res.Origin)

	cached, ok := store.Get("sku_619941")
	require.True(t, ok)
	assert.Equal(t, art, cached, "fetched bytes persisted verbatim")

	// Second resolve comes from cache.
	res2 := NewResolver(store, catalog, testFonts(t), time.Second).Resolve("619941", 400)
	assert.Equal(t, OriginCache, res2.Origin)
}

func TestResolveFetchFailureFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	catalog := award.Catalog{"42": {SKU: "42", ImageURL: srv.URL + "/42.png"}}
	r := NewResolver(testStore(t), catalog, testFonts(t), time.Second)

	res := r.Resolve("42", 400)
	assert.Equal(t, OriginPlaceholder, res.Origin, "fetch failure never propagates")
}

func TestResolveUndecodableFetchFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("this is not an image"))
	}))
	defer srv.Close()

	store := testStore(t)
	catalog := award.Catalog{"43": {SKU: "43", ImageURL: srv.URL + "/43.png"}}
	r := NewResolver(store, catalog, testFonts(t), time.Second)

	res := r.Resolve("43", 400)
	assert.Equal(t, OriginPlaceholder, res.Origin)
	_, ok := store.Get("sku_43")
	assert.False(t, ok, "undecodable bytes are never cached")
}

func TestResolveUnknownSKU(t *testing.T) {
	r := NewResolver(testStore(t), award.Catalog{}, testFonts(t), time.Second)

	res := r.Resolve("660245", 400)
	assert.Equal(t, OriginPlaceholder, res.Origin)
	assert.Equal(t, 400, res.W)
	assert.Equal(t, 400, res.H)
}

func TestPlaceholderDeterministic(t *testing.T) {
	r := NewResolver(testStore(t), award.Catalog{}, testFonts(t), time.Second)

	a := r.Resolve("619941", 400)
	b := r.Resolve("619941", 400)
	require.Equal(t, OriginPlaceholder, a.Origin)
	require.Equal(t, OriginPlaceholder, b.Origin)
	assert.Equal(t, encode(t, a.Image), encode(t, b.Image), "same SKU and size yield identical pixels")
}

func TestPlaceholderDigits(t *testing.T) {
	assert.Equal(t, "941", placeholderDigits("619941"))
	assert.Equal(t, "42", placeholderDigits("42"))
	assert.Equal(t, "123", placeholderDigits("123"))
}

func TestResolveBoundsOversizedArt(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.Put("sku_big", pngBytes(t, 800, 400, color.NRGBA{B: 120, A: 255})))

	r := NewResolver(store, award.Catalog{}, testFonts(t), time.Second)
	res := r.Resolve("big", 400)

	assert.Equal(t, OriginCache, res.Origin)
	assert.Equal(t, 400, res.W, "downscaled to bound")
	assert.Equal(t, 200, res.H, "aspect preserved")
}
