package badge

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packforge/awardgen/internal/award"
)

func writeEmblem(t *testing.T, dir, name string) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
		}
	}
	f, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestEmblemLookup(t *testing.T) {
	dir := t.TempDir()
	writeEmblem(t, dir, "rank_tiger.png")
	e := NewEmblemSet(dir)

	img, err := e.Emblem(award.DenTigers)
	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dx())

	// Cached on second lookup.
	again, err := e.Emblem(award.DenTigers)
	require.NoError(t, err)
	assert.Equal(t, img, again)
}

func TestEmblemMissingIsFatal(t *testing.T) {
	e := NewEmblemSet(t.TempDir())
	_, err := e.Emblem(award.DenWolves)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rank_wolf.png", "error names the missing resource")
}

func TestWebelosAndAOLShareEmblem(t *testing.T) {
	dir := t.TempDir()
	writeEmblem(t, dir, "rank_webelos.png")
	e := NewEmblemSet(dir)

	w, err := e.Emblem(award.DenWebelos)
	require.NoError(t, err)
	a, err := e.Emblem(award.DenAOL)
	require.NoError(t, err)
	assert.Equal(t, w, a)
}

func TestVerify(t *testing.T) {
	dir := t.TempDir()
	writeEmblem(t, dir, "rank_lion.png")
	e := NewEmblemSet(dir)

	assert.NoError(t, e.Verify([]award.DenType{award.DenLions}))
	assert.Error(t, e.Verify([]award.DenType{award.DenLions, award.DenBears}))
}
