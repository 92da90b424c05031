package pipeline

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packforge/awardgen/internal/award"
	"github.com/packforge/awardgen/internal/badge"
	"github.com/packforge/awardgen/internal/fonts"
	"github.com/packforge/awardgen/internal/layout"
	"github.com/packforge/awardgen/internal/render"
)

func writeTestEmblems(t *testing.T, dir string) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 24, 24))
	for y := 0; y < 24; y++ {
		for x := 0; x < 24; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 90, G: 90, B: 90, A: 255})
		}
	}
	for _, name := range []string{"rank_lion.png", "rank_tiger.png", "rank_wolf.png", "rank_bear.png", "rank_webelos.png"} {
		f, err := os.Create(filepath.Join(dir, name))
		require.NoError(t, err)
		require.NoError(t, png.Encode(f, img))
		f.Close()
	}
}

func testPipeline(t *testing.T) *Pipeline {
	t.Helper()
	store, err := badge.NewDirStore(filepath.Join(t.TempDir(), "cache"))
	require.NoError(t, err)
	f := fonts.NewResolver(filepath.Join(t.TempDir(), "nofonts"))
	badges := badge.NewResolver(store, award.Catalog{}, f, time.Second)

	emblemDir := t.TempDir()
	writeTestEmblems(t, emblemDir)
	return New(layout.NewPlanner(badges, badge.NewEmblemSet(emblemDir)), render.New(f), 2)
}

func TestGenerateBatch(t *testing.T) {
	p := testPipeline(t)
	rs := []award.Recipient{
		{First: "Ann", Last: "Adams", DenType: award.DenLions, DenNumber: 1,
			Awards: []award.Record{{SKU: "1", ItemName: "A", ItemType: award.Adventure}}},
		{First: "Tom", Last: "Smith", DenType: award.DenTigers, DenNumber: 3,
			Awards: []award.Record{{SKU: "2", ItemName: "B", ItemType: award.Adventure}}},
	}

	res := p.Generate(context.Background(), rs)
	require.Empty(t, res.Errors)
	require.Len(t, res.Images, 2)

	img := res.Images["tigers_Smith_Tom"]
	require.NotNil(t, img)
	assert.Equal(t, 1920, img.Bounds().Dx())
	assert.Equal(t, 1080, img.Bounds().Dy())
}

func TestGenerateOneBadRecipientDoesNotBlockBatch(t *testing.T) {
	p := testPipeline(t)
	rs := []award.Recipient{
		{First: "Ann", Last: "Adams", DenType: award.DenLions, DenNumber: 1},
		{First: "", Last: "Broken", DenType: award.DenTigers, DenNumber: 1}, // malformed
		{First: "Sharky", Last: "Fin", DenType: "sharks", DenNumber: 1},     // no emblem
	}

	res := p.Generate(context.Background(), rs)
	assert.Len(t, res.Images, 1)
	assert.Len(t, res.Errors, 2)
	assert.Contains(t, res.Images, "lions_Adams_Ann")
}

func TestGenerateEmpty(t *testing.T) {
	p := testPipeline(t)
	res := p.Generate(context.Background(), nil)
	assert.Empty(t, res.Images)
	assert.Empty(t, res.Errors)
}
