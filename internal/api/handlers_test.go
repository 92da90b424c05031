package api

import (
	"archive/zip"
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packforge/awardgen/internal/award"
	"github.com/packforge/awardgen/internal/badge"
	"github.com/packforge/awardgen/internal/fonts"
	"github.com/packforge/awardgen/internal/layout"
	"github.com/packforge/awardgen/internal/pipeline"
	"github.com/packforge/awardgen/internal/render"
)

const sampleCSV = "First Name,Last Name,Den Type,Den Number,SKU,Item Type,Item Name\n" +
	"Tom,Smith,tigers,3,619941,Adventure,Cubs Who Care Adventure\n" +
	"Ann,Adams,lions,1,619900,Adventure,Mountain Lion Adventure\n"

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

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := badge.NewDirStore(filepath.Join(t.TempDir(), "cache"))
	require.NoError(t, err)
	f := fonts.NewResolver(filepath.Join(t.TempDir(), "nofonts"))
	badges := badge.NewResolver(store, award.Catalog{}, f, time.Second)

	emblemDir := t.TempDir()
	writeTestEmblems(t, emblemDir)

	pipe := pipeline.New(layout.NewPlanner(badges, badge.NewEmblemSet(emblemDir)), render.New(f), 2)

	r := gin.New()
	RegisterRoutes(r, NewServer(pipe))
	return r
}

func upload(t *testing.T, router *gin.Engine, filename, contents, format string) *httptest.ResponseRecorder {
	t.Helper()
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte(contents))
		require.NoError(t, err)
	}
	if format != "" {
		require.NoError(t, mw.WriteField("format", format))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/generate", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	router := testRouter(t)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestGenerateValidation(t *testing.T) {
	router := testRouter(t)

	w := upload(t, router, "", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code, "no file")

	w = upload(t, router, "data.txt", "hello", "")
	assert.Equal(t, http.StatusBadRequest, w.Code, "not a csv")

	w = upload(t, router, "empty.csv", "First Name,Last Name,Den Type,Den Number,SKU,Item Type,Item Name\n", "")
	assert.Equal(t, http.StatusBadRequest, w.Code, "no data rows")

	w = upload(t, router, "orders.csv", sampleCSV, "gif")
	assert.Equal(t, http.StatusBadRequest, w.Code, "unknown format")
}

func TestGenerateZip(t *testing.T) {
	router := testRouter(t)
	w := upload(t, router, "orders.csv", sampleCSV, "zip")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/zip", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "orders_pres.zip")

	zr, err := zip.NewReader(bytes.NewReader(w.Body.Bytes()), int64(w.Body.Len()))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)
	// Sorted: lions before tigers.
	assert.Equal(t, "lions_Adams_Ann.png", zr.File[0].Name)
	assert.Equal(t, "tigers_Smith_Tom.png", zr.File[1].Name)

	rc, err := zr.File[0].Open()
	require.NoError(t, err)
	defer rc.Close()
	img, err := png.Decode(rc)
	require.NoError(t, err)
	assert.Equal(t, 1920, img.Bounds().Dx())
	assert.Equal(t, 1080, img.Bounds().Dy())
}

func TestGenerateDefaultsToPPTX(t *testing.T) {
	router := testRouter(t)
	w := upload(t, router, "orders.csv", sampleCSV, "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, pptxMIME, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "orders_pres.pptx")

	zr, err := zip.NewReader(bytes.NewReader(w.Body.Bytes()), int64(w.Body.Len()))
	require.NoError(t, err)
	names := map[string]bool{}
	for _, f := range zr.File {
		names[f.Name] = true
	}
	assert.True(t, names["ppt/presentation.xml"])
	assert.True(t, names["ppt/slides/slide1.xml"])
	assert.True(t, names["ppt/slides/slide2.xml"])
}

func TestQR(t *testing.T) {
	router := testRouter(t)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/qr?text=awardgen:deck/42&size=200", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	img, err := png.Decode(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
}
