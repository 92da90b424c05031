package api

import (
	"archive/zip"
	"bytes"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/packforge/awardgen/internal/award"
	"github.com/packforge/awardgen/internal/deck"
	"github.com/packforge/awardgen/internal/pipeline"
)

const pptxMIME = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

// Server wires the generation pipeline into HTTP handlers.
type Server struct {
	Pipeline *pipeline.Pipeline
}

func NewServer(p *pipeline.Pipeline) *Server {
	return &Server{Pipeline: p}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// generate accepts a purchase-order CSV upload and returns either a PPTX
// deck (default) or a ZIP of per-recipient PNGs.
func (s *Server) generate(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}
	if !strings.EqualFold(filepath.Ext(file.Filename), ".csv") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file must be a .csv"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer src.Close()

	recipients, err := award.LoadCSV(src)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(recipients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no recipient data found in CSV"})
		return
	}

	res := s.Pipeline.Generate(c.Request.Context(), recipients)
	for id, rerr := range res.Errors {
		log.Printf("api: %s failed: %v", id, rerr)
	}
	if len(res.Images) == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "no certificates could be generated"})
		return
	}

	stem := strings.TrimSuffix(file.Filename, filepath.Ext(file.Filename))
	format := c.DefaultPostForm("format", "pptx")
	switch format {
	case "pptx":
		s.sendPPTX(c, recipients, res, stem)
	case "zip":
		s.sendZip(c, recipients, res, stem)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown format %q", format)})
	}
}

func (s *Server) sendPPTX(c *gin.Context, recipients []award.Recipient, res pipeline.Result, stem string) {
	var slides []deck.Slide
	for _, r := range recipients {
		if img, ok := res.Images[r.ID()]; ok {
			slides = append(slides, deck.Slide{Recipient: r, Image: img})
		}
	}
	data, err := deck.Assemble(slides)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s_pres.pptx", stem))
	c.Data(http.StatusOK, pptxMIME, data)
}

func (s *Server) sendZip(c *gin.Context, recipients []award.Recipient, res pipeline.Result, stem string) {
	ordered := make([]award.Recipient, len(recipients))
	copy(ordered, recipients)
	award.Sort(ordered)

	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	for _, r := range ordered {
		img, ok := res.Images[r.ID()]
		if !ok {
			continue
		}
		w, err := zw.Create(r.Filename())
		if err == nil {
			err = png.Encode(w, img)
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}
	if err := zw.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s_pres.zip", stem))
	c.Data(http.StatusOK, "application/zip", buf.Bytes())
}

// qr returns a PNG QR code for sharing a generated deck's download link.
func (s *Server) qr(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		text = "awardgen:share"
	}
	size := 400
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v > 0 {
		size = v
	}
	b, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}
