package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/packforge/awardgen/internal/api"
	"github.com/packforge/awardgen/internal/award"
	"github.com/packforge/awardgen/internal/badge"
	"github.com/packforge/awardgen/internal/config"
	"github.com/packforge/awardgen/internal/fonts"
	"github.com/packforge/awardgen/internal/layout"
	"github.com/packforge/awardgen/internal/pipeline"
	"github.com/packforge/awardgen/internal/render"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	// Catalog load is best-effort: unknown SKUs fall back to placeholders.
	catalog, err := award.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		log.Println("Warning: failed to load award catalog at startup:", err)
		catalog = award.Catalog{}
	}

	store, err := badge.NewDirStore(cfg.CacheDir)
	if err != nil {
		log.Fatal("cache dir:", err)
	}

	fontRes := fonts.NewResolver()
	badges := badge.NewResolver(store, catalog, fontRes, cfg.FetchTimeout)
	emblems := badge.NewEmblemSet(cfg.AssetsDir)

	pipe := pipeline.New(layout.NewPlanner(badges, emblems), render.New(fontRes), cfg.Workers)

	r := gin.Default()
	api.RegisterRoutes(r, api.NewServer(pipe))

	log.Println("starting server on http://localhost:" + cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
