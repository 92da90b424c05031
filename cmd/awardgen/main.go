// Command awardgen generates 1920x1080 award certificate PNGs, and
// optionally a PPTX deck, from a Scoutbook purchase-order CSV.
package main

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/packforge/awardgen/internal/award"
	"github.com/packforge/awardgen/internal/badge"
	"github.com/packforge/awardgen/internal/config"
	"github.com/packforge/awardgen/internal/deck"
	"github.com/packforge/awardgen/internal/fonts"
	"github.com/packforge/awardgen/internal/layout"
	"github.com/packforge/awardgen/internal/pipeline"
	"github.com/packforge/awardgen/internal/render"
	"github.com/packforge/awardgen/internal/util"
)

var (
	outputDir string
	pptxPath  string
)

var rootCmd = &cobra.Command{
	Use:   "awardgen purchase_order.csv",
	Short: "Generate award certificate images from a purchase-order CSV",
	Long: "awardgen renders one 1920x1080 certificate PNG per scout from a " +
		"Scoutbook purchase-order export, and can bundle them into a PPTX deck. " +
		"Required CSV columns: First Name, Last Name, Den Type, Den Number, SKU, " +
		"Item Type, Item Name.",
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func main() {
	_ = godotenv.Load()
	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "output", "directory to save generated PNGs")
	rootCmd.Flags().StringVarP(&pptxPath, "pptx", "p", "", "also generate a PowerPoint presentation with all slides")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	fmt.Println("Loading", cfg.CatalogPath, "...")
	catalog, err := award.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		fmt.Println("  Warning: no catalog, all art will be placeholders:", err)
		catalog = award.Catalog{}
	} else {
		fmt.Printf("  Loaded %d award image entries\n", len(catalog))
	}

	fmt.Println("Loading CSV:", args[0])
	recipients, err := award.LoadCSVFile(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("  Found %d recipients\n", len(recipients))

	store, err := badge.NewDirStore(cfg.CacheDir)
	if err != nil {
		return err
	}
	fontRes := fonts.NewResolver()
	badges := badge.NewResolver(store, catalog, fontRes, cfg.FetchTimeout)
	emblems := badge.NewEmblemSet(cfg.AssetsDir)

	fmt.Println("Downloading/caching badge images...")
	origins := badges.Prefetch(recipients, layout.ResolveSize, cfg.Workers)
	for sku, origin := range origins {
		if origin == badge.OriginPlaceholder {
			fmt.Printf("  SKU %s: no usable image source, generated placeholder\n", sku)
		}
	}

	if err := util.EnsureDir(outputDir); err != nil {
		return err
	}

	pipe := pipeline.New(layout.NewPlanner(badges, emblems), render.New(fontRes), cfg.Workers)
	award.Sort(recipients)
	res := pipe.Generate(context.Background(), recipients)

	fmt.Printf("Generating certificate images in %s/...\n", outputDir)
	var slides []deck.Slide
	for _, r := range recipients {
		img, ok := res.Images[r.ID()]
		if !ok {
			fmt.Printf("  Skipped %s: %v\n", r.FullName(), res.Errors[r.ID()])
			continue
		}
		out, err := os.Create(filepath.Join(outputDir, r.Filename()))
		if err != nil {
			return err
		}
		err = png.Encode(out, img)
		out.Close()
		if err != nil {
			return err
		}
		fmt.Printf("  %s (%d awards)\n", r.Filename(), len(r.Awards))
		slides = append(slides, deck.Slide{Recipient: r, Image: img})
	}
	fmt.Printf("\nDone! Generated %d images in %s/\n", len(slides), outputDir)

	if pptxPath != "" {
		fmt.Println("Generating PowerPoint:", pptxPath, "...")
		data, err := deck.Assemble(slides)
		if err != nil {
			return err
		}
		if err := os.WriteFile(pptxPath, data, 0o644); err != nil {
			return err
		}
		fmt.Printf("  %d slides written.\n", len(slides))
	}
	return nil
}
