// Package pipeline is the synchronous entry point: recipients in,
// per-recipient certificate images out.
package pipeline

import (
	"context"
	"image"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/packforge/awardgen/internal/award"
	"github.com/packforge/awardgen/internal/layout"
	"github.com/packforge/awardgen/internal/render"
)

type Pipeline struct {
	Planner  *layout.Planner
	Renderer *render.Renderer

	// Workers bounds concurrent renders (and with them, concurrent
	// outbound art fetches). Zero means a small default pool.
	Workers int
}

func New(planner *layout.Planner, renderer *render.Renderer, workers int) *Pipeline {
	return &Pipeline{Planner: planner, Renderer: renderer, Workers: workers}
}

// Result carries successes and failures side by side: one bad recipient
// never blocks the rest of the batch.
type Result struct {
	Images map[string]image.Image
	Errors map[string]error
}

// Generate plans and renders every recipient, keyed by recipient ID.
// Recipients are independent; the resolver caches are the only shared
// state and synchronize internally.
func (p *Pipeline) Generate(ctx context.Context, recipients []award.Recipient) Result {
	workers := p.Workers
	if workers <= 0 {
		workers = 4
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var mu sync.Mutex
	res := Result{
		Images: make(map[string]image.Image, len(recipients)),
		Errors: make(map[string]error),
	}

	for _, r := range recipients {
		r := r
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return nil
			}
			plan, err := p.Planner.Plan(r)
			if err != nil {
				log.Printf("pipeline: skipping %s: %v", r.ID(), err)
				mu.Lock()
				res.Errors[r.ID()] = err
				mu.Unlock()
				return nil
			}
			img := p.Renderer.Render(plan)
			mu.Lock()
			res.Images[r.ID()] = img
			mu.Unlock()
			return nil
		})
	}
	g.Wait()
	return res
}
