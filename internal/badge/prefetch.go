package badge

import (
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/packforge/awardgen/internal/award"
)

// Prefetch resolves every unique SKU across the recipients ahead of
// rendering, bounding concurrent outbound fetches to workers. It returns
// the origin per SKU so callers can report what was downloaded versus
// stubbed with a placeholder.
func (r *Resolver) Prefetch(recipients []award.Recipient, size, workers int) map[string]Origin {
	seen := map[string]bool{}
	var skus []string
	for _, rec := range recipients {
		for _, a := range rec.Awards {
			if !seen[a.SKU] {
				seen[a.SKU] = true
				skus = append(skus, a.SKU)
			}
		}
	}
	sort.Strings(skus)

	if workers <= 0 {
		workers = 4
	}
	var g errgroup.Group
	g.SetLimit(workers)

	var mu sync.Mutex
	origins := make(map[string]Origin, len(skus))
	for _, sku := range skus {
		sku := sku
		g.Go(func() error {
			res := r.Resolve(sku, size)
			mu.Lock()
			origins[sku] = res.Origin
			mu.Unlock()
			return nil
		})
	}
	g.Wait()
	return origins
}
