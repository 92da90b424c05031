package award

import (
	"encoding/json"
	"fmt"
	"os"
)

// CatalogEntry is one item of award_images.json.
type CatalogEntry struct {
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl400"`
}

// Catalog maps SKU to its badge-art source. Lookups are read-only.
type Catalog map[string]CatalogEntry

// LoadCatalog reads award_images.json and indexes its items by SKU.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc struct {
		Items []CatalogEntry `json:"items"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	c := make(Catalog, len(doc.Items))
	for _, item := range doc.Items {
		c[item.SKU] = item
	}
	return c, nil
}

// URL returns the remote art URL for a SKU, if the catalog knows one.
func (c Catalog) URL(sku string) (string, bool) {
	e, ok := c[sku]
	if !ok || e.ImageURL == "" {
		return "", false
	}
	return e.ImageURL, true
}
