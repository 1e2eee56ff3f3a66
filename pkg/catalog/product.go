package catalog

import (
	"anilab-chat-be/pkg/taxonomy"
	"anilab-chat-be/pkg/textnorm"
)

const (
	CaffeineYes = "yes"
	CaffeineNo  = "no"
)

// Product is one catalog entry. Only products with a URL are recommendable.
type Product struct {
	ID         string            `json:"id" yaml:"id"`
	Title      string            `json:"title" yaml:"title"`
	URL        string            `json:"url" yaml:"url"`
	Pitch      string            `json:"pitch,omitempty" yaml:"pitch,omitempty"`
	Keywords   []string          `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Formats    []taxonomy.Format `json:"formats,omitempty" yaml:"formats,omitempty"`
	Goals      []taxonomy.Goal   `json:"goals,omitempty" yaml:"goals,omitempty"`
	BestSeller bool              `json:"best_seller,omitempty" yaml:"best_seller,omitempty"`
	Caffeine   string            `json:"caffeine,omitempty" yaml:"caffeine,omitempty"`
	Category   string            `json:"category,omitempty" yaml:"category,omitempty"`
}

func (p Product) HasURL() bool {
	return p.URL != ""
}

func (p Product) HasFormat(f taxonomy.Format) bool {
	for _, pf := range p.Formats {
		if pf == f {
			return true
		}
	}
	return false
}

func (p Product) HasGoal(g taxonomy.Goal) bool {
	for _, pg := range p.Goals {
		if pg == g {
			return true
		}
	}
	return false
}

// entry keeps the normalized matching fields next to the product.
type entry struct {
	product  Product
	index    int
	category string
	keywords []string
}

// Catalog is the immutable product list loaded at startup.
type Catalog struct {
	entries []entry
}

func New(products []Product) *Catalog {
	entries := make([]entry, 0, len(products))
	for i, p := range products {
		kws := make([]string, 0, len(p.Keywords))
		for _, kw := range p.Keywords {
			if n := textnorm.Normalize(kw); n != "" {
				kws = append(kws, n)
			}
		}
		entries = append(entries, entry{
			product:  p,
			index:    i,
			category: textnorm.Normalize(p.Category),
			keywords: kws,
		})
	}
	return &Catalog{entries: entries}
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Products returns a copy of the catalog in insertion order.
func (c *Catalog) Products() []Product {
	if c == nil {
		return nil
	}
	out := make([]Product, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e.product)
	}
	return out
}
