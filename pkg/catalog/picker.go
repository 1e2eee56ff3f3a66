package catalog

import (
	"sort"

	"anilab-chat-be/pkg/taxonomy"
)

const DefaultLimit = 3

// Ranked is a product with its score, as produced by Rank.
type Ranked struct {
	Product   Product
	Index     int
	Breakdown Breakdown
}

// Rank scores every product and sorts by score descending.
// Ties keep catalog insertion order.
func (c *Catalog) Rank(sc ScoreContext) []Ranked {
	if c == nil {
		return nil
	}

	ranked := make([]Ranked, 0, len(c.entries))
	for i, e := range c.entries {
		ranked = append(ranked, Ranked{
			Product:   e.product,
			Index:     e.index,
			Breakdown: c.score(i, sc),
		})
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		if ranked[a].Breakdown.Total != ranked[b].Breakdown.Total {
			return ranked[a].Breakdown.Total > ranked[b].Breakdown.Total
		}
		return ranked[a].Index < ranked[b].Index
	})
	return ranked
}

// Pick selects up to limit recommendable products. It never fails; the
// result is empty only when no product in the catalog has a URL.
//
// Order of preference:
//  1. preferred physical format set: products carrying that format
//  2. caffeine-free preference: products with caffeine "no"
//  3. products with a positive score
//  4. best sellers
//  5. first products in catalog order
func (c *Catalog) Pick(sc ScoreContext, limit int) []Product {
	if c.Len() == 0 {
		return nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	ranked := c.Rank(sc)

	switch {
	case sc.Format.IsPhysical():
		if out := take(ranked, limit, func(r Ranked) bool { return r.Product.HasFormat(sc.Format) }); len(out) > 0 {
			return out
		}
	case sc.Format == taxonomy.FormatCaffeineFree:
		if out := take(ranked, limit, func(r Ranked) bool { return r.Product.Caffeine == CaffeineNo }); len(out) > 0 {
			return out
		}
	}

	if out := take(ranked, limit, func(r Ranked) bool { return r.Breakdown.Total > 0 }); len(out) > 0 {
		return out
	}

	if out := take(ranked, limit, func(r Ranked) bool { return r.Product.BestSeller }); len(out) > 0 {
		return out
	}

	// Catalog order, not score order.
	out := make([]Product, 0, limit)
	for _, e := range c.entries {
		if len(out) == limit {
			break
		}
		if e.product.HasURL() {
			out = append(out, e.product)
		}
	}
	return out
}

func take(ranked []Ranked, limit int, keep func(Ranked) bool) []Product {
	out := make([]Product, 0, limit)
	for _, r := range ranked {
		if len(out) == limit {
			break
		}
		if r.Product.HasURL() && keep(r) {
			out = append(out, r.Product)
		}
	}
	return out
}
