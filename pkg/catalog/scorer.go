// FILE: pkg/catalog/scorer.go
// PURPOSE: Additive product scoring with a per-signal breakdown

package catalog

import (
	"strings"

	"anilab-chat-be/pkg/taxonomy"
)

const (
	WeightCategory       = 8
	WeightGoal           = 10
	WeightKeyword        = 2
	WeightCaffeineFree   = 15
	WeightCaffeinated    = -6
	WeightFormatMatch    = 25
	WeightFormatMismatch = -12
	WeightBestSeller     = 2
	WeightNoURL          = -100
)

const (
	SignalCategory       = "category"
	SignalGoal           = "goal"
	SignalKeyword        = "keyword"
	SignalCaffeineFree   = "caffeine_free"
	SignalCaffeinated    = "caffeinated"
	SignalFormatMatch    = "format_match"
	SignalFormatMismatch = "format_mismatch"
	SignalBestSeller     = "best_seller"
	SignalNoURL          = "no_url"
)

// ScoreContext is what the scorer knows about the current turn.
// Message must be normalized.
type ScoreContext struct {
	Message string
	Goal    taxonomy.Goal
	Format  taxonomy.Format
}

type Signal struct {
	Name   string `json:"name"`
	Detail string `json:"detail,omitempty"`
	Weight int    `json:"weight"`
}

// Breakdown lists every contributing signal; Total is their sum.
type Breakdown struct {
	Total   int      `json:"total"`
	Signals []Signal `json:"signals"`
}

func (b *Breakdown) add(name, detail string, weight int) {
	b.Signals = append(b.Signals, Signal{Name: name, Detail: detail, Weight: weight})
	b.Total += weight
}

// Score computes the breakdown for a single product.
func Score(p Product, sc ScoreContext) Breakdown {
	return New([]Product{p}).score(0, sc)
}

func (c *Catalog) score(i int, sc ScoreContext) Breakdown {
	e := c.entries[i]
	p := e.product
	var b Breakdown

	if e.category != "" && strings.Contains(sc.Message, e.category) {
		b.add(SignalCategory, e.category, WeightCategory)
	}

	if sc.Goal != "" && p.HasGoal(sc.Goal) {
		b.add(SignalGoal, string(sc.Goal), WeightGoal)
	}

	for _, kw := range e.keywords {
		if strings.Contains(sc.Message, kw) {
			b.add(SignalKeyword, kw, WeightKeyword)
		}
	}

	switch {
	case sc.Format == taxonomy.FormatCaffeineFree:
		switch p.Caffeine {
		case CaffeineNo:
			b.add(SignalCaffeineFree, "", WeightCaffeineFree)
		case CaffeineYes:
			b.add(SignalCaffeinated, "", WeightCaffeinated)
		}
	case sc.Format.IsPhysical():
		if p.HasFormat(sc.Format) {
			b.add(SignalFormatMatch, string(sc.Format), WeightFormatMatch)
		} else {
			b.add(SignalFormatMismatch, string(sc.Format), WeightFormatMismatch)
		}
	}

	if p.BestSeller {
		b.add(SignalBestSeller, "", WeightBestSeller)
	}

	if !p.HasURL() {
		b.add(SignalNoURL, "", WeightNoURL)
	}

	return b
}
