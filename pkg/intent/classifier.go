// FILE: pkg/intent/classifier.go
// PURPOSE: Keyword based intent routing with an explicit, ordered rule list

package intent

import (
	"anilab-chat-be/pkg/taxonomy"
	"anilab-chat-be/pkg/textnorm"
)

type Intent string

const (
	OrderHelp     Intent = "order_help"
	ProductSearch Intent = "product_search"
	BenefitGoal   Intent = "benefit_goal"
	General       Intent = "general"
)

// Rule pairs a predicate over normalized text with the intent it yields.
type Rule struct {
	Intent Intent
	Match  func(norm string) bool
}

// Classifier evaluates rules in order; the first match wins.
type Classifier struct {
	tax   *taxonomy.Taxonomy
	rules []Rule
}

func NewClassifier(tax *taxonomy.Taxonomy) *Classifier {
	if tax == nil {
		tax = taxonomy.Default()
	}

	c := &Classifier{tax: tax}
	c.rules = []Rule{
		{Intent: OrderHelp, Match: func(norm string) bool {
			return textnorm.ContainsAny(norm, tax.OrderHelp)
		}},
		{Intent: ProductSearch, Match: func(norm string) bool {
			return textnorm.ContainsAny(norm, tax.ProductSearch)
		}},
		{Intent: BenefitGoal, Match: func(norm string) bool {
			_, ok := c.ExtractGoal(norm)
			return ok
		}},
	}
	return c
}

// Rules returns the evaluation order.
func (c *Classifier) Rules() []Rule {
	return c.rules
}

// Classify expects text already passed through textnorm.Normalize.
func (c *Classifier) Classify(norm string) Intent {
	for _, r := range c.rules {
		if r.Match(norm) {
			return r.Intent
		}
	}
	return General
}

// ExtractGoal returns the first goal whose keywords appear in the text.
func (c *Classifier) ExtractGoal(norm string) (taxonomy.Goal, bool) {
	for _, g := range c.tax.Goals {
		if textnorm.ContainsAny(norm, g.Keywords) {
			return g.Goal, true
		}
	}
	return "", false
}

// ExtractFormat returns the first preferred format triggered by the text.
func (c *Classifier) ExtractFormat(norm string) (taxonomy.Format, bool) {
	for _, f := range c.tax.Formats {
		if textnorm.ContainsAny(norm, f.Keywords) {
			return f.Format, true
		}
	}
	return "", false
}
