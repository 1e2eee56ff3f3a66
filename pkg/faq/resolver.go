// FILE: pkg/faq/resolver.go
// PURPOSE: Deterministic answers for logistics questions. This path never
// consults the product ranking or a language model.

package faq

import (
	"fmt"
	"strconv"
	"strings"

	"anilab-chat-be/pkg/catalog"
	"anilab-chat-be/pkg/taxonomy"
	"anilab-chat-be/pkg/textnorm"
)

type Resolver struct {
	faq    *catalog.FAQ
	topics []taxonomy.FAQKeywords
}

func NewResolver(faq *catalog.FAQ, tax *taxonomy.Taxonomy) *Resolver {
	if tax == nil {
		tax = taxonomy.Default()
	}
	return &Resolver{faq: faq, topics: tax.FAQ}
}

// Enabled reports whether an FAQ config was loaded.
func (r *Resolver) Enabled() bool {
	return r != nil && r.faq != nil
}

// Resolve returns a templated answer for the first topic that both matches
// the normalized message and has its config value populated.
func (r *Resolver) Resolve(norm string) (string, bool) {
	if !r.Enabled() {
		return "", false
	}

	for _, topic := range r.topics {
		if !textnorm.ContainsAny(norm, topic.Keywords) {
			continue
		}
		if answer, ok := r.answer(topic.Topic); ok {
			return answer, true
		}
	}
	return "", false
}

func (r *Resolver) answer(topic taxonomy.FAQTopic) (string, bool) {
	f := r.faq
	currency := f.CurrencyOrDefault()

	switch topic {
	case taxonomy.TopicFreeShipping:
		if f.FreeShippingThreshold == nil {
			return "", false
		}
		answer := fmt.Sprintf("Doprava je zadarmo pri objednávke nad %s %s.", formatAmount(*f.FreeShippingThreshold), currency)
		if f.ShippingURL != "" {
			answer += " Viac o doprave: " + f.ShippingURL
		}
		return answer, true

	case taxonomy.TopicCODFee:
		if f.CODFee == nil {
			return "", false
		}
		return fmt.Sprintf("Poplatok za dobierku je %s %s.", formatAmount(*f.CODFee), currency), true

	case taxonomy.TopicShipping:
		if f.ShippingURL == "" {
			return "", false
		}
		return "Cenu a možnosti dopravy nájdeš tu: " + f.ShippingURL, true

	case taxonomy.TopicPayment:
		if f.PaymentURL == "" {
			return "", false
		}
		return "Možnosti platby nájdeš tu: " + f.PaymentURL, true

	case taxonomy.TopicReturns:
		if f.ReturnsURL == "" {
			return "", false
		}
		return "Vrátenie tovaru a reklamácie: " + f.ReturnsURL, true
	}

	return "", false
}

// formatAmount renders 39 as "39" and 1.5 as "1,5".
func formatAmount(v float64) string {
	return strings.Replace(strconv.FormatFloat(v, 'f', -1, 64), ".", ",", 1)
}
