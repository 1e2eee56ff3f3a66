package faq

import (
	"testing"

	"anilab-chat-be/pkg/catalog"
	"anilab-chat-be/pkg/textnorm"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func fullFAQ() *catalog.FAQ {
	return &catalog.FAQ{
		Currency:              "EUR",
		FreeShippingThreshold: floatPtr(39),
		CODFee:                floatPtr(1.5),
		ShippingURL:           "https://shop.test/doprava",
		PaymentURL:            "https://shop.test/platba",
		ReturnsURL:            "https://shop.test/vratenie",
	}
}

func TestResolve(t *testing.T) {
	r := NewResolver(fullFAQ(), nil)

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"free shipping", "Od akej sumy je doprava zadarmo?", "Doprava je zadarmo pri objednávke nad 39 EUR. Viac o doprave: https://shop.test/doprava"},
		{"cod fee", "Koľko stojí dobierka?", "Poplatok za dobierku je 1,5 EUR."},
		{"shipping", "Koľko stojí doprava na Slovensko?", "Cenu a možnosti dopravy nájdeš tu: https://shop.test/doprava"},
		{"payment", "Dá sa platiť kartou?", "Možnosti platby nájdeš tu: https://shop.test/platba"},
		{"returns", "Ako môžem vrátiť tovar?", "Vrátenie tovaru a reklamácie: https://shop.test/vratenie"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Resolve(textnorm.Normalize(tt.message))
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveSkipsUnconfiguredTopics(t *testing.T) {
	f := fullFAQ()
	f.FreeShippingThreshold = nil
	r := NewResolver(f, nil)

	// Free-shipping topic matches but has no threshold, so the shipping topic answers.
	got, ok := r.Resolve(textnorm.Normalize("Je doprava zadarmo?"))
	assert.True(t, ok)
	assert.Equal(t, "Cenu a možnosti dopravy nájdeš tu: https://shop.test/doprava", got)

	r = NewResolver(&catalog.FAQ{}, nil)
	_, ok = r.Resolve(textnorm.Normalize("Koľko stojí doprava?"))
	assert.False(t, ok)
}

func TestResolveWithoutConfig(t *testing.T) {
	r := NewResolver(nil, nil)
	assert.False(t, r.Enabled())

	_, ok := r.Resolve(textnorm.Normalize("Koľko stojí doprava?"))
	assert.False(t, ok)
}

func TestResolveNoTopic(t *testing.T) {
	r := NewResolver(fullFAQ(), nil)
	_, ok := r.Resolve(textnorm.Normalize("Kedy príde moja objednávka?"))
	assert.False(t, ok)
}
