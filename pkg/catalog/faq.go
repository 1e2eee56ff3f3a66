package catalog

// FAQ holds the logistics facts the FAQ resolver may quote.
// Nil pointers mean "not configured" so a zero fee stays distinguishable.
type FAQ struct {
	Currency              string   `json:"currency" yaml:"currency"`
	FreeShippingThreshold *float64 `json:"free_shipping_threshold,omitempty" yaml:"free_shipping_threshold,omitempty"`
	CODFee                *float64 `json:"cod_fee,omitempty" yaml:"cod_fee,omitempty"`
	ShippingURL           string   `json:"shipping_url,omitempty" yaml:"shipping_url,omitempty"`
	PaymentURL            string   `json:"payment_url,omitempty" yaml:"payment_url,omitempty"`
	ReturnsURL            string   `json:"returns_url,omitempty" yaml:"returns_url,omitempty"`
}

func (f *FAQ) CurrencyOrDefault() string {
	if f == nil || f.Currency == "" {
		return "EUR"
	}
	return f.Currency
}
