package reply

import (
	"strings"

	"anilab-chat-be/pkg/catalog"
)

const bullet = "• "

// Draft is the deterministic reply before any cosmetic rewrite.
type Draft struct {
	Intro    string
	Products []catalog.Product
	Question string
	Closing  string
}

// URLs lists the product URLs the draft links to.
func (d Draft) URLs() []string {
	urls := make([]string, 0, len(d.Products))
	for _, p := range d.Products {
		if p.URL != "" {
			urls = append(urls, p.URL)
		}
	}
	return urls
}

// Format renders intro, products, question and closing separated by blank
// lines. Empty sections are omitted.
func Format(d Draft) string {
	sections := make([]string, 0, 4)

	if s := strings.TrimSpace(d.Intro); s != "" {
		sections = append(sections, s)
	}
	if block := productBlock(d.Products); block != "" {
		sections = append(sections, block)
	}
	if s := strings.TrimSpace(d.Question); s != "" {
		sections = append(sections, s)
	}
	if s := strings.TrimSpace(d.Closing); s != "" {
		sections = append(sections, s)
	}

	return strings.Join(sections, "\n\n")
}

func productBlock(products []catalog.Product) string {
	lines := make([]string, 0, len(products))
	for _, p := range products {
		var b strings.Builder
		b.WriteString(bullet)
		b.WriteString(strings.TrimSpace(p.Title))
		if p.URL != "" {
			b.WriteString("\n  ")
			b.WriteString(p.URL)
		}
		if pitch := strings.TrimSpace(p.Pitch); pitch != "" {
			b.WriteString("\n  ")
			b.WriteString(pitch)
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}
