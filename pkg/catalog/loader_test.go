package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"anilab-chat-be/pkg/taxonomy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadProducts(t *testing.T) {
	t.Run("json list", func(t *testing.T) {
		path := writeFile(t, "products.json", `[
			{"id":"a","title":"A","url":"https://shop.test/a","formats":["ground"],"goals":["sleep"],"caffeine":"no"},
			{"id":"b","title":"B"}
		]`)

		c, err := LoadProducts(path)
		require.NoError(t, err)
		require.Equal(t, 2, c.Len())

		p := c.Products()[0]
		assert.Equal(t, "a", p.ID)
		assert.True(t, p.HasFormat(taxonomy.FormatGround))
		assert.True(t, p.HasGoal(taxonomy.GoalSleep))
		assert.Equal(t, CaffeineNo, p.Caffeine)
		assert.False(t, c.Products()[1].HasURL())
	})

	t.Run("json object with products key", func(t *testing.T) {
		path := writeFile(t, "catalog.json", `{"products":[{"id":"a","url":"https://shop.test/a"}]}`)

		c, err := LoadProducts(path)
		require.NoError(t, err)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("yaml", func(t *testing.T) {
		path := writeFile(t, "products.yaml", `
- id: a
  title: A
  url: https://shop.test/a
  best_seller: true
  formats: [whole_bean]
`)

		c, err := LoadProducts(path)
		require.NoError(t, err)
		require.Equal(t, 1, c.Len())
		assert.True(t, c.Products()[0].BestSeller)
		assert.True(t, c.Products()[0].HasFormat(taxonomy.FormatWholeBean))
	})

	t.Run("missing file yields empty catalog", func(t *testing.T) {
		c, err := LoadProducts(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
		require.NotNil(t, c)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("malformed file yields empty catalog", func(t *testing.T) {
		c, err := LoadProducts(writeFile(t, "broken.json", `{"products": [`))
		assert.Error(t, err)
		require.NotNil(t, c)
		assert.Equal(t, 0, c.Len())
	})
}

func TestLoadFAQ(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		path := writeFile(t, "faq.json", `{"currency":"EUR","free_shipping_threshold":39,"cod_fee":1.5,"returns_url":"https://shop.test/returns"}`)

		faq, err := LoadFAQ(path)
		require.NoError(t, err)
		require.NotNil(t, faq.FreeShippingThreshold)
		assert.Equal(t, 39.0, *faq.FreeShippingThreshold)
		require.NotNil(t, faq.CODFee)
		assert.Equal(t, 1.5, *faq.CODFee)
		assert.Equal(t, "https://shop.test/returns", faq.ReturnsURL)
		assert.Empty(t, faq.ShippingURL)
	})

	t.Run("missing", func(t *testing.T) {
		faq, err := LoadFAQ(filepath.Join(t.TempDir(), "faq.json"))
		assert.Error(t, err)
		assert.Nil(t, faq)
	})

	t.Run("default currency", func(t *testing.T) {
		var faq *FAQ
		assert.Equal(t, "EUR", faq.CurrencyOrDefault())
		assert.Equal(t, "CZK", (&FAQ{Currency: "CZK"}).CurrencyOrDefault())
	})
}

func TestShippedSampleData(t *testing.T) {
	c, err := LoadProducts(filepath.Join("..", "..", "data", "products.json"))
	require.NoError(t, err)
	assert.Equal(t, 10, c.Len())

	for _, p := range c.Pick(ScoreContext{Message: "kapsule nespresso"}, 10) {
		assert.NotEmpty(t, p.URL, p.ID)
	}

	f, err := LoadFAQ(filepath.Join("..", "..", "data", "faq.json"))
	require.NoError(t, err)
	require.NotNil(t, f.CODFee)
	assert.Equal(t, 1.5, *f.CODFee)
}
