package catalog

import (
	"testing"

	"anilab-chat-be/pkg/taxonomy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureProducts() []Product {
	return []Product{
		{
			ID: "espresso", Title: "Espresso zrnková", URL: "https://shop.test/espresso",
			Keywords: []string{"espresso", "zrnková"}, Formats: []taxonomy.Format{taxonomy.FormatWholeBean},
			Goals: []taxonomy.Goal{taxonomy.GoalEnergy}, Caffeine: CaffeineYes, Category: "káva", BestSeller: true,
		},
		{
			ID: "ranna", Title: "Ranná mletá", URL: "https://shop.test/ranna",
			Keywords: []string{"ranná"}, Formats: []taxonomy.Format{taxonomy.FormatGround},
			Goals: []taxonomy.Goal{taxonomy.GoalEnergy, taxonomy.GoalFocus}, Caffeine: CaffeineYes, Category: "káva",
		},
		{
			ID: "vecerna", Title: "Večerná decaf", URL: "https://shop.test/vecerna",
			Keywords: []string{"decaf", "večer"}, Formats: []taxonomy.Format{taxonomy.FormatGround},
			Goals: []taxonomy.Goal{taxonomy.GoalSleep, taxonomy.GoalStress}, Caffeine: CaffeineNo, Category: "káva",
		},
		{
			ID: "reishi", Title: "Reishi instant", URL: "https://shop.test/reishi",
			Keywords: []string{"reishi"}, Formats: []taxonomy.Format{taxonomy.FormatInstant},
			Goals: []taxonomy.Goal{taxonomy.GoalSleep, taxonomy.GoalImmunity}, Caffeine: CaffeineNo, Category: "huby",
		},
		{
			ID: "ghost", Title: "Bez odkazu",
			Keywords: []string{"spánok", "decaf", "večer", "reishi", "káva", "kávu", "mletá", "keto"},
			Formats:  []taxonomy.Format{taxonomy.FormatGround, taxonomy.FormatWholeBean, taxonomy.FormatInstant},
			Goals:    []taxonomy.Goal{taxonomy.GoalSleep, taxonomy.GoalKeto, taxonomy.GoalEnergy},
			Caffeine: CaffeineNo, Category: "káva", BestSeller: true,
		},
		{
			ID: "keto", Title: "Keto bomb", URL: "https://shop.test/keto",
			Keywords: []string{"keto"}, Formats: []taxonomy.Format{taxonomy.FormatInstant},
			Goals: []taxonomy.Goal{taxonomy.GoalKeto}, Category: "doplnky",
		},
	}
}

func ids(products []Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func signalNames(b Breakdown) []string {
	out := make([]string, 0, len(b.Signals))
	for _, s := range b.Signals {
		out = append(out, s.Name)
	}
	return out
}

func TestScoreBreakdown(t *testing.T) {
	products := fixtureProducts()

	t.Run("caffeine free with goal, category and keywords", func(t *testing.T) {
		b := Score(products[2], ScoreContext{
			Message: "decaf kava na vecer",
			Goal:    taxonomy.GoalSleep,
			Format:  taxonomy.FormatCaffeineFree,
		})
		assert.Equal(t, 8+10+2+2+15, b.Total)
		assert.Equal(t, []string{SignalCategory, SignalGoal, SignalKeyword, SignalKeyword, SignalCaffeineFree}, signalNames(b))
	})

	t.Run("caffeinated product under caffeine free preference", func(t *testing.T) {
		b := Score(products[1], ScoreContext{Format: taxonomy.FormatCaffeineFree})
		assert.Equal(t, WeightCaffeinated, b.Total)
	})

	t.Run("unspecified caffeine is neutral", func(t *testing.T) {
		b := Score(products[5], ScoreContext{Format: taxonomy.FormatCaffeineFree})
		assert.Equal(t, 0, b.Total)
		assert.Empty(t, b.Signals)
	})

	t.Run("physical format mismatch with best seller", func(t *testing.T) {
		b := Score(products[0], ScoreContext{Format: taxonomy.FormatGround})
		assert.Equal(t, WeightFormatMismatch+WeightBestSeller, b.Total)
		assert.Equal(t, []string{SignalFormatMismatch, SignalBestSeller}, signalNames(b))
	})

	t.Run("physical format match", func(t *testing.T) {
		b := Score(products[1], ScoreContext{Format: taxonomy.FormatGround})
		assert.Equal(t, WeightFormatMatch, b.Total)
	})

	t.Run("missing url is disqualifying", func(t *testing.T) {
		b := Score(products[4], ScoreContext{})
		assert.Equal(t, WeightBestSeller+WeightNoURL, b.Total)
		assert.Contains(t, signalNames(b), SignalNoURL)
	})
}

func TestRankTieBreakKeepsCatalogOrder(t *testing.T) {
	c := New(fixtureProducts())

	ranked := c.Rank(ScoreContext{})
	got := make([]string, 0, len(ranked))
	for _, r := range ranked {
		got = append(got, r.Product.ID)
	}

	assert.Equal(t, []string{"espresso", "ranna", "vecerna", "reishi", "keto", "ghost"}, got)
}

func TestPick(t *testing.T) {
	c := New(fixtureProducts())

	tests := []struct {
		name string
		ctx  ScoreContext
		want []string
	}{
		{
			name: "physical format is a hard filter",
			ctx:  ScoreContext{Message: "mletu kavu", Format: taxonomy.FormatGround},
			want: []string{"ranna", "vecerna"},
		},
		{
			name: "caffeine free keeps only caffeine free products",
			ctx:  ScoreContext{Message: "chcem kavu bez kofeinu", Format: taxonomy.FormatCaffeineFree},
			want: []string{"vecerna", "reishi"},
		},
		{
			name: "positive scores only",
			ctx:  ScoreContext{Message: "nieco na keto", Goal: taxonomy.GoalKeto},
			want: []string{"keto", "espresso"},
		},
		{
			name: "goal ranking",
			ctx:  ScoreContext{Message: "na spanok", Goal: taxonomy.GoalSleep},
			want: []string{"vecerna", "reishi", "espresso"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(c.Pick(tt.ctx, 3)))
		})
	}
}

func TestPickFallbacks(t *testing.T) {
	t.Run("best sellers when nothing scores positive", func(t *testing.T) {
		c := New([]Product{
			{ID: "a", URL: "https://shop.test/a", Formats: []taxonomy.Format{taxonomy.FormatGround}, BestSeller: true},
			{ID: "b", URL: "https://shop.test/b", Formats: []taxonomy.Format{taxonomy.FormatGround}},
		})
		got := c.Pick(ScoreContext{Format: taxonomy.FormatWholeBean}, 3)
		assert.Equal(t, []string{"a"}, ids(got))
	})

	t.Run("first products with url as last resort", func(t *testing.T) {
		c := New([]Product{
			{ID: "x", Formats: []taxonomy.Format{taxonomy.FormatGround}},
			{ID: "c", URL: "https://shop.test/c", Formats: []taxonomy.Format{taxonomy.FormatGround}},
			{ID: "d", URL: "https://shop.test/d", Formats: []taxonomy.Format{taxonomy.FormatGround}},
		})
		got := c.Pick(ScoreContext{Format: taxonomy.FormatWholeBean}, 3)
		assert.Equal(t, []string{"c", "d"}, ids(got))
	})

	t.Run("limit defaults when not positive", func(t *testing.T) {
		c := New(fixtureProducts())
		got := c.Pick(ScoreContext{Goal: taxonomy.GoalSleep}, 0)
		assert.Len(t, got, DefaultLimit)
	})

	t.Run("empty catalog", func(t *testing.T) {
		assert.Empty(t, New(nil).Pick(ScoreContext{Message: "kava"}, 3))
		var nilCatalog *Catalog
		assert.Empty(t, nilCatalog.Pick(ScoreContext{}, 3))
	})
}

// Products without a URL must never be recommended, whatever the context.
func TestPickNeverReturnsProductsWithoutURL(t *testing.T) {
	c := New(fixtureProducts())

	messages := []string{"", "decaf vecer reishi kava kavu mleta keto spanok", "espresso"}
	goals := []taxonomy.Goal{"", taxonomy.GoalSleep, taxonomy.GoalKeto, taxonomy.GoalEnergy}
	formats := []taxonomy.Format{"", taxonomy.FormatGround, taxonomy.FormatWholeBean, taxonomy.FormatInstant, taxonomy.FormatCaffeineFree}

	for _, m := range messages {
		for _, g := range goals {
			for _, f := range formats {
				for _, limit := range []int{1, 3, 10} {
					for _, p := range c.Pick(ScoreContext{Message: m, Goal: g, Format: f}, limit) {
						require.NotEmpty(t, p.URL, "msg=%q goal=%q format=%q picked %s", m, g, f, p.ID)
					}
				}
			}
		}
	}
}
