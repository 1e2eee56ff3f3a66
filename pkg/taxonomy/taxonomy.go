// FILE: pkg/taxonomy/taxonomy.go
// PURPOSE: Static keyword tables for goals, formats, intents, B2B and FAQ topics.
// All keywords are stored pre-normalized (lowercase, no diacritics) because
// every lookup runs against textnorm.Normalize output.

package taxonomy

type Goal string

const (
	GoalSleep        Goal = "sleep"
	GoalStress       Goal = "stress"
	GoalEnergy       Goal = "energy"
	GoalFocus        Goal = "focus"
	GoalImmunity     Goal = "immunity"
	GoalKeto         Goal = "keto"
	GoalProtein      Goal = "protein"
	GoalTestosterone Goal = "testosterone"
	GoalCBD          Goal = "cbd"
)

type Format string

const (
	FormatWholeBean    Format = "whole_bean"
	FormatGround       Format = "ground"
	FormatInstant      Format = "instant"
	FormatCaffeineFree Format = "caffeine_free"
)

// IsPhysical is true for formats that describe the product form
// (as opposed to the caffeine-free variant).
func (f Format) IsPhysical() bool {
	return f == FormatWholeBean || f == FormatGround || f == FormatInstant
}

type FAQTopic string

const (
	TopicFreeShipping FAQTopic = "free_shipping"
	TopicCODFee       FAQTopic = "cod_fee"
	TopicShipping     FAQTopic = "shipping"
	TopicPayment      FAQTopic = "payment"
	TopicReturns      FAQTopic = "returns"
)

type GoalKeywords struct {
	Goal     Goal
	Keywords []string
}

type FormatKeywords struct {
	Format   Format
	Keywords []string
}

type FAQKeywords struct {
	Topic    FAQTopic
	Keywords []string
}

// BusinessType maps free-text answers to a canonical lead type label.
type BusinessType struct {
	Label    string
	Keywords []string
}

// Taxonomy groups every keyword table. Slices are ordered: the first match wins.
type Taxonomy struct {
	Goals         []GoalKeywords
	Formats       []FormatKeywords
	OrderHelp     []string
	ProductSearch []string
	B2BTriggers   []string
	BusinessTypes []BusinessType
	FAQ           []FAQKeywords
}

const (
	BusinessPrivateLabel = "Private label"
	BusinessWholesale    = "Wholesale / reseller"
	BusinessDistribution = "Distribution"
)

// Default returns the built-in shop taxonomy.
func Default() *Taxonomy {
	return &Taxonomy{
		Goals: []GoalKeywords{
			{GoalSleep, []string{"spanok", "spank", " spat ", "zaspav", "nespavost", "sleep", "insomn"}},
			{GoalStress, []string{"stres", "uzkost", "nervoz", "upokoj", "relax", "anxiety", "calm"}},
			{GoalEnergy, []string{"energi", "unav", "povzbud", "nakopn", "energy", "tired", "fatigue"}},
			{GoalFocus, []string{"sustred", "koncentr", "focus", "pamat", "produktiv", "memory"}},
			{GoalImmunity, []string{"imunit", "immun", "chrip", "nachlad", "odolnost"}},
			{GoalKeto, []string{"keto", "low carb", "nizkosachar"}},
			{GoalProtein, []string{"protein", "bielkovin", "sval"}},
			{GoalTestosterone, []string{"testosteron", "libido"}},
			{GoalCBD, []string{"cbd", "konop", "hemp"}},
		},
		// caffeine_free first: "bez kofeinu" must win over any form word in the same message
		Formats: []FormatKeywords{
			{FormatCaffeineFree, []string{"bez kofeinu", "bezkofein", "decaf", "caffeine free", "caffeine-free", "no caffeine", "without caffeine"}},
			{FormatInstant, []string{"instant", "rozpust"}},
			{FormatGround, []string{"mlet", "ground"}},
			{FormatWholeBean, []string{"zrnk", "whole bean", "beans"}},
		},
		OrderHelp: []string{
			"doprav", "postovn", "dobierk", "platb", "zaplat", "platit",
			"vratenie", "vratit", "reklamac", "odstupen", "objednavk", "dorucen",
			"kurier", "balik", "kedy pride", "shipping", "delivery", "payment",
			"refund", "return", "order status",
		},
		ProductSearch: []string{
			"kav", "kapsul", "caj", "produkt", "odporuc", "hladam", "chcem",
			"potrebujem", "huby", "hubov", "coffee", " tea ", "capsule", "recommend",
			"mushroom", "zrnk", "mlet", "instant", "rozpust", "bez kofeinu", "decaf",
		},
		B2BTriggers: []string{
			"velkoobchod", "wholesale", "distribuc", "distribut", "private label",
			"privatny label", "privatna znacka", "vlastna znacka", "vlastnu znacku", "white label",
			"moq", "minimalny odber", "minimalne mnozstvo", "faktur", "ic dph", "dph",
			"vat id", "vat number", "b2b", "reseller", "preprodaj", "pre nasu firmu",
		},
		BusinessTypes: []BusinessType{
			{BusinessPrivateLabel, []string{"private", "privat", "znack", "white label"}},
			{BusinessWholesale, []string{"velkoobchod", "wholesale", "reseller", "preprodaj", "eshop", "e-shop", "obchod", "predajn", "kaviaren", "cafe"}},
			{BusinessDistribution, []string{"distribuc", "distribut", "dovoz", "import"}},
		},
		FAQ: []FAQKeywords{
			{TopicFreeShipping, []string{"zadarmo", "free shipping", "bez postovneho", "od akej sumy", "od kolko"}},
			{TopicCODFee, []string{"dobierk", "cash on delivery", "cod fee"}},
			{TopicShipping, []string{"doprav", "postovn", "shipping", "delivery", "dorucen", "kurier", "balik"}},
			{TopicPayment, []string{"platb", "platit", "zaplat", "payment", "kartou", "prevodom"}},
			{TopicReturns, []string{"vratenie", "vratit", "reklamac", "odstupen", "refund", "return"}},
		},
	}
}
