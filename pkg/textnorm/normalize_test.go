package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", "   \t\n", ""},
		{"slovak diacritics", "Chcem kávu bez kofeínu", "chcem kavu bez kofeinu"},
		{"soft signs", "Ľúbostná ťava ďaleko", "lubostna tava daleko"},
		{"trim", "  Spánok  ", "spanok"},
		{"ascii untouched", "whole bean", "whole bean"},
		{"double space", "bez  kofeínu", "bez kofeinu"},
		{"line break", "bez\nkofeínu", "bez kofeinu"},
		{"mixed whitespace", "private \t\r\n label", "private label"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestContainsAny(t *testing.T) {
	text := Normalize("Kedy príde moja objednávka?")

	assert.True(t, ContainsAny(text, []string{"xyz", "objednavk"}))
	assert.False(t, ContainsAny(text, []string{"doprava", "platba"}))
	assert.False(t, ContainsAny(text, []string{""}), "empty keyword never matches")
	assert.False(t, ContainsAny(text, nil))
}

func TestContainsAnyWholeWordKeyword(t *testing.T) {
	kws := []string{" tea "}

	assert.True(t, ContainsAny("tea", kws))
	assert.True(t, ContainsAny("green tea please", kws))
	assert.True(t, ContainsAny("i want tea", kws))
	assert.False(t, ContainsAny("our team is great", kws))
	assert.False(t, ContainsAny("instead of coffee", kws))
}

func TestFirstMatch(t *testing.T) {
	kw, ok := FirstMatch("kava na spanok a energiu", []string{"energi", "spanok"})
	assert.True(t, ok)
	assert.Equal(t, "energi", kw)

	_, ok = FirstMatch("kava", []string{"caj"})
	assert.False(t, ok)
}
