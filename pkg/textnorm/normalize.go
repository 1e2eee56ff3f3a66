// FILE: pkg/textnorm/normalize.go
// PURPOSE: Canonical form for keyword matching (lowercase, no diacritics)

package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize folds text to lowercase, strips combining marks and collapses
// runs of whitespace to one space, so "Kávu BEZ\n kofeínu " becomes
// "kavu bez kofeinu".
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		// Invalid UTF-8 input still gets lowercased
		folded = s
	}

	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

// ContainsAny reports whether any keyword is a substring of text.
// Both sides are expected to be normalized already. Text is matched with a
// space on either side, so a keyword written as " tea " only matches the
// whole word.
func ContainsAny(text string, keywords []string) bool {
	padded := " " + text + " "
	for _, kw := range keywords {
		if kw != "" && strings.Contains(padded, kw) {
			return true
		}
	}
	return false
}

// FirstMatch returns the first keyword found in text.
func FirstMatch(text string, keywords []string) (string, bool) {
	padded := " " + text + " "
	for _, kw := range keywords {
		if kw != "" && strings.Contains(padded, kw) {
			return kw, true
		}
	}
	return "", false
}
