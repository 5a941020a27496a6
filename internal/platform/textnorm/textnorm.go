package textnorm

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Alef variants folded to the bare alef so that visually interchangeable
// spellings compare equal.
var alefFolder = strings.NewReplacer(
	"أ", "ا", // alef with hamza above
	"إ", "ا", // alef with hamza below
	"آ", "ا", // alef with madda above
)

// Fold lowercases and trims a string for locale-invariant English matching.
func Fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeArabic applies NFC composition, folds the hamza/madda alef variants
// to bare alef, collapses whitespace runs, and trims. The result is stable
// under repeated application.
func NormalizeArabic(s string) string {
	s = norm.NFC.String(s)
	s = alefFolder.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// Matcher decides containment and equality after applying a normalization
// strategy to both operands.
type Matcher func(string) string

// English matches with a locale-invariant lowercase fold.
var English Matcher = Fold

// Arabic matches after NFC composition and alef folding.
var Arabic Matcher = NormalizeArabic

// Contains reports whether candidate contains query after normalization.
// An empty query matches every candidate.
func (m Matcher) Contains(candidate, query string) bool {
	q := m(query)
	if q == "" {
		return true
	}
	return strings.Contains(m(candidate), q)
}

// Equal reports whether the two operands normalize to the same string.
func (m Matcher) Equal(a, b string) bool {
	return m(a) == m(b)
}

// SortArabic orders names with Arabic collation at base-letter sensitivity,
// so diacritics do not influence the presented order.
func SortArabic(names []string) {
	collate.New(language.Arabic, collate.Loose).SortStrings(names)
}
