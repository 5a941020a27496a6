package textnorm

import (
	"testing"
)

func TestNormalizeArabicAlefVariants(t *testing.T) {
	variants := []string{"أحمد", "احمد", "إحمد", "آحمد"}
	want := NormalizeArabic(variants[0])
	for _, v := range variants[1:] {
		if got := NormalizeArabic(v); got != want {
			t.Errorf("NormalizeArabic(%q) = %q, want %q", v, got, want)
		}
	}
}

func TestNormalizeArabicIdempotent(t *testing.T) {
	inputs := []string{
		"أحمد",
		"  الأردن  ",
		"المملكة \t العربية   السعودية",
		"",
		"plain ascii",
	}
	for _, input := range inputs {
		once := NormalizeArabic(input)
		twice := NormalizeArabic(once)
		if once != twice {
			t.Errorf("NormalizeArabic not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestNormalizeArabicWhitespace(t *testing.T) {
	got := NormalizeArabic("  مدينة   \n الكويت ")
	if got != "مدينة الكويت" {
		t.Errorf("unexpected normalization: %q", got)
	}
}

func TestMatcherContains(t *testing.T) {
	tests := []struct {
		name      string
		matcher   Matcher
		candidate string
		query     string
		want      bool
	}{
		{"english case insensitive", English, "Software Engineer", "soft", true},
		{"english no match", English, "Accountant", "engineer", false},
		{"english empty query matches", English, "Anything", "", true},
		{"arabic alef variant query", Arabic, "الأردن", "الاردن", true},
		{"arabic substring", Arabic, "جامعة القاهرة", "قاهرة", true},
		{"arabic no match", Arabic, "جامعة القاهرة", "بغداد", false},
		{"arabic empty query matches", Arabic, "دمشق", "  ", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.matcher.Contains(tc.candidate, tc.query); got != tc.want {
				t.Fatalf("Contains(%q, %q) = %v, want %v", tc.candidate, tc.query, got, tc.want)
			}
		})
	}
}

func TestMatcherEqual(t *testing.T) {
	if !Arabic.Equal("الأردن", " الاردن ") {
		t.Error("expected alef-folded names to compare equal")
	}
	if Arabic.Equal("الأردن", "لبنان") {
		t.Error("expected different names to compare unequal")
	}
}

func TestSortArabic(t *testing.T) {
	names := []string{"دمشق", "بيروت", "القاهرة", "عمان"}
	SortArabic(names)

	// Base-letter order of the leading letters: ا < ب < د < ع.
	want := []string{"القاهرة", "بيروت", "دمشق", "عمان"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("unexpected order: %v", names)
		}
	}
}
