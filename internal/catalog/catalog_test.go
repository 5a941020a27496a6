package catalog

import (
	"sort"
	"testing"
)

func TestLoadPopulatesEveryTable(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	checks := []struct {
		name  string
		count int
	}{
		{"SkillsEnglish", len(c.SkillsEnglish)},
		{"SkillsArabic", len(c.SkillsArabic)},
		{"HobbiesEnglish", len(c.HobbiesEnglish)},
		{"HobbiesArabic", len(c.HobbiesArabic)},
		{"SpecializationsEnglish", len(c.SpecializationsEnglish)},
		{"SpecializationsArabic", len(c.SpecializationsArabic)},
		{"JobTitlesEnglish", len(c.JobTitlesEnglish)},
		{"JobTitlesArabic", len(c.JobTitlesArabic)},
		{"CountriesEnglish", len(c.CountriesEnglish)},
		{"CountriesArabic", len(c.CountriesArabic)},
		{"LanguagesEnglish", len(c.LanguagesEnglish)},
		{"LanguagesArabic", len(c.LanguagesArabic)},
		{"BachelorMajorsEnglish", len(c.BachelorMajorsEnglish)},
		{"BachelorMajorsArabic", len(c.BachelorMajorsArabic)},
		{"MastersMajorsEnglish", len(c.MastersMajorsEnglish)},
		{"MastersMajorsArabic", len(c.MastersMajorsArabic)},
		{"DoctoralMajorsEnglish", len(c.DoctoralMajorsEnglish)},
		{"DoctoralMajorsArabic", len(c.DoctoralMajorsArabic)},
		{"WorldCountries", len(c.WorldCountries)},
		{"Organizations", len(c.Organizations)},
	}
	for _, check := range checks {
		if check.count == 0 {
			t.Errorf("%s is empty after Load", check.name)
		}
	}
}

func TestLoadLanguagePairsStayAligned(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got, want := len(c.LanguagesArabic), len(c.LanguagesEnglish); got != want {
		t.Fatalf("languages mismatch: %d Arabic vs %d English", got, want)
	}
	if got, want := len(c.CountriesArabic), len(c.CountriesEnglish); got != want {
		t.Fatalf("countries mismatch: %d Arabic vs %d English", got, want)
	}
}

func TestLoadUppercasesCountryCodes(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	seen := make(map[string]bool, len(c.CountriesEnglish))
	for _, country := range c.CountriesEnglish {
		for _, r := range country.Code {
			if r >= 'a' && r <= 'z' {
				t.Errorf("country code %q is not upper-cased", country.Code)
			}
		}
		seen[country.Code] = true
	}
	for _, country := range c.CountriesArabic {
		if !seen[country.Code] {
			t.Errorf("Arabic table has code %q with no English counterpart", country.Code)
		}
	}
}

func TestLoadMapTablesAreSorted(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	for i := 1; i < len(c.JobTitlesEnglish); i++ {
		if c.JobTitlesEnglish[i-1] > c.JobTitlesEnglish[i] {
			t.Fatalf("JobTitlesEnglish not sorted: %q before %q", c.JobTitlesEnglish[i-1], c.JobTitlesEnglish[i])
		}
	}
	for i := 1; i < len(c.LanguagesEnglish); i++ {
		if c.LanguagesEnglish[i-1] > c.LanguagesEnglish[i] {
			t.Fatalf("LanguagesEnglish not sorted: %q before %q", c.LanguagesEnglish[i-1], c.LanguagesEnglish[i])
		}
	}
}

func TestCountryByCode(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	for _, code := range []string{"JO", "jo", " jo "} {
		country, ok := CountryByCode(c.CountriesEnglish, code)
		if !ok {
			t.Fatalf("CountryByCode(%q) not found", code)
		}
		if country.Name != "Jordan" {
			t.Fatalf("CountryByCode(%q) name = %q, want Jordan", code, country.Name)
		}
	}

	if _, ok := CountryByCode(c.CountriesEnglish, "XX"); ok {
		t.Fatal("CountryByCode(XX) unexpectedly found a record")
	}
}

func TestCountryUniversities(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	country, ok := CountryByCode(c.CountriesEnglish, "JO")
	if !ok {
		t.Fatal("JO missing from English country table")
	}
	universities := country.Universities()
	if len(universities) == 0 {
		t.Fatal("JO university list is empty")
	}
	if !sort.StringsAreSorted(universities) {
		t.Fatalf("universities not sorted: %v", universities)
	}
}
