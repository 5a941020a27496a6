package services

import (
	"context"
	"encoding/json"
)

// CountrySummary is the {code, name} projection the country endpoints return.
type CountrySummary struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// DirectoryService exposes the static reference tables as filter/lookup
// operations. All filters are substring matches in the table's language,
// order-preserving and capped.
type DirectoryService interface {
	Skills(query string) []string
	SkillsArabic(query string) []string
	Hobbies(query string) []string
	HobbiesArabic(query string) []string
	Specializations(query string) []string
	SpecializationsArabic(query string) []string
	JobTitles(query string) []string
	JobTitlesArabic(query string) []string
	Countries(query string) []CountrySummary
	CountriesArabic(query string) []CountrySummary
	Universities(countryCode, query string) ([]string, error)
	UniversitiesArabic(countryCode, query string) ([]string, error)
	Languages(query string) []string
	LanguagesArabic(query string) []string
	BachelorMajors(query string) []string
	BachelorMajorsArabic(query string) []string
	MastersMajors(query string) []string
	MastersMajorsArabic(query string) []string
	DoctoralMajors(query string) []string
	DoctoralMajorsArabic(query string) []string
	WorldCountries() []string
	Cities(country string) ([]string, error)
	Organizations() []string
	Certifications(organizationName string) ([]string, error)
}

// CityService resolves an Arabic country name to its city list via the
// geocoding proxy and per-country cache.
type CityService interface {
	CitiesArabic(ctx context.Context, country string) ([]string, error)
}

// TranslationService proxies a resume payload to the LLM provider and
// returns the translated document.
type TranslationService interface {
	Translate(ctx context.Context, resume json.RawMessage, targetLanguage string) (json.RawMessage, error)
}
