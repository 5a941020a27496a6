package services

import (
	"errors"
	"strings"

	"github.com/seeracv/api/internal/catalog"
	"github.com/seeracv/api/internal/platform/textnorm"
)

// DirectoryServiceDeps bundles collaborators required to construct the directory service.
type DirectoryServiceDeps struct {
	Catalog   *catalog.Catalog
	ResultCap int
}

type directoryService struct {
	catalog *catalog.Catalog
	cap     int
}

// NewDirectoryService constructs a service over the loaded reference tables.
func NewDirectoryService(deps DirectoryServiceDeps) (DirectoryService, error) {
	if deps.Catalog == nil {
		return nil, errors.New("directory service: catalog is required")
	}
	if deps.ResultCap <= 0 {
		return nil, errors.New("directory service: result cap must be positive")
	}
	return &directoryService{catalog: deps.Catalog, cap: deps.ResultCap}, nil
}

func (s *directoryService) Skills(query string) []string {
	return s.filter(s.catalog.SkillsEnglish, query, textnorm.English, false)
}

func (s *directoryService) SkillsArabic(query string) []string {
	return s.filter(s.catalog.SkillsArabic, query, textnorm.Arabic, false)
}

func (s *directoryService) Hobbies(query string) []string {
	return s.filter(s.catalog.HobbiesEnglish, query, textnorm.English, false)
}

func (s *directoryService) HobbiesArabic(query string) []string {
	return s.filter(s.catalog.HobbiesArabic, query, textnorm.Arabic, false)
}

func (s *directoryService) Specializations(query string) []string {
	return s.filter(s.catalog.SpecializationsEnglish, query, textnorm.English, false)
}

func (s *directoryService) SpecializationsArabic(query string) []string {
	return s.filter(s.catalog.SpecializationsArabic, query, textnorm.Arabic, false)
}

func (s *directoryService) JobTitles(query string) []string {
	return s.filter(s.catalog.JobTitlesEnglish, query, textnorm.English, false)
}

func (s *directoryService) JobTitlesArabic(query string) []string {
	return s.filter(s.catalog.JobTitlesArabic, query, textnorm.Arabic, false)
}

func (s *directoryService) Countries(query string) []CountrySummary {
	return s.filterCountries(s.catalog.CountriesEnglish, query, textnorm.English)
}

func (s *directoryService) CountriesArabic(query string) []CountrySummary {
	return s.filterCountries(s.catalog.CountriesArabic, query, textnorm.Arabic)
}

func (s *directoryService) Universities(countryCode, query string) ([]string, error) {
	return s.universities(s.catalog.CountriesEnglish, countryCode, query, textnorm.English)
}

func (s *directoryService) UniversitiesArabic(countryCode, query string) ([]string, error) {
	return s.universities(s.catalog.CountriesArabic, countryCode, query, textnorm.Arabic)
}

func (s *directoryService) Languages(query string) []string {
	return s.filter(s.catalog.LanguagesEnglish, query, textnorm.English, false)
}

func (s *directoryService) LanguagesArabic(query string) []string {
	return s.filter(s.catalog.LanguagesArabic, query, textnorm.Arabic, false)
}

func (s *directoryService) BachelorMajors(query string) []string {
	return s.filter(s.catalog.BachelorMajorsEnglish, query, textnorm.English, true)
}

func (s *directoryService) BachelorMajorsArabic(query string) []string {
	return s.filter(s.catalog.BachelorMajorsArabic, query, textnorm.Arabic, true)
}

func (s *directoryService) MastersMajors(query string) []string {
	return s.filter(s.catalog.MastersMajorsEnglish, query, textnorm.English, true)
}

func (s *directoryService) MastersMajorsArabic(query string) []string {
	return s.filter(s.catalog.MastersMajorsArabic, query, textnorm.Arabic, true)
}

func (s *directoryService) DoctoralMajors(query string) []string {
	return s.filter(s.catalog.DoctoralMajorsEnglish, query, textnorm.English, true)
}

func (s *directoryService) DoctoralMajorsArabic(query string) []string {
	return s.filter(s.catalog.DoctoralMajorsArabic, query, textnorm.Arabic, true)
}

func (s *directoryService) WorldCountries() []string {
	names := make([]string, 0, len(s.catalog.WorldCountries))
	for _, entry := range s.catalog.WorldCountries {
		names = append(names, entry.Name)
	}
	return names
}

func (s *directoryService) Cities(country string) ([]string, error) {
	for _, entry := range s.catalog.WorldCountries {
		if strings.EqualFold(entry.Name, strings.TrimSpace(country)) {
			return entry.Cities, nil
		}
	}
	return nil, ErrCountryNotFound
}

func (s *directoryService) Organizations() []string {
	names := make([]string, 0, len(s.catalog.Organizations))
	for _, org := range s.catalog.Organizations {
		names = append(names, org.Name)
	}
	return names
}

func (s *directoryService) Certifications(organizationName string) ([]string, error) {
	for _, org := range s.catalog.Organizations {
		if org.Name == organizationName {
			return org.Certifications, nil
		}
	}
	return nil, ErrOrganizationNotFound
}

// filter returns the order-preserving subsequence of table matching query,
// optionally deduplicated by exact string equality, capped at the configured
// maximum.
func (s *directoryService) filter(table []string, query string, match textnorm.Matcher, dedup bool) []string {
	results := make([]string, 0, min(len(table), s.cap))
	var seen map[string]struct{}
	if dedup {
		seen = make(map[string]struct{}, len(table))
	}
	for _, candidate := range table {
		if !match.Contains(candidate, query) {
			continue
		}
		if dedup {
			if _, ok := seen[candidate]; ok {
				continue
			}
			seen[candidate] = struct{}{}
		}
		results = append(results, candidate)
		if len(results) == s.cap {
			break
		}
	}
	return results
}

func (s *directoryService) filterCountries(table []catalog.Country, query string, match textnorm.Matcher) []CountrySummary {
	results := make([]CountrySummary, 0, min(len(table), s.cap))
	for _, country := range table {
		if !match.Contains(country.Name, query) {
			continue
		}
		results = append(results, CountrySummary{Code: country.Code, Name: country.Name})
		if len(results) == s.cap {
			break
		}
	}
	return results
}

func (s *directoryService) universities(table []catalog.Country, countryCode, query string, match textnorm.Matcher) ([]string, error) {
	country, ok := catalog.CountryByCode(table, countryCode)
	if !ok {
		return nil, ErrCountryNotFound
	}
	return s.filter(country.Universities(), query, match, false), nil
}
