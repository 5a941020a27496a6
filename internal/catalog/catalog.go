package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/seeracv/api/internal/platform/textutil"
)

//go:embed data/*.json
var dataFS embed.FS

// Country is one entry of a language-specific country table. Data maps a
// university name to its metadata blob, which many entries leave empty.
type Country struct {
	Code string                     `json:"code"`
	Name string                     `json:"name"`
	Data map[string]json.RawMessage `json:"data"`
}

// Universities returns the university names of a country record in a stable
// key-sorted order.
func (c Country) Universities() []string {
	names := make([]string, 0, len(c.Data))
	for name := range c.Data {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WorldCountry is one entry of the world country/city table.
type WorldCountry struct {
	Name   string   `json:"name"`
	Cities []string `json:"cities"`
}

// Organization groups certification names under an issuing organization.
type Organization struct {
	Name           string   `json:"organization_name"`
	Certifications []string `json:"name"`
}

type specializationsFile struct {
	Specializations []string `json:"specializations"`
}

// Catalog holds every bundled reference table. All fields are populated once
// by Load and treated as immutable for the process lifetime.
type Catalog struct {
	SkillsEnglish          []string
	SkillsArabic           []string
	HobbiesEnglish         []string
	HobbiesArabic          []string
	SpecializationsEnglish []string
	SpecializationsArabic  []string
	JobTitlesEnglish       []string
	JobTitlesArabic        []string

	CountriesEnglish []Country
	CountriesArabic  []Country

	LanguagesEnglish []string
	LanguagesArabic  []string

	BachelorMajorsEnglish []string
	BachelorMajorsArabic  []string
	MastersMajorsEnglish  []string
	MastersMajorsArabic   []string
	DoctoralMajorsEnglish []string
	DoctoralMajorsArabic  []string

	WorldCountries []WorldCountry
	Organizations  []Organization
}

// Load parses every bundled table, validating each against its fixed schema.
// Any missing or malformed file is a startup failure.
func Load() (*Catalog, error) {
	c := &Catalog{}

	if err := loadJSON("skills_english.json", &c.SkillsEnglish); err != nil {
		return nil, err
	}
	c.SkillsEnglish = textutil.CleanList(c.SkillsEnglish)
	var skillsAr map[string]string
	if err := loadJSON("skills_arabic.json", &skillsAr); err != nil {
		return nil, err
	}
	c.SkillsArabic = orderedValues(textutil.CleanMap(skillsAr))

	if err := loadJSON("hobbies_english.json", &c.HobbiesEnglish); err != nil {
		return nil, err
	}
	c.HobbiesEnglish = textutil.CleanList(c.HobbiesEnglish)
	if err := loadJSON("hobbies_arabic.json", &c.HobbiesArabic); err != nil {
		return nil, err
	}
	c.HobbiesArabic = textutil.CleanList(c.HobbiesArabic)

	var specsEn, specsAr specializationsFile
	if err := loadJSON("specializations_english.json", &specsEn); err != nil {
		return nil, err
	}
	if err := loadJSON("specializations_arabic.json", &specsAr); err != nil {
		return nil, err
	}
	c.SpecializationsEnglish = textutil.CleanList(specsEn.Specializations)
	c.SpecializationsArabic = textutil.CleanList(specsAr.Specializations)

	var titlesEn, titlesAr map[string]string
	if err := loadJSON("job_titles_english.json", &titlesEn); err != nil {
		return nil, err
	}
	if err := loadJSON("job_titles_arabic.json", &titlesAr); err != nil {
		return nil, err
	}
	c.JobTitlesEnglish = orderedKeys(textutil.CleanMap(titlesEn))
	c.JobTitlesArabic = orderedValues(textutil.CleanMap(titlesAr))

	if err := loadJSON("countries_universities_english.json", &c.CountriesEnglish); err != nil {
		return nil, err
	}
	if err := loadJSON("countries_universities_arabic.json", &c.CountriesArabic); err != nil {
		return nil, err
	}
	if err := normalizeCountries("countries_universities_english.json", c.CountriesEnglish); err != nil {
		return nil, err
	}
	if err := normalizeCountries("countries_universities_arabic.json", c.CountriesArabic); err != nil {
		return nil, err
	}

	var languages map[string]string
	if err := loadJSON("languages.json", &languages); err != nil {
		return nil, err
	}
	languages = textutil.CleanMap(languages)
	c.LanguagesEnglish = orderedKeys(languages)
	c.LanguagesArabic = make([]string, 0, len(languages))
	for _, key := range c.LanguagesEnglish {
		c.LanguagesArabic = append(c.LanguagesArabic, languages[key])
	}

	majorTables := []struct {
		file   string
		target *[]string
	}{
		{"majors_bachelor_english.json", &c.BachelorMajorsEnglish},
		{"majors_bachelor_arabic.json", &c.BachelorMajorsArabic},
		{"majors_masters_english.json", &c.MastersMajorsEnglish},
		{"majors_masters_arabic.json", &c.MastersMajorsArabic},
		{"majors_doctoral_english.json", &c.DoctoralMajorsEnglish},
		{"majors_doctoral_arabic.json", &c.DoctoralMajorsArabic},
	}
	for _, table := range majorTables {
		if err := loadJSON(table.file, table.target); err != nil {
			return nil, err
		}
		*table.target = textutil.CleanList(*table.target)
	}

	if err := loadJSON("world_cities.json", &c.WorldCountries); err != nil {
		return nil, err
	}
	for _, entry := range c.WorldCountries {
		if strings.TrimSpace(entry.Name) == "" {
			return nil, fmt.Errorf("catalog: world_cities.json contains an entry without a name")
		}
	}

	if err := loadJSON("organization_certifications.json", &c.Organizations); err != nil {
		return nil, err
	}
	for _, org := range c.Organizations {
		if strings.TrimSpace(org.Name) == "" {
			return nil, fmt.Errorf("catalog: organization_certifications.json contains an entry without an organization_name")
		}
	}

	return c, nil
}

// CountryByCode finds a record by ISO2 code in the given table. Codes are
// compared upper-cased.
func CountryByCode(table []Country, code string) (Country, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, country := range table {
		if country.Code == code {
			return country, true
		}
	}
	return Country{}, false
}

func loadJSON(name string, target any) error {
	raw, err := dataFS.ReadFile("data/" + name)
	if err != nil {
		return fmt.Errorf("catalog: missing bundled table %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("catalog: malformed table %s: %w", name, err)
	}
	return nil
}

func normalizeCountries(file string, table []Country) error {
	for i := range table {
		code := strings.ToUpper(strings.TrimSpace(table[i].Code))
		if code == "" {
			return fmt.Errorf("catalog: %s contains an entry without a code", file)
		}
		if table[i].Name == "" {
			return fmt.Errorf("catalog: %s entry %s has no name", file, code)
		}
		table[i].Code = code
	}
	return nil
}

// orderedKeys returns map keys in a stable key-sorted order. JSON objects
// carry no order, so sorting keeps responses deterministic across restarts.
func orderedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func orderedValues(m map[string]string) []string {
	values := make([]string, 0, len(m))
	for _, key := range orderedKeys(m) {
		values = append(values, m[key])
	}
	return values
}
