package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/seeracv/api/internal/catalog"
	"github.com/seeracv/api/internal/geonames"
	"github.com/seeracv/api/internal/platform/textnorm"
)

// CityCache stores computed city lists keyed by upper-cased ISO2 code.
// Implementations must be safe for concurrent use; Put is an idempotent
// overwrite, so two requests racing on the same uncached country may both
// fetch and both store.
type CityCache interface {
	Get(iso2 string) ([]string, bool)
	Put(iso2 string, cities []string)
}

// Geocoder is the outbound city lookup the service fetches with on a cache
// miss.
type Geocoder interface {
	Configured() bool
	SearchCities(ctx context.Context, iso2 string, maxRows int) ([]string, error)
}

type memoryCityCache struct {
	mu      sync.RWMutex
	entries map[string][]string
}

// NewMemoryCityCache returns an unbounded in-process cache with no eviction;
// entries live for the process lifetime.
func NewMemoryCityCache() CityCache {
	return &memoryCityCache{entries: make(map[string][]string)}
}

func (c *memoryCityCache) Get(iso2 string) ([]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cities, ok := c.entries[iso2]
	return cities, ok
}

func (c *memoryCityCache) Put(iso2 string, cities []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[iso2] = cities
}

// CityServiceDeps bundles collaborators required to construct the city service.
type CityServiceDeps struct {
	Countries []catalog.Country
	Geocoder  Geocoder
	Cache     CityCache
	ResultCap int
}

type cityService struct {
	countries []catalog.Country
	geocoder  Geocoder
	cache     CityCache
	cap       int
}

// NewCityService constructs the Arabic city proxy over the Arabic country
// table.
func NewCityService(deps CityServiceDeps) (CityService, error) {
	if len(deps.Countries) == 0 {
		return nil, errors.New("city service: country table is required")
	}
	if deps.Geocoder == nil {
		return nil, errors.New("city service: geocoder is required")
	}
	if deps.Cache == nil {
		deps.Cache = NewMemoryCityCache()
	}
	if deps.ResultCap <= 0 {
		return nil, errors.New("city service: result cap must be positive")
	}
	return &cityService{
		countries: deps.Countries,
		geocoder:  deps.Geocoder,
		cache:     deps.Cache,
		cap:       deps.ResultCap,
	}, nil
}

// CitiesArabic resolves country against the Arabic country table by
// normalized equality, then serves the city list from cache or from one
// geocoder call. Fetched names are deduplicated and Arabic-collated before
// caching, so every hit returns the identical sequence.
func (s *cityService) CitiesArabic(ctx context.Context, country string) ([]string, error) {
	match, ok := s.resolveCountry(country)
	if !ok {
		return nil, ErrCountryNotFound
	}

	key := strings.ToUpper(match.Code)
	if cities, ok := s.cache.Get(key); ok {
		return cities, nil
	}

	if !s.geocoder.Configured() {
		return nil, ErrGeocoderNotConfigured
	}

	names, err := s.geocoder.SearchCities(ctx, key, s.cap)
	if err != nil {
		var statusErr *geonames.StatusError
		if errors.As(err, &statusErr) {
			return nil, &UpstreamError{StatusCode: statusErr.StatusCode}
		}
		return nil, err
	}

	cities := dedupe(names)
	textnorm.SortArabic(cities)
	s.cache.Put(key, cities)
	return cities, nil
}

func (s *cityService) resolveCountry(country string) (catalog.Country, bool) {
	for _, candidate := range s.countries {
		if textnorm.Arabic.Equal(candidate.Name, country) {
			return candidate, true
		}
	}
	return catalog.Country{}, false
}

func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	unique := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, name)
	}
	return unique
}
