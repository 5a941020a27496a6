package geonames

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchCitiesSendsExpectedQuery(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for key := range r.URL.Query() {
			gotQuery[key] = r.URL.Query().Get(key)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"geonames":[{"name":"عمان"},{"name":"  الزرقاء "},{"name":""},{"name":"إربد"}]}`))
	}))
	defer server.Close()

	client := NewClient("demo", WithBaseURL(server.URL))
	cities, err := client.SearchCities(context.Background(), "jo", 1000)
	if err != nil {
		t.Fatalf("SearchCities error = %v", err)
	}

	want := map[string]string{
		"country":      "JO",
		"featureClass": "P",
		"maxRows":      "1000",
		"lang":         "ar",
		"username":     "demo",
	}
	for key, value := range want {
		if gotQuery[key] != value {
			t.Errorf("query %s = %q, want %q", key, gotQuery[key], value)
		}
	}

	wantCities := []string{"عمان", "الزرقاء", "إربد"}
	if len(cities) != len(wantCities) {
		t.Fatalf("got %d cities %v, want %d", len(cities), cities, len(wantCities))
	}
	for i, city := range wantCities {
		if cities[i] != city {
			t.Errorf("cities[%d] = %q, want %q", i, cities[i], city)
		}
	}
}

func TestSearchCitiesUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient("demo", WithBaseURL(server.URL))
	_, err := client.SearchCities(context.Background(), "JO", 1000)

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error = %v, want *StatusError", err)
	}
	if statusErr.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("StatusCode = %d, want %d", statusErr.StatusCode, http.StatusServiceUnavailable)
	}
}

func TestSearchCitiesMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient("demo", WithBaseURL(server.URL))
	if _, err := client.SearchCities(context.Background(), "JO", 1000); err == nil {
		t.Fatal("expected decode error, got nil")
	}
}

func TestConfigured(t *testing.T) {
	if NewClient("").Configured() {
		t.Error("empty username reported as configured")
	}
	if !NewClient("demo").Configured() {
		t.Error("non-empty username reported as unconfigured")
	}
}
