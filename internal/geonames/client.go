// Package geonames wraps the GeoNames searchJSON endpoint with the narrow
// surface the city directory needs: populated places for one country.
package geonames

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "http://api.geonames.org/searchJSON"

// StatusError reports a non-2xx reply from GeoNames, keeping the upstream
// status code so callers can surface it.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("geonames: upstream status %d", e.StatusCode)
}

// Client issues searchJSON queries against a GeoNames endpoint.
type Client struct {
	baseURL  string
	username string
	lang     string
	http     *http.Client
}

// Option customises a Client.
type Option func(*Client)

// WithBaseURL overrides the GeoNames endpoint, used by tests to point the
// client at a local server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if trimmed := strings.TrimSpace(baseURL); trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

// WithLang sets the lang query parameter on every search.
func WithLang(lang string) Option {
	return func(c *Client) {
		if trimmed := strings.TrimSpace(lang); trimmed != "" {
			c.lang = trimmed
		}
	}
}

// WithTimeout bounds every outbound request.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.http.Timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient constructs a Client authenticated as username.
func NewClient(username string, opts ...Option) *Client {
	c := &Client{
		baseURL:  defaultBaseURL,
		username: strings.TrimSpace(username),
		lang:     "ar",
		http:     &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured reports whether the client has a GeoNames username to call with.
func (c *Client) Configured() bool {
	return c != nil && c.username != ""
}

type searchResponse struct {
	Geonames []struct {
		Name string `json:"name"`
	} `json:"geonames"`
}

// SearchCities lists populated places (featureClass P) for the given ISO2
// country code, up to maxRows names. Blank names are dropped and the rest
// trimmed; ordering is whatever GeoNames returned.
func (c *Client) SearchCities(ctx context.Context, iso2 string, maxRows int) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("geonames: build request: %w", err)
	}

	q := url.Values{}
	q.Set("country", strings.ToUpper(strings.TrimSpace(iso2)))
	q.Set("featureClass", "P")
	q.Set("maxRows", strconv.Itoa(maxRows))
	q.Set("lang", c.lang)
	q.Set("username", c.username)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geonames: search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("geonames: decode search response: %w", err)
	}

	names := make([]string, 0, len(payload.Geonames))
	for _, entry := range payload.Geonames {
		if name := strings.TrimSpace(entry.Name); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}
