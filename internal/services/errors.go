package services

import (
	"errors"
	"fmt"
)

var (
	// ErrCountryNotFound indicates the requested country resolves to no record.
	ErrCountryNotFound = errors.New("directory: country not found")
	// ErrOrganizationNotFound indicates no certification issuer matches the requested name.
	ErrOrganizationNotFound = errors.New("directory: organization not found")
	// ErrGeocoderNotConfigured indicates the geocoding credential is absent; no remote call was attempted.
	ErrGeocoderNotConfigured = errors.New("cities: geocoding service not configured")
	// ErrTranslatorNotConfigured indicates the LLM provider credential is absent.
	ErrTranslatorNotConfigured = errors.New("translate: provider not configured")
)

// UpstreamError reports a failed geocoding call, carrying the upstream HTTP
// status for the 502 response body.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("cities: geocoding upstream returned status %d", e.StatusCode)
}

// ProviderError reports an LLM reply that could not be used as a translation.
// Raw keeps the provider payload so the endpoint can echo it for diagnostics.
type ProviderError struct {
	Raw   string
	Cause error
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("translate: unusable provider reply: %v", e.Cause)
	}
	return "translate: unusable provider reply"
}

func (e *ProviderError) Unwrap() error { return e.Cause }
