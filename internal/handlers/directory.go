package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/seeracv/api/internal/platform/httpx"
	"github.com/seeracv/api/internal/services"
)

// DirectoryHandlers exposes the static reference tables as GET endpoints.
type DirectoryHandlers struct {
	directory services.DirectoryService
}

// NewDirectoryHandlers constructs handlers over the directory service.
func NewDirectoryHandlers(directory services.DirectoryService) *DirectoryHandlers {
	return &DirectoryHandlers{directory: directory}
}

// Routes wires the reference-data endpoints onto the provided router. Path
// spellings are the public contract and intentionally uneven (skillsar vs
// hobbies-ar vs specializations/ar).
func (h *DirectoryHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Get("/skills", h.listFiltered(h.directory.Skills))
	r.Get("/skillsar", h.listFiltered(h.directory.SkillsArabic))
	r.Get("/hobbies", h.listFiltered(h.directory.Hobbies))
	r.Get("/hobbies-ar", h.listFiltered(h.directory.HobbiesArabic))
	r.Get("/specializations", h.listFiltered(h.directory.Specializations))
	r.Get("/specializations/ar", h.listFiltered(h.directory.SpecializationsArabic))
	r.Get("/jobtitles", h.listFiltered(h.directory.JobTitles))
	r.Get("/jobtitlesar", h.listFiltered(h.directory.JobTitlesArabic))
	r.Get("/countries", h.listCountries(h.directory.Countries))
	r.Get("/countriesar", h.listCountries(h.directory.CountriesArabic))
	r.Get("/universities", h.listUniversities(h.directory.Universities))
	r.Get("/universitiesar", h.listUniversities(h.directory.UniversitiesArabic))
	r.Get("/languages", h.listFiltered(h.directory.Languages))
	r.Get("/languagesar", h.listFiltered(h.directory.LanguagesArabic))
	r.Get("/bachelor", h.listFiltered(h.directory.BachelorMajors))
	r.Get("/bachelor/ar", h.listFiltered(h.directory.BachelorMajorsArabic))
	r.Get("/masters", h.listFiltered(h.directory.MastersMajors))
	r.Get("/masters/ar", h.listFiltered(h.directory.MastersMajorsArabic))
	r.Get("/doctors", h.listFiltered(h.directory.DoctoralMajors))
	r.Get("/doctors/ar", h.listFiltered(h.directory.DoctoralMajorsArabic))
	r.Get("/world-countries", h.worldCountries)
	r.Get("/cities", h.cities)
	r.Get("/organizations", h.organizations)
	r.Get("/certifications", h.certifications)
}

func (h *DirectoryHandlers) listFiltered(list func(string) []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSONResponse(w, http.StatusOK, list(r.URL.Query().Get("q")))
	}
}

func (h *DirectoryHandlers) listCountries(list func(string) []services.CountrySummary) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSONResponse(w, http.StatusOK, list(r.URL.Query().Get("q")))
	}
}

func (h *DirectoryHandlers) listUniversities(list func(string, string) ([]string, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		country := strings.TrimSpace(r.URL.Query().Get("country"))
		if country == "" {
			httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "country query parameter is required", http.StatusBadRequest))
			return
		}
		universities, err := list(country, r.URL.Query().Get("q"))
		if err != nil {
			writeDirectoryError(ctx, w, err)
			return
		}
		writeJSONResponse(w, http.StatusOK, universities)
	}
}

func (h *DirectoryHandlers) worldCountries(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, h.directory.WorldCountries())
}

func (h *DirectoryHandlers) cities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	country := strings.TrimSpace(r.URL.Query().Get("country"))
	if country == "" {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "country query parameter is required", http.StatusBadRequest))
		return
	}
	cities, err := h.directory.Cities(country)
	if err != nil {
		writeDirectoryError(ctx, w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, cities)
}

func (h *DirectoryHandlers) organizations(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, h.directory.Organizations())
}

func (h *DirectoryHandlers) certifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orgName := strings.TrimSpace(r.URL.Query().Get("organization_name"))
	if orgName == "" {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "organization_name query parameter is required", http.StatusBadRequest))
		return
	}
	certifications, err := h.directory.Certifications(orgName)
	if err != nil {
		writeDirectoryError(ctx, w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, certifications)
}

func writeDirectoryError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrCountryNotFound):
		httpx.WriteError(ctx, w, httpx.NewError("country_not_found", "country not found", http.StatusNotFound))
	case errors.Is(err, services.ErrOrganizationNotFound):
		httpx.WriteError(ctx, w, httpx.NewError("organization_not_found", "organization not found", http.StatusNotFound))
	default:
		httpx.WriteError(ctx, w, httpx.NewError("internal_error", "unexpected error", http.StatusInternalServerError))
	}
}
