package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/seeracv/api/internal/platform/httpx"
	"github.com/seeracv/api/internal/platform/requestctx"
	"github.com/seeracv/api/internal/services"
)

// CityHandlers exposes the Arabic city proxy endpoint.
type CityHandlers struct {
	cities services.CityService
}

// NewCityHandlers constructs handlers over the city service.
func NewCityHandlers(cities services.CityService) *CityHandlers {
	return &CityHandlers{cities: cities}
}

// Routes wires the /cities/ar endpoint onto the provided router.
func (h *CityHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Get("/cities/ar", h.citiesArabic)
}

func (h *CityHandlers) citiesArabic(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	country := strings.TrimSpace(r.URL.Query().Get("country"))
	if country == "" {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "country query parameter is required", http.StatusBadRequest))
		return
	}

	cities, err := h.cities.CitiesArabic(ctx, country)
	if err != nil {
		var upstream *services.UpstreamError
		switch {
		case errors.Is(err, services.ErrCountryNotFound):
			httpx.WriteError(ctx, w, httpx.NewError("country_not_found", "country not found in Arabic list", http.StatusNotFound))
		case errors.Is(err, services.ErrGeocoderNotConfigured):
			httpx.WriteError(ctx, w, httpx.NewError("geocoder_not_configured", "geocoding service is not configured", http.StatusInternalServerError))
		case errors.As(err, &upstream):
			httpx.WriteError(ctx, w, httpx.NewError("upstream_error", fmt.Sprintf("geocoding service returned status %d", upstream.StatusCode), http.StatusBadGateway))
		default:
			requestctx.Logger(ctx).Error("city lookup failed", zap.Error(err))
			httpx.WriteError(ctx, w, httpx.NewError("internal_error", "failed to fetch cities", http.StatusInternalServerError))
		}
		return
	}

	writeJSONResponse(w, http.StatusOK, cities)
}
