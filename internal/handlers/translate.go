package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/seeracv/api/internal/platform/httpx"
	"github.com/seeracv/api/internal/platform/requestctx"
	"github.com/seeracv/api/internal/services"
)

const maxResumeBodySize = 256 * 1024

// TranslationHandlers exposes the resume translation endpoint.
type TranslationHandlers struct {
	translator services.TranslationService
}

// NewTranslationHandlers constructs handlers over the translation service.
func NewTranslationHandlers(translator services.TranslationService) *TranslationHandlers {
	return &TranslationHandlers{translator: translator}
}

// Routes wires the /translate-resume endpoint onto the provided router.
func (h *TranslationHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Post("/translate-resume", h.translateResume)
}

type translateResumeRequest struct {
	Resume         json.RawMessage `json:"resume"`
	TargetLanguage string          `json:"targetLanguage"`
}

func (h *TranslationHandlers) translateResume(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := readLimitedBody(r, maxResumeBodySize)
	if err != nil {
		switch {
		case errors.Is(err, errBodyTooLarge):
			httpx.WriteError(ctx, w, httpx.NewError("payload_too_large", "request body exceeds allowed size", http.StatusRequestEntityTooLarge))
		default:
			httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "request body is required", http.StatusBadRequest))
		}
		return
	}

	var req translateResumeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "request body must be valid JSON", http.StatusBadRequest))
		return
	}
	if len(req.Resume) == 0 || string(req.Resume) == "null" {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "resume is required", http.StatusBadRequest))
		return
	}
	if strings.TrimSpace(req.TargetLanguage) == "" {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "targetLanguage is required", http.StatusBadRequest))
		return
	}

	translated, err := h.translator.Translate(ctx, req.Resume, req.TargetLanguage)
	if err != nil {
		h.writeTranslateError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(translated)
}

func (h *TranslationHandlers) writeTranslateError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	var providerErr *services.ProviderError
	switch {
	case errors.Is(err, services.ErrTranslatorNotConfigured):
		httpx.WriteError(ctx, w, httpx.NewError("translator_not_configured", "translation service is not configured", http.StatusInternalServerError))
	case errors.As(err, &providerErr):
		// The one endpoint that echoes the upstream payload, for diagnosability.
		httpx.WriteError(ctx, w, httpx.NewError("translation_failed", "provider returned unusable content", http.StatusInternalServerError).
			WithDetails(map[string]any{"provider_payload": providerErr.Raw}))
	default:
		requestctx.Logger(ctx).Error("translation failed", zap.Error(err))
		httpx.WriteError(ctx, w, httpx.NewError("translation_failed", "failed to translate resume", http.StatusInternalServerError))
	}
}
