package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/seeracv/api/internal/services"
)

type stubTranslationService struct {
	translateFn func(ctx context.Context, resume json.RawMessage, targetLanguage string) (json.RawMessage, error)
}

func (s *stubTranslationService) Translate(ctx context.Context, resume json.RawMessage, targetLanguage string) (json.RawMessage, error) {
	if s.translateFn != nil {
		return s.translateFn(ctx, resume, targetLanguage)
	}
	return nil, nil
}

func translationRouter(svc services.TranslationService) http.Handler {
	return NewRouter(WithTranslationRoutes(NewTranslationHandlers(svc).Routes))
}

func postTranslate(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/translate-resume", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestTranslateResumeSuccess(t *testing.T) {
	translated := `{"name":"أحمد"}`
	var gotLanguage string
	svc := &stubTranslationService{translateFn: func(_ context.Context, resume json.RawMessage, targetLanguage string) (json.RawMessage, error) {
		gotLanguage = targetLanguage
		if !bytes.Contains(resume, []byte("Ahmad")) {
			t.Fatalf("service received resume %s", resume)
		}
		return json.RawMessage(translated), nil
	}}

	resp := postTranslate(t, translationRouter(svc), `{"resume":{"name":"Ahmad"},"targetLanguage":"Arabic"}`)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.Code)
	}
	if gotLanguage != "Arabic" {
		t.Fatalf("target language = %q, want Arabic", gotLanguage)
	}
	if resp.Body.String() != translated {
		t.Fatalf("body = %s, want provider JSON verbatim", resp.Body.String())
	}
}

func TestTranslateResumeValidation(t *testing.T) {
	router := translationRouter(&stubTranslationService{})

	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"malformed JSON", "{"},
		{"missing resume", `{"targetLanguage":"Arabic"}`},
		{"null resume", `{"resume":null,"targetLanguage":"Arabic"}`},
		{"missing target language", `{"resume":{"name":"Ahmad"}}`},
		{"blank target language", `{"resume":{"name":"Ahmad"},"targetLanguage":"  "}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := postTranslate(t, router, tc.body)
			if resp.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", resp.Code)
			}
		})
	}
}

func TestTranslateResumeProviderFailure(t *testing.T) {
	raw := "Sure! Here is the translation:"
	svc := &stubTranslationService{translateFn: func(context.Context, json.RawMessage, string) (json.RawMessage, error) {
		return nil, &services.ProviderError{Raw: raw}
	}}

	resp := postTranslate(t, translationRouter(svc), `{"resume":{},"targetLanguage":"French"}`)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.Code)
	}
	var payload map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode error payload: %v", err)
	}
	if payload["error"] != "translation_failed" {
		t.Fatalf("error = %v, want translation_failed", payload["error"])
	}
	if payload["provider_payload"] != raw {
		t.Fatalf("provider_payload = %v, want raw provider reply", payload["provider_payload"])
	}
}

func TestTranslateResumeNotConfigured(t *testing.T) {
	svc := &stubTranslationService{translateFn: func(context.Context, json.RawMessage, string) (json.RawMessage, error) {
		return nil, services.ErrTranslatorNotConfigured
	}}

	resp := postTranslate(t, translationRouter(svc), `{"resume":{},"targetLanguage":"French"}`)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.Code)
	}
	var payload map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode error payload: %v", err)
	}
	if payload["error"] != "translator_not_configured" {
		t.Fatalf("error = %v, want translator_not_configured", payload["error"])
	}
}
