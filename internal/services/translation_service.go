package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Completer performs a single-turn LLM completion and returns the reply text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// TranslationServiceDeps bundles collaborators required to construct the translation service.
type TranslationServiceDeps struct {
	// Completer may be nil when no provider credential is configured; every
	// Translate call then fails with ErrTranslatorNotConfigured.
	Completer Completer
}

type translationService struct {
	completer Completer
}

// NewTranslationService constructs the resume translation proxy.
func NewTranslationService(deps TranslationServiceDeps) (TranslationService, error) {
	return &translationService{completer: deps.Completer}, nil
}

// Translate sends one completion request embedding the serialized resume and
// target language, and returns the provider's reply parsed as JSON. A reply
// that is empty or not valid JSON fails with a ProviderError carrying the raw
// payload.
func (s *translationService) Translate(ctx context.Context, resume json.RawMessage, targetLanguage string) (json.RawMessage, error) {
	if s.completer == nil {
		return nil, ErrTranslatorNotConfigured
	}
	if len(resume) == 0 {
		return nil, errors.New("translate: resume is required")
	}
	if strings.TrimSpace(targetLanguage) == "" {
		return nil, errors.New("translate: target language is required")
	}

	reply, err := s.completer.Complete(ctx, translationPrompt(resume, targetLanguage))
	if err != nil {
		return nil, fmt.Errorf("translate: completion request: %w", err)
	}

	content := strings.TrimSpace(reply)
	if content == "" {
		return nil, &ProviderError{Raw: reply, Cause: errors.New("empty reply")}
	}
	if !json.Valid([]byte(content)) {
		return nil, &ProviderError{Raw: reply, Cause: errors.New("reply is not valid JSON")}
	}
	return json.RawMessage(content), nil
}

func translationPrompt(resume json.RawMessage, targetLanguage string) string {
	return fmt.Sprintf(
		"Translate every human-readable value in the following resume JSON into %s. "+
			"Keep the JSON structure and all keys exactly as they are. "+
			"Reply with the translated JSON document only, no commentary and no markdown fences.\n\n%s",
		targetLanguage, resume,
	)
}
