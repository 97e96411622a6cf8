package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"newssaar/backend/internal/catalog"
	"newssaar/backend/internal/config"
	"newssaar/backend/internal/logger"
	"newssaar/backend/internal/model"
	"newssaar/backend/internal/service/ai"
)

// TranslationErrorText replaces the translation when the backend fails.
const TranslationErrorText = "Translation Error"

// Translator is a translation backend. targetCode is a catalog code.
type Translator interface {
	Translate(ctx context.Context, text, targetCode string) (string, error)
}

type TranslationService interface {
	Translate(ctx context.Context, text, targetCode string) (model.TranslationResult, error)
	Languages() []model.Language
}

type translationService struct {
	catalog    *catalog.Catalog
	translator Translator
}

func NewTranslationService(languages *catalog.Catalog, translator Translator) TranslationService {
	return &translationService{catalog: languages, translator: translator}
}

func (s *translationService) Languages() []model.Language {
	return s.catalog.Languages()
}

// Translate validates the code against the catalog before any backend call.
// Backend failures are absorbed into the TranslationErrorText result.
func (s *translationService) Translate(ctx context.Context, text, targetCode string) (model.TranslationResult, error) {
	targetCode = strings.ToLower(strings.TrimSpace(targetCode))
	if !s.catalog.Has(targetCode) {
		return model.TranslationResult{}, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, targetCode)
	}

	translated, err := s.translator.Translate(ctx, text, targetCode)
	if err != nil {
		logger.Error("translate failed", "module", "service", "action", "translate", "resource", "translation", "result", "failed", "language", targetCode, "error", err)
		return model.TranslationResult{
			TargetLanguageCode: targetCode,
			Text:               TranslationErrorText,
			Failed:             true,
		}, nil
	}

	logger.Debug("translate done", "module", "service", "action", "translate", "resource", "translation", "result", "ok", "language", targetCode)
	return model.TranslationResult{TargetLanguageCode: targetCode, Text: translated}, nil
}

type googleTranslator struct {
	client   *resty.Client
	endpoint string
}

// NewGoogleTranslator talks to the public translate_a/single endpoint.
func NewGoogleTranslator(client *resty.Client, endpoint string) Translator {
	if endpoint == "" {
		endpoint = config.DefaultTranslateURL
	}
	return &googleTranslator{client: client, endpoint: endpoint}
}

func (g *googleTranslator) Translate(ctx context.Context, text, targetCode string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"client": "gtx",
			"sl":     "auto",
			"tl":     targetCode,
			"dt":     "t",
			"q":      text,
		}).
		Get(g.endpoint)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrService, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("%w: HTTP %d", ErrService, resp.StatusCode())
	}
	return parseGoogleTranslation(resp.Body())
}

// parseGoogleTranslation joins the translated segments found at [0][i][0].
func parseGoogleTranslation(body []byte) (string, error) {
	var response []interface{}
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("%w: decode translation: %v", ErrService, err)
	}
	if len(response) == 0 {
		return "", fmt.Errorf("%w: empty translation response", ErrService)
	}
	segments, ok := response[0].([]interface{})
	if !ok {
		return "", fmt.Errorf("%w: unexpected translation format", ErrService)
	}

	var result strings.Builder
	for _, segment := range segments {
		parts, ok := segment.([]interface{})
		if !ok || len(parts) == 0 {
			continue
		}
		if translated, ok := parts[0].(string); ok {
			result.WriteString(translated)
		}
	}
	if result.Len() == 0 {
		return "", fmt.Errorf("%w: translation response has no text", ErrService)
	}
	return result.String(), nil
}

type aiTranslator struct {
	provider ai.Provider
	catalog  *catalog.Catalog
}

// NewAITranslator prompts an AI provider with the catalog's language name.
func NewAITranslator(provider ai.Provider, languages *catalog.Catalog) Translator {
	return &aiTranslator{provider: provider, catalog: languages}
}

func (a *aiTranslator) Translate(ctx context.Context, text, targetCode string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	language := a.catalog.Name(targetCode)
	if language == "" {
		language = targetCode
	}
	out, err := a.provider.Complete(ctx, ai.GetTranslateTextPrompt("news summary", language), text)
	if err != nil {
		return "", fmt.Errorf("%w: translate via %s: %v", ErrService, a.provider.Name(), err)
	}
	return out, nil
}

// NewTranslator picks the backend named by cfg.Translator.
func NewTranslator(cfg config.Config, client *resty.Client, provider ai.Provider, languages *catalog.Catalog) Translator {
	if cfg.Translator == config.TranslatorAI && provider != nil {
		return NewAITranslator(provider, languages)
	}
	return NewGoogleTranslator(client, cfg.TranslateURL)
}
