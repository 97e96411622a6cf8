package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"newssaar/backend/internal/logger"
	"newssaar/backend/internal/service"
)

type TranslateHandler struct {
	service service.TranslationService
}

type translateRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type translateResponse struct {
	Language string `json:"language"`
	Text     string `json:"text"`
	Failed   bool   `json:"failed"`
}

type languageResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func NewTranslateHandler(service service.TranslationService) *TranslateHandler {
	return &TranslateHandler{service: service}
}

func (h *TranslateHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/translate", h.Translate)
	g.GET("/languages", h.Languages)
}

// Translate translates a summary on demand.
// @Summary Translate summary
// @Description Translate text into a catalog language. A backend failure returns the text "Translation Error" with failed=true.
// @Tags translate
// @Accept json
// @Produce json
// @Param request body translateRequest true "Text and target language code"
// @Success 200 {object} translateResponse
// @Failure 400 {object} errorResponse
// @Router /translate [post]
func (h *TranslateHandler) Translate(c echo.Context) error {
	var req translateRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}
	if strings.TrimSpace(req.Language) == "" {
		return Error(c, http.StatusBadRequest, msgNoLanguage)
	}

	result, err := h.service.Translate(c.Request().Context(), req.Text, req.Language)
	if err != nil {
		logger.Debug("translate rejected", "module", "handler", "action", "translate", "resource", "translation", "result", "failed", "language", req.Language, "error", err)
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, translateResponse{
		Language: result.TargetLanguageCode,
		Text:     result.Text,
		Failed:   result.Failed,
	})
}

// Languages lists the translation targets.
// @Summary List languages
// @Tags translate
// @Produce json
// @Success 200 {array} languageResponse
// @Router /languages [get]
func (h *TranslateHandler) Languages(c echo.Context) error {
	languages := h.service.Languages()
	resp := make([]languageResponse, len(languages))
	for i, l := range languages {
		resp[i] = languageResponse{Code: l.Code, Name: l.Name}
	}
	return c.JSON(http.StatusOK, resp)
}
