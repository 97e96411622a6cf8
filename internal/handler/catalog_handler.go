package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"newssaar/backend/internal/config"
	"newssaar/backend/internal/feed"
	"newssaar/backend/internal/service"
)

type CatalogHandler struct{}

type categoryKindResponse struct {
	Kind    string `json:"kind"`
	Label   string `json:"label"`
	MinNews int    `json:"minNews"`
	MaxNews int    `json:"maxNews"`
}

type categoriesResponse struct {
	Kinds       []categoryKindResponse `json:"kinds"`
	Topics      []string               `json:"topics"`
	Placeholder string                 `json:"placeholder"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/categories", h.Categories)
	g.GET("/health", h.Health)
}

// Categories lists the selection kinds and section topics.
// @Summary List categories
// @Tags news
// @Produce json
// @Success 200 {object} categoriesResponse
// @Router /categories [get]
func (h *CatalogHandler) Categories(c echo.Context) error {
	kinds := []struct {
		kind  service.SelectionKind
		label string
	}{
		{service.SelectionTop, "Trending News 🔥"},
		{service.SelectionCategory, "Favourite Topics 💙"},
		{service.SelectionSearch, "Search Topic 🔍"},
	}
	resp := categoriesResponse{
		Topics:      append([]string(nil), feed.Categories...),
		Placeholder: service.ChooseTopic,
	}
	for _, k := range kinds {
		lo, hi := k.kind.QuantityBounds()
		resp.Kinds = append(resp.Kinds, categoryKindResponse{Kind: k.kind.String(), Label: k.label, MinNews: lo, MaxNews: hi})
	}
	return c.JSON(http.StatusOK, resp)
}

// Health reports liveness.
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} healthResponse
// @Router /health [get]
func (h *CatalogHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{Status: "ok", Name: config.AppName, Version: config.AppVersion})
}
