package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"newssaar/backend/internal/service"
)

const cacheMaxAge = 86400 // 1 day

type PosterHandler struct {
	service service.PosterService
}

func NewPosterHandler(service service.PosterService) *PosterHandler {
	return &PosterHandler{service: service}
}

func (h *PosterHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/poster", h.Poster)
}

// Poster returns the article image or the placeholder.
// @Summary Article poster
// @Description Downloads the image at url; any failure yields the placeholder image
// @Tags news
// @Produce octet-stream
// @Param url query string false "Image URL"
// @Success 200 {file} binary
// @Router /poster [get]
func (h *PosterHandler) Poster(c echo.Context) error {
	poster := h.service.Resolve(c.Request().Context(), c.QueryParam("url"))

	header := c.Response().Header()
	if poster.Placeholder {
		// Never cache the placeholder.
		header.Set("Cache-Control", "no-store")
		header.Set("X-Poster-Placeholder", "true")
	} else {
		header.Set("Cache-Control", fmt.Sprintf("public, max-age=%d", cacheMaxAge))
	}
	header.Set("X-Content-Type-Options", "nosniff")

	return c.Blob(http.StatusOK, poster.ContentType, poster.Data)
}
