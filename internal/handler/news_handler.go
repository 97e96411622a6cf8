package handler

import (
	"encoding/base64"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"newssaar/backend/internal/logger"
	"newssaar/backend/internal/model"
	"newssaar/backend/internal/service"
)

type NewsHandler struct {
	service service.NewsService
}

type newsListResponse struct {
	Heading string             `json:"heading"`
	Kind    string             `json:"kind"`
	Count   int                `json:"count"`
	Items   []newsItemResponse `json:"items"`
}

type newsItemResponse struct {
	Index             int     `json:"index"`
	Title             string  `json:"title"`
	Link              string  `json:"link"`
	Source            string  `json:"source"`
	SourceURL         string  `json:"sourceUrl,omitempty"`
	PublishDate       string  `json:"publishDate"`
	Summary           string  `json:"summary"`
	Sentiment         string  `json:"sentiment"`
	Score             float64 `json:"score"`
	TopImageURL       string  `json:"topImageUrl,omitempty"`
	PosterURL         string  `json:"posterUrl"`
	PosterData        string  `json:"posterData,omitempty"`
	PosterPlaceholder bool    `json:"posterPlaceholder"`
	Notice            string  `json:"notice,omitempty"`
	TranslationKey    string  `json:"translationKey"`
}

func NewNewsHandler(service service.NewsService) *NewsHandler {
	return &NewsHandler{service: service}
}

func (h *NewsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/news/top", h.Top)
	g.GET("/news/category", h.Category)
	g.GET("/news/search", h.Search)
}

// Top renders trending news.
// @Summary Trending news
// @Description Fetch, summarize and classify the top Google News stories
// @Tags news
// @Produce json
// @Param count query int false "Number of news (5-25)"
// @Param posters query string false "Set to inline to embed poster images as data URIs"
// @Success 200 {object} newsListResponse
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /news/top [get]
func (h *NewsHandler) Top(c echo.Context) error {
	return h.render(c, service.Selection{Kind: service.SelectionTop})
}

// Category renders news for one section topic.
// @Summary Category news
// @Description Fetch, summarize and classify news of a Google News section
// @Tags news
// @Produce json
// @Param topic query string true "WORLD, NATION, BUSINESS, TECHNOLOGY, ENTERTAINMENT, SPORTS, SCIENCE or HEALTH"
// @Param count query int false "Number of news (5-25)"
// @Param posters query string false "Set to inline to embed poster images as data URIs"
// @Success 200 {object} newsListResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /news/category [get]
func (h *NewsHandler) Category(c echo.Context) error {
	return h.render(c, service.Selection{Kind: service.SelectionCategory, Topic: c.QueryParam("topic")})
}

// Search renders news matching a free-text topic.
// @Summary Search news
// @Description Fetch, summarize and classify Google News search results
// @Tags news
// @Produce json
// @Param q query string true "Search topic"
// @Param count query int false "Number of news (5-15)"
// @Param posters query string false "Set to inline to embed poster images as data URIs"
// @Success 200 {object} newsListResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /news/search [get]
func (h *NewsHandler) Search(c echo.Context) error {
	return h.render(c, service.Selection{Kind: service.SelectionSearch, Query: c.QueryParam("q"), Triggered: true})
}

func (h *NewsHandler) render(c echo.Context, sel service.Selection) error {
	count, ok := parseCountParam(c)
	if !ok {
		return Error(c, http.StatusBadRequest, "invalid count")
	}
	sel.Quantity = count

	items, err := h.service.Render(c.Request().Context(), sel)
	if err != nil {
		return writeServiceError(c, err)
	}

	inline := wantsInlinePosters(c)
	resp := newsListResponse{
		Heading: sel.Heading(),
		Kind:    sel.Kind.String(),
		Count:   len(items),
		Items:   make([]newsItemResponse, len(items)),
	}
	for i, item := range items {
		resp.Items[i] = toNewsItemResponse(item, inline)
	}

	logger.Debug("news list served", "module", "handler", "action", "list", "resource", "news", "result", "ok", "kind", resp.Kind, "count", resp.Count)
	return c.JSON(http.StatusOK, resp)
}

func toNewsItemResponse(item model.RenderedItem, inline bool) newsItemResponse {
	resp := newsItemResponse{
		Index:             item.Index,
		Title:             item.Item.Title,
		Link:              item.Item.Link,
		Source:            item.Item.Source,
		SourceURL:         item.Item.SourceURL,
		PublishDate:       item.Item.PublishDate,
		Summary:           item.Summary,
		Sentiment:         string(item.Sentiment),
		Score:             item.Score,
		TopImageURL:       item.TopImageURL,
		PosterURL:         posterURL(item.TopImageURL),
		PosterPlaceholder: item.Poster.Placeholder,
		Notice:            item.Notice,
		TranslationKey:    service.TranslationKey(item.Index-1, item.Item.Title),
	}
	if inline && len(item.Poster.Data) > 0 {
		resp.PosterData = "data:" + item.Poster.ContentType + ";base64," + base64.StdEncoding.EncodeToString(item.Poster.Data)
	}
	return resp
}

func posterURL(imageURL string) string {
	if imageURL == "" {
		return "/api/poster"
	}
	return "/api/poster?url=" + url.QueryEscape(imageURL)
}
