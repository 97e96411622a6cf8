// Package feed retrieves Google News RSS documents and turns their items into NewsItems.
package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"newssaar/backend/internal/config"
	"newssaar/backend/internal/logger"
	"newssaar/backend/internal/model"
)

var (
	ErrNetwork     = errors.New("feed network error")
	ErrParse       = errors.New("feed parse error")
	ErrUnknownMode = errors.New("unknown feed mode")
)

type Mode int

const (
	ModeTop Mode = iota
	ModeCategory
	ModeSearch
)

func (m Mode) String() string {
	switch m {
	case ModeTop:
		return "top"
	case ModeCategory:
		return "category"
	case ModeSearch:
		return "search"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Categories are the Google News section topics accepted by ModeCategory.
var Categories = []string{
	"WORLD",
	"NATION",
	"BUSINESS",
	"TECHNOLOGY",
	"ENTERTAINMENT",
	"SPORTS",
	"SCIENCE",
	"HEALTH",
}

// IsCategory reports whether topic is one of Categories (exact match).
func IsCategory(topic string) bool {
	for _, c := range Categories {
		if c == topic {
			return true
		}
	}
	return false
}

// SearchQuery removes every whitespace run from topic, so
// "electric vehicles" becomes "electricvehicles".
func SearchQuery(topic string) string {
	return strings.Join(strings.Fields(topic), "")
}

type Fetcher struct {
	baseURL    string
	httpClient *http.Client
}

// NewFetcher creates a fetcher against baseURL (e.g. https://news.google.com).
func NewFetcher(baseURL string, httpClient *http.Client) *Fetcher {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.DefaultFeedTimeout}
	}
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = config.DefaultFeedBaseURL
	}
	return &Fetcher{baseURL: baseURL, httpClient: httpClient}
}

// URLFor builds the endpoint for mode. The category parameter is embedded as given.
func (f *Fetcher) URLFor(mode Mode, parameter string) (string, error) {
	switch mode {
	case ModeTop:
		return f.baseURL + "/news/rss", nil
	case ModeCategory:
		return f.baseURL + "/news/rss/headlines/section/topic/" + url.PathEscape(parameter), nil
	case ModeSearch:
		return f.baseURL + "/rss/search?q=" + url.QueryEscape(SearchQuery(parameter)), nil
	default:
		return "", ErrUnknownMode
	}
}

// Fetch performs exactly one GET for mode and parses every <item>.
// Transport and HTTP failures wrap ErrNetwork; malformed documents wrap ErrParse.
func (f *Fetcher) Fetch(ctx context.Context, mode Mode, parameter string) ([]model.NewsItem, error) {
	endpoint, err := f.URLFor(mode, parameter)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrNetwork, err)
	}
	req.Header.Set("User-Agent", config.DefaultUserAgent)
	req.Header.Set("Accept", "application/rss+xml, application/xml;q=0.9, */*;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		logger.Warn("feed fetch failed", "module", "feed", "action", "fetch", "resource", "feed", "result", "failed", "mode", mode.String(), "error", err)
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		_, _ = io.Copy(io.Discard, resp.Body)
		logger.Warn("feed http error", "module", "feed", "action", "fetch", "resource", "feed", "result", "failed", "mode", mode.String(), "status_code", resp.StatusCode)
		return nil, fmt.Errorf("%w: HTTP %d", ErrNetwork, resp.StatusCode)
	}

	items, err := ParseItems(resp.Body)
	if err != nil {
		logger.Warn("feed parse failed", "module", "feed", "action", "parse", "resource", "feed", "result", "failed", "mode", mode.String(), "error", err)
		return nil, err
	}

	logger.Info("feed fetched", "module", "feed", "action", "fetch", "resource", "feed", "result", "ok", "mode", mode.String(), "items", len(items))
	return items, nil
}
