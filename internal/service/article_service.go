package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	readability "codeberg.org/readeck/go-readability/v2"
	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"

	"newssaar/backend/internal/config"
	"newssaar/backend/internal/logger"
	"newssaar/backend/internal/model"
)

const maxArticleBytes = 5 << 20

type ArticleService interface {
	// Enrich never aborts: failures are reported through EnrichedArticle.Err.
	Enrich(ctx context.Context, item model.NewsItem) model.EnrichedArticle
}

type articleService struct {
	httpClient *http.Client
	summarizer Summarizer
	sanitizer  *bluemonday.Policy
	timeout    time.Duration
}

func NewArticleService(httpClient *http.Client, summarizer Summarizer, timeout time.Duration) ArticleService {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if timeout <= 0 {
		timeout = config.DefaultArticleTimeout
	}

	// Scripts and styles confuse readability scoring.
	p := bluemonday.UGCPolicy()
	p.AllowElements("article", "section", "header", "footer", "nav", "aside", "main", "figure", "figcaption")
	p.AllowAttrs("id", "class", "lang", "dir").Globally()

	return &articleService{
		httpClient: httpClient,
		summarizer: summarizer,
		sanitizer:  p,
		timeout:    timeout,
	}
}

func (s *articleService) Enrich(ctx context.Context, item model.NewsItem) model.EnrichedArticle {
	article := model.EnrichedArticle{Item: item}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, pageURL, err := s.download(ctx, item.Link)
	if err != nil {
		return degrade(article, "download", err)
	}

	article.TopImageURL = metaImage(raw, pageURL)

	content, err := s.readable(raw, pageURL)
	if err != nil {
		return degrade(article, "parse", err)
	}
	if article.TopImageURL == "" {
		article.TopImageURL = firstImage(content, pageURL)
	}

	text := htmlToText(content)
	if text == "" {
		return degrade(article, "parse", fmt.Errorf("%w: no readable content", ErrParse))
	}
	article.BodyText = text

	summary, err := s.summarizer.Summarize(ctx, item.Title, text)
	if err != nil {
		return degrade(article, "summarize", err)
	}
	article.Summary = summary

	logger.Debug("article enriched", "module", "service", "action", "enrich", "resource", "article", "result", "ok", "host", hostOf(item.Link))
	return article
}

func degrade(article model.EnrichedArticle, stage string, err error) model.EnrichedArticle {
	logger.Warn("article enrich failed", "module", "service", "action", stage, "resource", "article", "result", "failed", "host", hostOf(article.Item.Link), "error", err)
	article.Err = "Error: " + err.Error()
	return article
}

func (s *articleService) download(ctx context.Context, link string) ([]byte, *url.URL, error) {
	if err := validateHTTPURL(link); err != nil {
		return nil, nil, fmt.Errorf("%w: article link %q", err, link)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	req.Header.Set("User-Agent", config.ChromeUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("%w: HTTP %d", ErrNetwork, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxArticleBytes))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: read body: %v", ErrNetwork, err)
	}

	// Google News links redirect; relative URLs resolve against the final page.
	pageURL := req.URL
	if resp.Request != nil && resp.Request.URL != nil {
		pageURL = resp.Request.URL
	}
	return body, pageURL, nil
}

func (s *articleService) readable(raw []byte, pageURL *url.URL) (string, error) {
	sanitized := s.sanitizer.SanitizeBytes(raw)

	parser := readability.NewParser()
	parsed, err := parser.Parse(bytes.NewReader(sanitized), pageURL)
	if err != nil {
		return "", fmt.Errorf("%w: readability: %v", ErrParse, err)
	}

	var buf bytes.Buffer
	if err := parsed.RenderHTML(&buf); err != nil {
		return "", fmt.Errorf("%w: render: %v", ErrParse, err)
	}
	return buf.String(), nil
}

// metaImage looks at og:image, twitter:image and link[rel=image_src] in
// that order. Meta tags are read before sanitizing strips them.
func metaImage(raw []byte, pageURL *url.URL) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return ""
	}
	candidates := []struct {
		selector string
		attr     string
	}{
		{`meta[property="og:image"]`, "content"},
		{`meta[name="og:image"]`, "content"},
		{`meta[name="twitter:image"]`, "content"},
		{`meta[property="twitter:image"]`, "content"},
		{`link[rel="image_src"]`, "href"},
	}
	for _, c := range candidates {
		if ref, ok := doc.Find(c.selector).First().Attr(c.attr); ok {
			if resolved := resolveImageURL(pageURL, ref); resolved != "" {
				return resolved
			}
		}
	}
	return ""
}

func firstImage(content string, pageURL *url.URL) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return ""
	}
	var found string
	doc.Find("img").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		for _, attr := range []string{"src", "data-src"} {
			if ref, ok := sel.Attr(attr); ok {
				if resolved := resolveImageURL(pageURL, ref); resolved != "" {
					found = resolved
					return false
				}
			}
		}
		return true
	})
	return found
}

func resolveImageURL(base *url.URL, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" || strings.HasPrefix(ref, "data:") {
		return ""
	}
	parsed, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	if base != nil {
		parsed = base.ResolveReference(parsed)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return ""
	}
	return parsed.String()
}
