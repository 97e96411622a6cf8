package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"newssaar/backend/internal/feed"
	"newssaar/backend/internal/logger"
	"newssaar/backend/internal/model"
)

// FeedFetcher is satisfied by *feed.Fetcher.
type FeedFetcher interface {
	Fetch(ctx context.Context, mode feed.Mode, parameter string) ([]model.NewsItem, error)
}

type NewsService interface {
	// Render fetches the selected feed and renders the first
	// min(quantity, available) items in feed order.
	Render(ctx context.Context, sel Selection) ([]model.RenderedItem, error)
}

type newsService struct {
	fetcher   FeedFetcher
	articles  ArticleService
	posters   PosterService
	sentiment SentimentService
	workers   int
}

// NewNewsService enriches up to workers items at a time; 1 is strictly sequential.
func NewNewsService(fetcher FeedFetcher, articles ArticleService, posters PosterService, sentiment SentimentService, workers int) NewsService {
	if workers <= 0 {
		workers = 1
	}
	return &newsService{
		fetcher:   fetcher,
		articles:  articles,
		posters:   posters,
		sentiment: sentiment,
		workers:   workers,
	}
}

func (s *newsService) Render(ctx context.Context, sel Selection) ([]model.RenderedItem, error) {
	sel, mode, parameter, err := sel.Validate()
	if err != nil {
		return nil, err
	}

	items, err := s.fetcher.Fetch(ctx, mode, parameter)
	if err != nil {
		return nil, fmt.Errorf("fetch %s feed: %w", mode, fromFeed(err))
	}

	if len(items) == 0 {
		switch sel.Kind {
		case SelectionCategory:
			return nil, &NoResultsError{Topic: sel.Topic}
		case SelectionSearch:
			return nil, &NoResultsError{Topic: strings.TrimSpace(sel.Query)}
		}
		return []model.RenderedItem{}, nil
	}

	if len(items) > sel.Quantity {
		items = items[:sel.Quantity]
	}

	rendered := make([]model.RenderedItem, len(items))
	var g errgroup.Group
	g.SetLimit(s.workers)
	for i, item := range items {
		g.Go(func() error {
			rendered[i] = s.renderItem(ctx, i, item)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Info("news rendered", "module", "service", "action", "render", "resource", "news", "result", "ok", "kind", sel.Kind.String(), "count", len(rendered))
	return rendered, nil
}

func (s *newsService) renderItem(ctx context.Context, index int, item model.NewsItem) model.RenderedItem {
	article := s.articles.Enrich(ctx, item)
	poster := s.posters.Resolve(ctx, article.TopImageURL)
	label, score := s.sentiment.Classify(article.Summary)

	return model.RenderedItem{
		Index:       index + 1,
		Item:        item,
		Poster:      poster,
		Summary:     article.Summary,
		TopImageURL: article.TopImageURL,
		Sentiment:   label,
		Score:       score,
		Notice:      article.Err,
	}
}
