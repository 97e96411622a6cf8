package service_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"newssaar/backend/internal/feed"
	"newssaar/backend/internal/model"
	"newssaar/backend/internal/service"
	servicemock "newssaar/backend/internal/service/mock"
)

func feedItems(n int) []model.NewsItem {
	items := make([]model.NewsItem, n)
	for i := range items {
		items[i] = model.NewsItem{
			Title:       fmt.Sprintf("Story %d", i+1),
			Link:        fmt.Sprintf("https://news.example.com/%d", i+1),
			Source:      "Example",
			PublishDate: "Tue, 14 Oct 2026 08:00:00 GMT",
		}
	}
	return items
}

type newsFixture struct {
	fetcher  *servicemock.MockFeedFetcher
	articles *servicemock.MockArticleService
	posters  *servicemock.MockPosterService
	enriched atomic.Int32
	svc      service.NewsService
}

func newNewsFixture(t *testing.T, workers int) *newsFixture {
	ctrl := gomock.NewController(t)
	f := &newsFixture{
		fetcher:  servicemock.NewMockFeedFetcher(ctrl),
		articles: servicemock.NewMockArticleService(ctrl),
		posters:  servicemock.NewMockPosterService(ctrl),
	}
	f.posters.EXPECT().Resolve(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, imageURL string) model.Poster {
		if imageURL == "" {
			return model.Poster{Placeholder: true}
		}
		return model.Poster{ContentType: "image/jpeg"}
	}).AnyTimes()
	scorer := service.NewSentimentService(scoreFunc(func(text string) float64 {
		if strings.Contains(text, "good") {
			return 0.6
		}
		return 0
	}))
	f.svc = service.NewNewsService(f.fetcher, f.articles, f.posters, scorer, workers)
	return f
}

type scoreFunc func(string) float64

func (f scoreFunc) Compound(text string) float64 { return f(text) }

func (f *newsFixture) expectEnrich(fail map[string]bool, jitter bool) {
	f.articles.EXPECT().Enrich(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, item model.NewsItem) model.EnrichedArticle {
		f.enriched.Add(1)
		if jitter {
			time.Sleep(time.Duration(rand.Intn(5)) * time.Millisecond)
		}
		if fail[item.Title] {
			return model.EnrichedArticle{Item: item, Err: "Error: connection refused"}
		}
		return model.EnrichedArticle{Item: item, Summary: "good news about " + item.Title, TopImageURL: item.Link + "/lead.jpg"}
	}).AnyTimes()
}

func TestNewsService_CategoryRendersRequestedCount(t *testing.T) {
	f := newNewsFixture(t, 4)
	f.fetcher.EXPECT().Fetch(gomock.Any(), feed.ModeCategory, "TECHNOLOGY").Return(feedItems(12), nil)
	f.expectEnrich(nil, true)

	items, err := f.svc.Render(context.Background(), service.Selection{Kind: service.SelectionCategory, Topic: "TECHNOLOGY", Quantity: 5})
	require.NoError(t, err)
	require.Len(t, items, 5)
	require.EqualValues(t, 5, f.enriched.Load())

	for i, item := range items {
		require.Equal(t, i+1, item.Index)
		require.Equal(t, fmt.Sprintf("Story %d", i+1), item.Item.Title)
		require.Equal(t, model.SentimentPositive, item.Sentiment)
		require.Empty(t, item.Notice)
		require.False(t, item.Poster.Placeholder)
	}
}

func TestNewsService_SearchFewerItemsThanRequested(t *testing.T) {
	f := newNewsFixture(t, 3)
	f.fetcher.EXPECT().Fetch(gomock.Any(), feed.ModeSearch, "electric vehicles").Return(feedItems(8), nil)
	f.expectEnrich(nil, true)

	items, err := f.svc.Render(context.Background(), service.Selection{Kind: service.SelectionSearch, Query: "electric vehicles", Quantity: 15, Triggered: true})
	require.NoError(t, err)
	require.Len(t, items, 8)
	for i, item := range items {
		require.Equal(t, i+1, item.Index)
		require.Equal(t, fmt.Sprintf("Story %d", i+1), item.Item.Title)
	}
}

func TestNewsService_OneFailureDoesNotAffectOthers(t *testing.T) {
	f := newNewsFixture(t, 1)
	f.fetcher.EXPECT().Fetch(gomock.Any(), feed.ModeTop, "").Return(feedItems(6), nil)
	f.expectEnrich(map[string]bool{"Story 2": true}, false)

	items, err := f.svc.Render(context.Background(), service.Selection{Kind: service.SelectionTop, Quantity: 5})
	require.NoError(t, err)
	require.Len(t, items, 5)

	failed := items[1]
	require.Equal(t, "Error: connection refused", failed.Notice)
	require.Empty(t, failed.Summary)
	require.Equal(t, model.SentimentNeutral, failed.Sentiment)
	require.True(t, failed.Poster.Placeholder)

	for _, i := range []int{0, 2, 3, 4} {
		require.Empty(t, items[i].Notice)
		require.Equal(t, model.SentimentPositive, items[i].Sentiment)
	}
}

func TestNewsService_FeedErrorsPropagate(t *testing.T) {
	f := newNewsFixture(t, 2)
	f.fetcher.EXPECT().Fetch(gomock.Any(), feed.ModeTop, "").Return(nil, fmt.Errorf("%w: HTTP 503", feed.ErrNetwork))
	f.fetcher.EXPECT().Fetch(gomock.Any(), feed.ModeCategory, "WORLD").Return(nil, fmt.Errorf("%w: bad xml", feed.ErrParse))

	_, err := f.svc.Render(context.Background(), service.Selection{Kind: service.SelectionTop})
	require.ErrorIs(t, err, service.ErrNetwork)

	require.ErrorIs(t, err, feed.ErrNetwork)
	require.NotErrorIs(t, err, service.ErrParse)

	_, err = f.svc.Render(context.Background(), service.Selection{Kind: service.SelectionCategory, Topic: "WORLD"})
	require.ErrorIs(t, err, service.ErrParse)
	require.ErrorIs(t, err, feed.ErrParse)
}

func TestNewsService_EmptyFeeds(t *testing.T) {
	f := newNewsFixture(t, 2)
	f.fetcher.EXPECT().Fetch(gomock.Any(), feed.ModeCategory, "HEALTH").Return([]model.NewsItem{}, nil)
	f.fetcher.EXPECT().Fetch(gomock.Any(), feed.ModeSearch, "zzqx").Return(nil, nil)
	f.fetcher.EXPECT().Fetch(gomock.Any(), feed.ModeTop, "").Return(nil, nil)

	_, err := f.svc.Render(context.Background(), service.Selection{Kind: service.SelectionCategory, Topic: "HEALTH"})
	require.ErrorIs(t, err, service.ErrNoResults)
	var nr *service.NoResultsError
	require.True(t, errors.As(err, &nr))
	require.Equal(t, "HEALTH", nr.Topic)

	_, err = f.svc.Render(context.Background(), service.Selection{Kind: service.SelectionSearch, Query: "zzqx", Triggered: true})
	require.ErrorIs(t, err, service.ErrNoResults)

	items, err := f.svc.Render(context.Background(), service.Selection{Kind: service.SelectionTop})
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestNewsService_InvalidSelectionSkipsFetch(t *testing.T) {
	f := newNewsFixture(t, 2)

	_, err := f.svc.Render(context.Background(), service.Selection{})
	require.ErrorIs(t, err, service.ErrNoSelection)

	_, err = f.svc.Render(context.Background(), service.Selection{Kind: service.SelectionTop, Quantity: 30})
	require.ErrorIs(t, err, service.ErrInvalidQuantity)

	_, err = f.svc.Render(context.Background(), service.Selection{Kind: service.SelectionSearch, Query: "go"})
	require.ErrorIs(t, err, service.ErrNoQuery)
}

func TestNewsService_CancelledContext(t *testing.T) {
	f := newNewsFixture(t, 2)
	ctx, cancel := context.WithCancel(context.Background())
	f.fetcher.EXPECT().Fetch(gomock.Any(), feed.ModeTop, "").DoAndReturn(func(context.Context, feed.Mode, string) ([]model.NewsItem, error) {
		cancel()
		return feedItems(5), nil
	})
	f.expectEnrich(nil, false)

	_, err := f.svc.Render(ctx, service.Selection{Kind: service.SelectionTop})
	require.ErrorIs(t, err, context.Canceled)
}
