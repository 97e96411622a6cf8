package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"newssaar/backend/internal/catalog"
	"newssaar/backend/internal/config"
	"newssaar/backend/internal/feed"
	"newssaar/backend/internal/handler"
	transport "newssaar/backend/internal/http"
	"newssaar/backend/internal/logger"
	"newssaar/backend/internal/network"
	"newssaar/backend/internal/service"
	"newssaar/backend/internal/service/ai"
)

const (
	translateTimeout = 15 * time.Second
	shutdownTimeout  = 10 * time.Second
)

// @title NewsSaar API
// @version 1.0
// @description Summarised Google News with sentiment and on-demand translation.
// @BasePath /api
func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel), cfg.LogFormat)
	if envErr != nil && !errors.Is(envErr, os.ErrNotExist) {
		logger.Warn("env file load failed", "module", "main", "action", "load", "resource", "config", "result", "failed", "error", envErr)
	}

	ctx := context.Background()

	languages, err := catalog.Default()
	if err != nil {
		logger.Error("language catalog load failed", "module", "main", "action", "load", "resource", "catalog", "result", "failed", "error", err)
		os.Exit(1)
	}

	var proxy network.ProxyProvider
	if cfg.ProxyURL != "" {
		proxy = network.StaticProxy(cfg.ProxyURL)
	}
	clients := network.NewClientFactory(proxy)

	provider := newAIProvider(ctx, cfg)

	summarizer := service.NewSummarizer(cfg, provider)
	fetcher := feed.NewFetcher(cfg.FeedBaseURL, clients.NewHTTPClient(ctx, cfg.FeedTimeout))
	articleService := service.NewArticleService(clients.NewHTTPClient(ctx, cfg.ArticleTimeout), summarizer, cfg.ArticleTimeout)
	posterService := service.NewPosterService(clients, cfg.ImageTimeout, service.LoadPlaceholder(cfg.PlaceholderPath))
	sentimentService := service.NewSentimentService(service.NewVaderScorer())
	newsService := service.NewNewsService(fetcher, articleService, posterService, sentimentService, cfg.EnrichWorkers)

	translator := service.NewTranslator(cfg, clients.NewRestyClient(ctx, translateTimeout, config.DefaultUserAgent), provider, languages)
	translationService := service.NewTranslationService(languages, translator)

	router := transport.NewRouter(
		handler.NewNewsHandler(newsService),
		handler.NewTranslateHandler(translationService),
		handler.NewPosterHandler(posterService),
		handler.NewCatalogHandler(),
	)

	go func() {
		logger.Info("server starting", "module", "main", "action", "start", "resource", "http", "result", "ok", "addr", cfg.Addr, "languages", languages.Len(), "summarizer", cfg.Summarizer, "translator", cfg.Translator)
		if err := router.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "module", "main", "action", "start", "resource", "http", "result", "failed", "error", err)
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	logger.Info("shutting down", "module", "main", "action", "stop", "resource", "http", "result", "ok")

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := router.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "module", "main", "action", "stop", "resource", "http", "result", "failed", "error", err)
	}
}

// newAIProvider returns nil when AI is not configured; both capabilities
// then use their non-AI backends.
func newAIProvider(ctx context.Context, cfg config.Config) ai.Provider {
	if !cfg.AI.Enabled() {
		return nil
	}
	p, err := ai.NewProvider(ctx, ai.Config{
		Provider: cfg.AI.Provider,
		APIKey:   cfg.AI.APIKey,
		BaseURL:  cfg.AI.BaseURL,
		Model:    cfg.AI.Model,
	})
	if err != nil {
		logger.Warn("ai provider disabled", "module", "main", "action", "init", "resource", "ai", "result", "failed", "provider", cfg.AI.Provider, "error", err)
		return nil
	}
	return ai.WithRateLimit(p, ai.NewRateLimiter(cfg.AI.QPS))
}
