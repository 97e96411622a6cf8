package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"newssaar/backend/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load()

	require.Equal(t, config.DefaultAddr, cfg.Addr)
	require.Equal(t, config.DefaultFeedBaseURL, cfg.FeedBaseURL)
	require.Equal(t, 10*time.Second, cfg.ArticleTimeout)
	require.Equal(t, config.DefaultEnrichWorkers, cfg.EnrichWorkers)
	require.Equal(t, config.SummarizerExtractive, cfg.Summarizer)
	require.Equal(t, config.TranslatorGoogle, cfg.Translator)
	require.False(t, cfg.AI.Enabled())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("NEWSSAAR_ADDR", ":9090")
	t.Setenv("NEWSSAAR_FEED_BASE_URL", "http://localhost:1234/")
	t.Setenv("NEWSSAAR_ARTICLE_TIMEOUT", "3s")
	t.Setenv("NEWSSAAR_IMAGE_TIMEOUT", "7")
	t.Setenv("NEWSSAAR_ENRICH_WORKERS", "1")
	t.Setenv("NEWSSAAR_SUMMARIZER", "AI")
	t.Setenv("NEWSSAAR_TRANSLATOR", "ai")
	t.Setenv("NEWSSAAR_AI_API_KEY", "key")
	t.Setenv("NEWSSAAR_AI_MODEL", "gpt-4o-mini")

	cfg := config.Load()
	require.Equal(t, ":9090", cfg.Addr)
	require.Equal(t, "http://localhost:1234", cfg.FeedBaseURL)
	require.Equal(t, 3*time.Second, cfg.ArticleTimeout)
	require.Equal(t, 7*time.Second, cfg.ImageTimeout)
	require.Equal(t, 1, cfg.EnrichWorkers)
	require.Equal(t, config.SummarizerAI, cfg.Summarizer)
	require.Equal(t, config.TranslatorAI, cfg.Translator)
	require.True(t, cfg.AI.Enabled())
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("NEWSSAAR_ARTICLE_TIMEOUT", "soon")
	t.Setenv("NEWSSAAR_ENRICH_WORKERS", "-2")
	t.Setenv("NEWSSAAR_SUMMARIZER", "abstractive")

	cfg := config.Load()
	require.Equal(t, config.DefaultArticleTimeout, cfg.ArticleTimeout)
	require.Equal(t, 1, cfg.EnrichWorkers)
	require.Equal(t, config.SummarizerExtractive, cfg.Summarizer)
}
