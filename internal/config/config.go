package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	AppName    = "NewsSaar"
	AppVersion = "1.0.0"
)

// Chrome headers for TLS fingerprinting (must match azuretls Chrome profile version)
const (
	ChromeUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/135.0.0.0 Safari/537.36"
	ChromeSecChUa   = `"Google Chrome";v="135", "Chromium";v="135", "Not-A.Brand";v="8"`
)

// DefaultUserAgent for RSS fetching
var DefaultUserAgent = "Mozilla/5.0 (compatible; " + AppName + "/" + AppVersion + ")"

// Summarizer and translator backends.
const (
	SummarizerExtractive = "extractive"
	SummarizerAI         = "ai"
	TranslatorGoogle     = "google"
	TranslatorAI         = "ai"
)

const (
	DefaultAddr            = ":8080"
	DefaultFeedBaseURL     = "https://news.google.com"
	DefaultTranslateURL    = "https://translate.googleapis.com/translate_a/single"
	DefaultArticleTimeout  = 10 * time.Second
	DefaultImageTimeout    = 15 * time.Second
	DefaultFeedTimeout     = 20 * time.Second
	DefaultEnrichWorkers   = 4
	DefaultSummarySentence = 5
	DefaultAIQPS           = 10
)

type AIConfig struct {
	Provider string
	APIKey   string
	BaseURL  string
	Model    string
	QPS      int
}

// Enabled reports whether enough settings are present to build a provider.
func (c AIConfig) Enabled() bool {
	return c.APIKey != "" && c.Model != ""
}

type Config struct {
	Addr             string
	LogLevel         string
	LogFormat        string
	FeedBaseURL      string
	TranslateURL     string
	ArticleTimeout   time.Duration
	ImageTimeout     time.Duration
	FeedTimeout      time.Duration
	EnrichWorkers    int
	ProxyURL         string
	PlaceholderPath  string
	Summarizer       string
	SummarySentences int
	Translator       string
	AI               AIConfig
}

func Load() Config {
	cfg := Config{
		Addr:             getEnvOrDefault("NEWSSAAR_ADDR", DefaultAddr),
		LogLevel:         getEnvOrDefault("NEWSSAAR_LOG_LEVEL", "info"),
		LogFormat:        getEnvOrDefault("NEWSSAAR_LOG_FORMAT", "text"),
		FeedBaseURL:      strings.TrimRight(getEnvOrDefault("NEWSSAAR_FEED_BASE_URL", DefaultFeedBaseURL), "/"),
		TranslateURL:     getEnvOrDefault("NEWSSAAR_TRANSLATE_URL", DefaultTranslateURL),
		ArticleTimeout:   getEnvDurationOrDefault("NEWSSAAR_ARTICLE_TIMEOUT", DefaultArticleTimeout),
		ImageTimeout:     getEnvDurationOrDefault("NEWSSAAR_IMAGE_TIMEOUT", DefaultImageTimeout),
		FeedTimeout:      getEnvDurationOrDefault("NEWSSAAR_FEED_TIMEOUT", DefaultFeedTimeout),
		EnrichWorkers:    getEnvIntOrDefault("NEWSSAAR_ENRICH_WORKERS", DefaultEnrichWorkers),
		ProxyURL:         strings.TrimSpace(os.Getenv("NEWSSAAR_PROXY_URL")),
		PlaceholderPath:  strings.TrimSpace(os.Getenv("NEWSSAAR_PLACEHOLDER_PATH")),
		Summarizer:       strings.ToLower(getEnvOrDefault("NEWSSAAR_SUMMARIZER", SummarizerExtractive)),
		SummarySentences: getEnvIntOrDefault("NEWSSAAR_SUMMARY_SENTENCES", DefaultSummarySentence),
		Translator:       strings.ToLower(getEnvOrDefault("NEWSSAAR_TRANSLATOR", TranslatorGoogle)),
		AI: AIConfig{
			Provider: strings.ToLower(getEnvOrDefault("NEWSSAAR_AI_PROVIDER", "openai")),
			APIKey:   os.Getenv("NEWSSAAR_AI_API_KEY"),
			BaseURL:  os.Getenv("NEWSSAAR_AI_BASE_URL"),
			Model:    os.Getenv("NEWSSAAR_AI_MODEL"),
			QPS:      getEnvIntOrDefault("NEWSSAAR_AI_QPS", DefaultAIQPS),
		},
	}

	if cfg.EnrichWorkers <= 0 {
		cfg.EnrichWorkers = 1
	}
	if cfg.SummarySentences <= 0 {
		cfg.SummarySentences = DefaultSummarySentence
	}
	if cfg.Summarizer != SummarizerAI {
		cfg.Summarizer = SummarizerExtractive
	}
	if cfg.Translator != TranslatorAI {
		cfg.Translator = TranslatorGoogle
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDurationOrDefault accepts Go durations ("10s") or plain seconds ("10").
func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
