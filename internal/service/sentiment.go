package service

import (
	"strings"

	"github.com/jonreiter/govader"

	"newssaar/backend/internal/model"
)

const (
	positiveThreshold = 0.1
	negativeThreshold = -0.1
)

// Classify maps a compound score to a label; both thresholds are inclusive.
func Classify(score float64) model.Sentiment {
	switch {
	case score >= positiveThreshold:
		return model.SentimentPositive
	case score <= negativeThreshold:
		return model.SentimentNegative
	default:
		return model.SentimentNeutral
	}
}

// SentimentScorer produces a compound polarity score in [-1, 1].
type SentimentScorer interface {
	Compound(text string) float64
}

type vaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderScorer scores text with the VADER lexicon.
func NewVaderScorer() SentimentScorer {
	return &vaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *vaderScorer) Compound(text string) float64 {
	return v.analyzer.PolarityScores(text).Compound
}

type SentimentService interface {
	// Classify returns the label and the clamped compound score for text.
	Classify(text string) (model.Sentiment, float64)
}

type sentimentService struct {
	scorer SentimentScorer
}

func NewSentimentService(scorer SentimentScorer) SentimentService {
	return &sentimentService{scorer: scorer}
}

func (s *sentimentService) Classify(text string) (model.Sentiment, float64) {
	if strings.TrimSpace(text) == "" {
		return model.SentimentNeutral, 0
	}
	score := s.scorer.Compound(text)
	if score > 1 {
		score = 1
	} else if score < -1 {
		score = -1
	}
	return Classify(score), score
}
