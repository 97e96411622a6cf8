package model

type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
)

// TranslationResult is never cached; Failed marks the sentinel text.
type TranslationResult struct {
	TargetLanguageCode string
	Text               string
	Failed             bool
}

// Language is one entry of the language catalog.
type Language struct {
	Code string
	Name string
}
