package model

// NewsItem is one <item> of a fetched feed. Identity is its position in the feed.
type NewsItem struct {
	Title       string
	Link        string
	Source      string
	SourceURL   string
	PublishDate string // as provided by the feed, unparsed
}

// EnrichedArticle is the downloaded and summarized form of a NewsItem.
// Fields stay empty when enrichment degraded; Err then carries the notice.
type EnrichedArticle struct {
	Item        NewsItem
	BodyText    string
	Summary     string
	TopImageURL string
	Err         string
}

// Poster is a displayable image, either fetched or the placeholder.
type Poster struct {
	Data        []byte
	ContentType string
	Width       int
	Height      int
	Placeholder bool
}

// RenderedItem is one row of a render cycle.
type RenderedItem struct {
	Index       int // 1-based display position
	Item        NewsItem
	Poster      Poster
	Summary     string
	TopImageURL string
	Sentiment   Sentiment
	Score       float64
	Notice      string
}
