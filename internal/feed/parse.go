package feed

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/mmcdole/gofeed/rss"

	"newssaar/backend/internal/model"
)

// ParseItems decodes an RSS 2.0 document. Title and link are required for
// every item; a missing source falls back to the link's host and a missing
// pubDate stays empty.
func ParseItems(r io.Reader) ([]model.NewsItem, error) {
	parser := rss.Parser{}
	parsed, err := parser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	items := make([]model.NewsItem, 0, len(parsed.Items))
	for i, it := range parsed.Items {
		if it == nil {
			continue
		}
		item, err := toNewsItem(it)
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrParse, i+1, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func toNewsItem(it *rss.Item) (model.NewsItem, error) {
	title := strings.TrimSpace(it.Title)
	if title == "" {
		return model.NewsItem{}, fmt.Errorf("missing title")
	}
	link := strings.TrimSpace(it.Link)
	if link == "" {
		return model.NewsItem{}, fmt.Errorf("missing link")
	}

	item := model.NewsItem{
		Title:       title,
		Link:        link,
		PublishDate: strings.TrimSpace(it.PubDate),
	}
	if it.Source != nil {
		item.Source = strings.TrimSpace(it.Source.Title)
		item.SourceURL = strings.TrimSpace(it.Source.URL)
	}
	if item.Source == "" {
		item.Source = hostOf(link)
	}
	return item, nil
}

func hostOf(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(parsed.Hostname(), "www.")
}
