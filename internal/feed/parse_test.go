package feed_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"newssaar/backend/internal/feed"
)

func TestParseItems_MissingTitle(t *testing.T) {
	doc := `<rss version="2.0"><channel>
<item><title>Ok</title><link>https://a.example.com/1</link></item>
<item><link>https://a.example.com/2</link></item>
</channel></rss>`

	_, err := feed.ParseItems(strings.NewReader(doc))
	require.ErrorIs(t, err, feed.ErrParse)
	require.Contains(t, err.Error(), "item 2")
	require.Contains(t, err.Error(), "missing title")
}

func TestParseItems_MissingLink(t *testing.T) {
	doc := `<rss version="2.0"><channel><item><title>No link</title></item></channel></rss>`

	_, err := feed.ParseItems(strings.NewReader(doc))
	require.ErrorIs(t, err, feed.ErrParse)
	require.Contains(t, err.Error(), "missing link")
}

func TestParseItems_DefaultsOptionalFields(t *testing.T) {
	doc := `<rss version="2.0"><channel>
<item><title> Spaced title </title><link>https://www.reuters.com/world/x</link></item>
</channel></rss>`

	items, err := feed.ParseItems(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Spaced title", items[0].Title)
	require.Equal(t, "reuters.com", items[0].Source)
	require.Equal(t, "", items[0].SourceURL)
	require.Equal(t, "", items[0].PublishDate)
}

func TestParseItems_NotXML(t *testing.T) {
	_, err := feed.ParseItems(strings.NewReader("not a feed"))
	require.ErrorIs(t, err, feed.ErrParse)
}
