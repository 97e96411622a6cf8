package service_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"newssaar/backend/internal/feed"
	"newssaar/backend/internal/service"
)

func TestSelectionValidate_Kinds(t *testing.T) {
	_, _, _, err := service.Selection{}.Validate()
	require.ErrorIs(t, err, service.ErrNoSelection)

	sel, mode, param, err := service.Selection{Kind: service.SelectionTop}.Validate()
	require.NoError(t, err)
	require.Equal(t, feed.ModeTop, mode)
	require.Equal(t, "", param)
	require.Equal(t, 5, sel.Quantity)

	_, mode, param, err = service.Selection{Kind: service.SelectionCategory, Topic: "TECHNOLOGY", Quantity: 25}.Validate()
	require.NoError(t, err)
	require.Equal(t, feed.ModeCategory, mode)
	require.Equal(t, "TECHNOLOGY", param)

	_, mode, param, err = service.Selection{Kind: service.SelectionSearch, Query: "electric vehicles", Quantity: 15, Triggered: true}.Validate()
	require.NoError(t, err)
	require.Equal(t, feed.ModeSearch, mode)
	require.Equal(t, "electric vehicles", param)
}

func TestSelectionValidate_Topic(t *testing.T) {
	_, _, _, err := service.Selection{Kind: service.SelectionCategory}.Validate()
	require.ErrorIs(t, err, service.ErrNoTopic)

	_, _, _, err = service.Selection{Kind: service.SelectionCategory, Topic: service.ChooseTopic}.Validate()
	require.ErrorIs(t, err, service.ErrNoTopic)

	_, _, _, err = service.Selection{Kind: service.SelectionCategory, Topic: "GOSSIP"}.Validate()
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestSelectionValidate_SearchNeedsTriggerAndQuery(t *testing.T) {
	_, _, _, err := service.Selection{Kind: service.SelectionSearch, Query: "golang"}.Validate()
	require.ErrorIs(t, err, service.ErrNoQuery)

	_, _, _, err = service.Selection{Kind: service.SelectionSearch, Query: "   ", Triggered: true}.Validate()
	require.ErrorIs(t, err, service.ErrNoQuery)
}

func TestSelectionValidate_QuantityBounds(t *testing.T) {
	cases := []struct {
		name string
		sel  service.Selection
		ok   bool
	}{
		{"top min", service.Selection{Kind: service.SelectionTop, Quantity: 5}, true},
		{"top max", service.Selection{Kind: service.SelectionTop, Quantity: 25}, true},
		{"top below", service.Selection{Kind: service.SelectionTop, Quantity: 4}, false},
		{"top above", service.Selection{Kind: service.SelectionTop, Quantity: 26}, false},
		{"category max", service.Selection{Kind: service.SelectionCategory, Topic: "WORLD", Quantity: 25}, true},
		{"search max", service.Selection{Kind: service.SelectionSearch, Query: "x", Triggered: true, Quantity: 15}, true},
		{"search above", service.Selection{Kind: service.SelectionSearch, Query: "x", Triggered: true, Quantity: 16}, false},
		{"negative", service.Selection{Kind: service.SelectionTop, Quantity: -1}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, _, err := tc.sel.Validate()
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, service.ErrInvalidQuantity)
			var qe *service.QuantityError
			require.ErrorAs(t, err, &qe)
		})
	}
}

func TestSelectionHeading(t *testing.T) {
	require.Equal(t, "Here is the Trending🔥 news for you", service.Selection{Kind: service.SelectionTop}.Heading())
	require.Equal(t, "Here are the some SPORTS News for you", service.Selection{Kind: service.SelectionCategory, Topic: "SPORTS"}.Heading())
	require.Equal(t, "Here are the some Electric vehicles News for you", service.Selection{Kind: service.SelectionSearch, Query: "electric VEHICLES"}.Heading())
	require.Equal(t, "", service.Selection{}.Heading())
}

func TestTranslationKey(t *testing.T) {
	require.Equal(t, "translation_0_Rust 2.0 released", service.TranslationKey(0, "Rust 2.0 released"))
}
