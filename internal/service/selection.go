package service

import (
	"fmt"
	"strings"
	"unicode"

	"newssaar/backend/internal/feed"
)

type SelectionKind int

const (
	SelectionUnselected SelectionKind = iota
	SelectionTop
	SelectionCategory
	SelectionSearch
)

// ChooseTopic is the unselected entry of the category picker.
const ChooseTopic = "Choose Topic"

func (k SelectionKind) String() string {
	switch k {
	case SelectionTop:
		return "top"
	case SelectionCategory:
		return "category"
	case SelectionSearch:
		return "search"
	default:
		return "unselected"
	}
}

// QuantityBounds returns the inclusive count range for the kind.
func (k SelectionKind) QuantityBounds() (lo, hi int) {
	if k == SelectionSearch {
		return 5, 15
	}
	return 5, 25
}

// Selection is the user's choice for one render cycle.
type Selection struct {
	Kind      SelectionKind
	Topic     string // category, for SelectionCategory
	Query     string // free text, for SelectionSearch
	Quantity  int    // 0 means the kind's minimum
	Triggered bool   // search button pressed
}

// Validate normalizes the quantity and resolves the feed request.
func (s Selection) Validate() (Selection, feed.Mode, string, error) {
	switch s.Kind {
	case SelectionTop:
	case SelectionCategory:
		topic := strings.TrimSpace(s.Topic)
		if topic == "" || topic == ChooseTopic {
			return s, 0, "", ErrNoTopic
		}
		if !feed.IsCategory(topic) {
			return s, 0, "", fmt.Errorf("%w: unknown topic %q", ErrInvalid, topic)
		}
		s.Topic = topic
	case SelectionSearch:
		if !s.Triggered || strings.TrimSpace(s.Query) == "" {
			return s, 0, "", ErrNoQuery
		}
	default:
		return s, 0, "", ErrNoSelection
	}

	lo, hi := s.Kind.QuantityBounds()
	if s.Quantity == 0 {
		s.Quantity = lo
	}
	if s.Quantity < lo || s.Quantity > hi {
		return s, 0, "", &QuantityError{Kind: s.Kind, Quantity: s.Quantity, Min: lo, Max: hi}
	}

	switch s.Kind {
	case SelectionCategory:
		return s, feed.ModeCategory, s.Topic, nil
	case SelectionSearch:
		return s, feed.ModeSearch, s.Query, nil
	default:
		return s, feed.ModeTop, "", nil
	}
}

// Heading is the title shown above a successful result list.
func (s Selection) Heading() string {
	switch s.Kind {
	case SelectionTop:
		return "Here is the Trending🔥 news for you"
	case SelectionCategory:
		return fmt.Sprintf("Here are the some %s News for you", strings.TrimSpace(s.Topic))
	case SelectionSearch:
		return fmt.Sprintf("Here are the some %s News for you", capitalize(strings.TrimSpace(s.Query)))
	default:
		return ""
	}
}

// TranslationKey identifies the language selector of the item at the
// 0-based position index.
func TranslationKey(index int, title string) string {
	return fmt.Sprintf("translation_%d_%s", index, title)
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
