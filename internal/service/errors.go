package service

import (
	"errors"
	"fmt"

	"newssaar/backend/internal/feed"
)

var (
	ErrNetwork             = errors.New("network error")
	ErrParse               = errors.New("parse error")
	ErrService             = errors.New("external service failed")
	ErrInvalid             = errors.New("invalid")
	ErrNoSelection         = errors.New("no news type selected")
	ErrNoTopic             = errors.New("no topic chosen")
	ErrNoQuery             = errors.New("no search topic given")
	ErrInvalidQuantity     = errors.New("invalid news quantity")
	ErrNoResults           = errors.New("no news found")
	ErrUnsupportedLanguage = errors.New("unsupported target language")
)

// NoResultsError is returned when a category or search feed is empty.
type NoResultsError struct {
	Topic string
}

func (e *NoResultsError) Error() string {
	return fmt.Sprintf("no news found for %s", e.Topic)
}

func (e *NoResultsError) Is(target error) bool {
	return target == ErrNoResults
}

// QuantityError is returned when the requested count is outside the kind's bounds.
type QuantityError struct {
	Kind     SelectionKind
	Quantity int
	Min, Max int
}

func (e *QuantityError) Error() string {
	return fmt.Sprintf("%s quantity %d outside [%d, %d]", e.Kind, e.Quantity, e.Min, e.Max)
}

func (e *QuantityError) Is(target error) bool {
	return target == ErrInvalidQuantity
}

// fromFeed tags a feed failure with the matching service sentinel while
// keeping the feed error in the chain.
func fromFeed(err error) error {
	switch {
	case errors.Is(err, feed.ErrNetwork):
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	case errors.Is(err, feed.ErrParse):
		return fmt.Errorf("%w: %w", ErrParse, err)
	default:
		return err
	}
}
