package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"newssaar/backend/internal/logger"
	"newssaar/backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

// Messages shown to the reader for each rejected selection.
const (
	msgNoSelection  = "Please select Type!!"
	msgNoTopic      = "Please Choose the Topic"
	msgNoQuery      = "Please write Topic Name to Search🔍"
	msgNoLanguage   = "Please select a target language before translating."
	msgInvalidCount = "Number of News is out of range"
)

func writeServiceError(c echo.Context, err error) error {
	var noResults *service.NoResultsError
	var quantity *service.QuantityError
	switch {
	case errors.Is(err, service.ErrNoSelection):
		return Error(c, http.StatusBadRequest, msgNoSelection)
	case errors.Is(err, service.ErrNoTopic):
		return Error(c, http.StatusBadRequest, msgNoTopic)
	case errors.Is(err, service.ErrNoQuery):
		return Error(c, http.StatusBadRequest, msgNoQuery)
	case errors.Is(err, service.ErrUnsupportedLanguage):
		return Error(c, http.StatusBadRequest, msgNoLanguage)
	case errors.As(err, &quantity):
		return Error(c, http.StatusBadRequest, fmt.Sprintf("%s (%d-%d)", msgInvalidCount, quantity.Min, quantity.Max))
	case errors.Is(err, service.ErrInvalidQuantity):
		return Error(c, http.StatusBadRequest, msgInvalidCount)
	case errors.As(err, &noResults):
		return Error(c, http.StatusNotFound, fmt.Sprintf("No News found for %s", noResults.Topic))
	case errors.Is(err, service.ErrNoResults):
		return Error(c, http.StatusNotFound, "No News found")
	case errors.Is(err, service.ErrInvalid):
		return Error(c, http.StatusBadRequest, "invalid request")
	case errors.Is(err, service.ErrNetwork):
		logger.Warn("feed unavailable", "module", "handler", "action", "request", "resource", "feed", "result", "failed", "error", err)
		return Error(c, http.StatusBadGateway, "news feed unavailable")
	case errors.Is(err, service.ErrParse):
		logger.Warn("feed unreadable", "module", "handler", "action", "request", "resource", "feed", "result", "failed", "error", err)
		return Error(c, http.StatusBadGateway, "news feed could not be read")
	default:
		logger.Error("request failed", "module", "handler", "action", "request", "resource", "http", "result", "failed", "error", err)
		return Error(c, http.StatusInternalServerError, "internal error")
	}
}

// Error returns a JSON error response with the given status and message
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}
