package handler

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// parseCountParam reads ?count=; an absent value is 0 (the kind's minimum).
func parseCountParam(c echo.Context) (int, bool) {
	raw := strings.TrimSpace(c.QueryParam("count"))
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

func wantsInlinePosters(c echo.Context) bool {
	return strings.EqualFold(c.QueryParam("posters"), "inline")
}
