package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	contentTypeJSON = "application/json"

	// JSON bodies stay capped at 1M even though the global body limit
	// leaves headroom for multipart image uploads.
	maxStrictBodyBytes int64 = 1 << 20
)

// bindStrictJSON decodes a JSON request body rejecting unknown fields and
// trailing content. Admin PATCH bodies rely on this to catch typo'd keys
// instead of silently ignoring them.
func bindStrictJSON(c echo.Context, dst interface{}) error {
	if !strings.HasPrefix(strings.ToLower(c.Request().Header.Get(echo.HeaderContentType)), contentTypeJSON) {
		return echo.NewHTTPError(http.StatusUnsupportedMediaType, msgContentTypeJSONRequired)
	}

	body := io.LimitReader(c.Request().Body, maxStrictBodyBytes)
	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, msgInvalidRequestBody)
	}

	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return echo.NewHTTPError(http.StatusBadRequest, msgInvalidRequestBody)
	}

	return nil
}
