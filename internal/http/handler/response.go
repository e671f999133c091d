package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// respondError writes the JSON error payload the admin UI renders as a
// toast.
func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{jsonKeyError: message})
}

// respondMessage writes a confirmation payload for mutations with no body
// to return, such as deletes.
func respondMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{jsonKeyMessage: message})
}

func handleHTTPError(c echo.Context, err error) error {
	if he, ok := err.(*echo.HTTPError); ok {
		msg, _ := he.Message.(string)
		if msg == "" {
			msg = http.StatusText(he.Code)
		}
		return respondError(c, he.Code, msg)
	}

	return respondError(c, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
