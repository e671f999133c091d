package http

import (
	"errors"
	"fmt"
	"net/http"

	apperrors "printshop-service/pkg/errors"
	"printshop-service/pkg/logger"

	"github.com/labstack/echo/v4"
)

// CustomHTTPErrorHandler handles all errors returned by handlers and middleware.
// It maps sentinel errors to appropriate HTTP status codes, sanitizes internal errors,
// and logs errors with request context.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		message = fmt.Sprintf("%v", httpErr.Message)
	} else {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			code = http.StatusNotFound
			message = "Resource not found"
		case errors.Is(err, apperrors.ErrUnauthorized):
			code = http.StatusUnauthorized
			message = "Unauthorized"
		case errors.Is(err, apperrors.ErrInvalidCredentials):
			code = http.StatusUnauthorized
			message = "Invalid credentials"
		case errors.Is(err, apperrors.ErrForbidden):
			code = http.StatusForbidden
			message = "Forbidden"
		case errors.Is(err, apperrors.ErrBadRequest):
			code = http.StatusBadRequest
			message = "Bad request"
		case errors.Is(err, apperrors.ErrValidation):
			code = http.StatusBadRequest
			message = "Validation error"
		case errors.Is(err, apperrors.ErrConflict):
			code = http.StatusConflict
			message = "Resource already exists"
		case errors.Is(err, apperrors.ErrInvalidStatus):
			code = http.StatusConflict
			message = "Invalid status transition"
		}

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			// Use the message from AppError if it's a client error
			if code < 500 {
				message = appErr.Message
			}
		}
	}

	requestID := c.Response().Header().Get(echo.HeaderXRequestID)
	if requestID == "" {
		requestID = "unknown"
	}

	logged := logger.SanitizePII(err.Error())
	if code >= 500 {
		c.Logger().Errorf("internal_server_error request_id=%s status=%d error=%s", requestID, code, logged)
		// Don't expose internal errors to clients
		message = "Internal server error"
	} else {
		c.Logger().Warnf("client_error request_id=%s status=%d error=%s", requestID, code, logged)
	}

	if err := c.JSON(code, map[string]interface{}{
		"error":      message,
		"request_id": requestID,
	}); err != nil {
		c.Logger().Error(err)
	}
}
