package handler

import (
	"errors"
	"net/http"

	apperrors "printshop-service/pkg/errors"

	"github.com/labstack/echo/v4"
)

// MapToPublicError maps internal errors to public-facing HTTP status codes and messages
// This prevents information disclosure by providing consistent, generic error messages
func MapToPublicError(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden, "access denied"
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, "resource conflict"
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, "invalid input"
	case errors.Is(err, apperrors.ErrInvalidStatus):
		return http.StatusConflict, "invalid status transition"
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid email or password"
	default:
		// Never expose internal errors to clients
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondWithMappedError responds with a mapped error, preventing information disclosure
func RespondWithMappedError(c echo.Context, err error) error {
	status, msg := MapToPublicError(err)
	return respondError(c, status, msg)
}

// respondAppError keeps the specific user-facing message of an AppError
// while still mapping its sentinel to a status code. Unknown errors fall
// back to the generic mapping.
func respondAppError(c echo.Context, err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		status, _ := MapToPublicError(err)
		return respondError(c, status, appErr.Message)
	}
	return RespondWithMappedError(c, err)
}
