package auth

import (
	"net/http"
	"strings"

	apperrors "printshop-service/pkg/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type Middleware struct {
	jwtService *JWTService
}

func NewMiddleware(jwtService *JWTService) *Middleware {
	return &Middleware{jwtService: jwtService}
}

// RequireJWT gates admin routes. Unauthenticated requests get a 401; the
// admin client redirects to its login view on that status.
func (m *Middleware) RequireJWT() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractBearerToken(c)
			if token == "" {
				return respondError(c, http.StatusUnauthorized, msgMissingAuthorization)
			}

			claims, err := m.jwtService.Verify(token)
			if err != nil {
				return respondError(c, http.StatusUnauthorized, msgInvalidOrExpiredToken)
			}

			c.Set(ContextKeyStaffID, claims.StaffID)
			c.Set(ContextKeyEmail, claims.Email)
			c.Set(ContextKeyAuthType, AuthTypeJWT)

			return next(c)
		}
	}
}

func extractBearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get(headerAuthorization)
	if authHeader == "" {
		return ""
	}

	parts := strings.Fields(authHeader)
	if len(parts) != authHeaderParts || strings.ToLower(parts[0]) != bearerScheme {
		return ""
	}

	return parts[1]
}

func GetStaffID(c echo.Context) (uuid.UUID, error) {
	staffID := c.Get(ContextKeyStaffID)
	if staffID == nil {
		return uuid.Nil, apperrors.Unauthorized(msgStaffNotAuthenticated)
	}

	id, ok := staffID.(uuid.UUID)
	if !ok {
		return uuid.Nil, apperrors.InternalServer(msgInvalidStaffIDCtx, nil)
	}

	return id, nil
}

func GetAuthType(c echo.Context) AuthType {
	authType := c.Get(ContextKeyAuthType)
	if authType == nil {
		return ""
	}

	t, ok := authType.(AuthType)
	if !ok {
		return ""
	}

	return t
}

func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"error": message})
}
