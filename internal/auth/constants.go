package auth

const (
	ContextKeyStaffID  = "staff_id"
	ContextKeyEmail    = "staff_email"
	ContextKeyAuthType = "auth_type"
)

type AuthType string

const AuthTypeJWT AuthType = "jwt"

const (
	headerAuthorization = "Authorization"
	bearerScheme        = "bearer"
	authHeaderParts     = 2
)

const (
	msgMissingAuthorization    = "missing authorization header"
	msgInvalidOrExpiredToken   = "invalid or expired token"
	msgStaffNotAuthenticated   = "staff not authenticated"
	msgInvalidStaffIDCtx       = "invalid staff ID in context"
	msgUnexpectedSigningMethod = "unexpected signing method: %v"
	msgTokenParseFailed        = "failed to parse token: %w"
	msgInvalidTokenClaims      = "invalid token claims"
)
