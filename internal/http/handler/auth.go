package handler

import (
	"net/http"
	"strings"

	"printshop-service/pkg/password"

	"github.com/labstack/echo/v4"
)

// Pre-computed bcrypt hash (cost 12) used to equalize timing on failed lookups.
const dummyBcryptHash = "$2a$12$dWR5CQpS4zNHLavLSIr4o.P6QDQEUJKv7mJ7WekUHHqyRSRMJzH0S"

type AuthHandler struct {
	staffRepo  StaffRepository
	jwtService TokenGenerator
}

func NewAuthHandler(staffRepo StaffRepository, jwtService TokenGenerator) *AuthHandler {
	return &AuthHandler{
		staffRepo:  staffRepo,
		jwtService: jwtService,
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		password.Verify("", dummyBcryptHash)
		return respondError(c, http.StatusUnauthorized, msgInvalidCredentials)
	}

	s, err := h.staffRepo.GetByEmail(c.Request().Context(), req.Email)
	if err != nil {
		// Burn a bcrypt comparison so unknown emails take as long as
		// wrong passwords.
		password.Verify(req.Password, dummyBcryptHash)
		return respondError(c, http.StatusUnauthorized, msgInvalidCredentials)
	}

	if !password.Verify(req.Password, s.PasswordHash) {
		return respondError(c, http.StatusUnauthorized, msgInvalidCredentials)
	}

	token, err := h.jwtService.Generate(s.ID, s.Email)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, msgGenerateTokenFail)
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Token: token,
	})
}
