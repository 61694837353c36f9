package handlers

import (
	"crypto/subtle"
	"net/http"

	"smsledger/internal/dto"
	"smsledger/internal/errors"
	"smsledger/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles token provisioning endpoints
type AuthHandler struct {
	tokenService       services.TokenServiceInterface
	provisioningSecret string
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(tokenService services.TokenServiceInterface, provisioningSecret string) *AuthHandler {
	return &AuthHandler{
		tokenService:       tokenService,
		provisioningSecret: provisioningSecret,
	}
}

// IssueToken exchanges the shared provisioning secret for a bearer token
func (h *AuthHandler) IssueToken(c echo.Context) error {
	var req dto.TokenRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	if h.provisioningSecret == "" {
		return SendError(c, errors.AuthInvalidSecret, errors.WithDetails("Token provisioning is not configured"))
	}

	if subtle.ConstantTimeCompare([]byte(req.Secret), []byte(h.provisioningSecret)) != 1 {
		return SendError(c, errors.AuthInvalidSecret)
	}

	token, expiresAt, err := h.tokenService.GenerateToken(req.ClientID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	})
}
