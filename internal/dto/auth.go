package dto

import "time"

// Auth Request DTOs

// TokenRequest exchanges the shared provisioning secret for an API token
type TokenRequest struct {
	ClientID string `json:"clientId" validate:"required,min=1,max=100"`
	Secret   string `json:"secret" validate:"required"`
}

// Auth Response DTOs

// TokenResponse contains the issued API token
type TokenResponse struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
}
