package api

import "time"

// swagger:model api.LoginResponse
type LoginResponse struct {
	Token     string    `json:"token" example:"eyJhbGciOi..."`
	ExpiresAt time.Time `json:"expiresAt" example:"2025-05-09T15:04:05Z07:00"`
}
