package dto

import "time"

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponse struct {
	Token          string       `json:"token"`
	TokenExpiresAt time.Time    `json:"token_expires_at"`
	User           UserResponse `json:"user"`
}
