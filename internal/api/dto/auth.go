package dto

import (
	"time"

	"github.com/spec-kit/event-budget-service/internal/domain"
)

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the session token and the authenticated user.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// NewLoginResponse builds the login response.
func NewLoginResponse(token string, expiresAt time.Time, user *domain.User) LoginResponse {
	return LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      NewUserResponse(user),
	}
}
