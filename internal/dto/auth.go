package dto

import (
	"time"

	"github.com/budzetiranje/budget_tracking_app/internal/core/domain"
)

// RegisterRequest is the payload for self-service registration. Registered
// users always get the 'user' role; only an admin can change it afterwards.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the payload for credential login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued tokens and the authenticated user.
type LoginResponse struct {
	Token        string       `json:"token"`
	ExpiresAt    time.Time    `json:"expiresAt"`
	RefreshToken string       `json:"refreshToken,omitempty"`
	User         UserResponse `json:"user"`
}

// RefreshRequest exchanges a refresh token for a fresh access token.
type RefreshRequest struct {
	UserID       string `json:"userID" binding:"required,uuid"`
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ForgotPasswordRequest starts the password recovery flow.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPasswordResponse acknowledges the request. ResetToken is only
// populated outside production, where no mailer delivers it.
type ForgotPasswordResponse struct {
	Message    string  `json:"message"`
	ResetToken *string `json:"resetToken,omitempty"`
}

// ResetPasswordRequest completes the password recovery flow.
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}
