package usecase

import (
	"time"

	"accounthub-backend/internal/auth/dto"
	"accounthub-backend/internal/auth/token"
)

// AuthUsecase orchestrates credential issuance and the password-reset token
// lifecycle. Inputs arrive already validated by the delivery layer.
type AuthUsecase interface {
	Signup(req *dto.SignupRequest, dob time.Time) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	UpdatePassword(userID, currentPassword, newPassword string) error
	ForgotPassword(email string) error
	ResetPassword(resetToken, newPassword string) error
	VerifySessionToken(raw string) (*token.Claims, error)
}

// Notifier delivers the reset link. A failure is surfaced to the caller but
// never rolls back the persisted token.
type Notifier interface {
	SendPasswordResetEmail(email, rawToken string) error
}
