package dto

import (
	"errors"
	"regexp"
	"time"

	"accounthub-backend/internal/auth/domain"
)

var nameRe = regexp.MustCompile(`^[a-zA-Z\s]+$`)

type SignupRequest struct {
	Name         string `json:"name" binding:"required,min=2"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	DOB          string `json:"dob" binding:"required"`
	ProfileImage string `json:"profileImage" binding:"omitempty,url"`
}

// Validate applies the rules gin's binding tags cannot express and returns
// the parsed date of birth.
func (r *SignupRequest) Validate() (time.Time, error) {
	if !nameRe.MatchString(r.Name) {
		return time.Time{}, errors.New("name can only contain letters and spaces")
	}
	dob, err := time.Parse("2006-01-02", r.DOB)
	if err != nil {
		return time.Time{}, errors.New("invalid date format")
	}
	if dob.AddDate(13, 0, 0).After(time.Now()) {
		return time.Time{}, errors.New("must be at least 13 years old")
	}
	return dob, nil
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// Validate rejects a new password equal to the current one before the
// usecase ever touches the store.
func (r *UpdatePasswordRequest) Validate() error {
	if r.NewPassword == r.CurrentPassword {
		return errors.New("new password must be different from current password")
	}
	return nil
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required,len=64,hexadecimal"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

type AuthResponse struct {
	Token string             `json:"token"`
	User  *domain.PublicUser `json:"user"`
}
