package repository

import (
	"errors"
	"time"

	"accounthub-backend/internal/auth/domain"
)

// ErrDuplicateEmail is returned by Create when the email unique index rejects
// the insert.
var ErrDuplicateEmail = errors.New("email already exists")

// ListParams controls user listing. SortField must already be validated
// against the allowed column names by the caller.
type ListParams struct {
	Search    string
	SortField string
	SortOrder string
	Page      int
	Limit     int
}

// UserRepository is the narrow persistence surface the usecases depend on.
// Lookups return (nil, nil) when no record matches.
type UserRepository interface {
	Create(user *domain.User) error
	FindByEmail(email string) (*domain.User, error)
	FindByID(id string) (*domain.User, error)
	// FindByResetToken matches only tokens that expire after now.
	FindByResetToken(token string, now time.Time) (*domain.User, error)
	// UpdateFields applies a partial update in a single statement, so a
	// reset token and its expiry are always set or cleared together.
	UpdateFields(id string, fields map[string]interface{}) error
	SoftDelete(id string) error
	List(params ListParams) ([]domain.User, int64, error)
	ClearExpiredResetTokens(now time.Time) (int64, error)
}
