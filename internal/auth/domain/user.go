package domain

import (
	"time"

	"gorm.io/gorm"
)

// User is the account record. The password hash and reset fields never leave
// the service; responses carry the PublicUser view instead.
type User struct {
	ID           string     `json:"id" gorm:"primaryKey"`
	Name         string     `json:"name" gorm:"not null"`
	Email        string     `json:"email" gorm:"uniqueIndex;size:191;not null"`
	Password     string     `json:"-" gorm:"not null"`
	DOB          time.Time  `json:"dob" gorm:"not null"`
	ProfileImage string     `json:"profile_image,omitempty"`

	// Both are nil or both are set, always updated in the same statement.
	ResetPasswordToken   *string    `json:"-" gorm:"size:64;index:password_reset_index"`
	ResetPasswordExpires *time.Time `json:"-" gorm:"index:password_reset_index"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// PublicUser is the outward-facing profile view.
type PublicUser struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	DOB          string    `json:"dob"`
	ProfileImage string    `json:"profile_image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		DOB:          u.DOB.Format("2006-01-02"),
		ProfileImage: u.ProfileImage,
		CreatedAt:    u.CreatedAt,
	}
}
