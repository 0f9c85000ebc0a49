package usecase

import "errors"

// Failure kinds returned by the auth usecase. Login and the reset flows
// deliberately collapse distinct causes into one error so responses cannot be
// used to probe which emails have accounts.
var (
	ErrDuplicateAccount      = errors.New("email already exists")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrNotFound              = errors.New("user not found")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired reset token")
	ErrDeliveryFailed        = errors.New("failed to send password reset email")
)
