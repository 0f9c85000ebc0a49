package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"accounthub-backend/internal/auth/domain"
	"accounthub-backend/internal/auth/dto"
	"accounthub-backend/internal/auth/password"
	"accounthub-backend/internal/auth/repository"
	"accounthub-backend/internal/auth/token"
	"accounthub-backend/pkg/config"

	"github.com/rs/zerolog/log"
)

// authUsecase implements AuthUsecase.
type authUsecase struct {
	userRepo repository.UserRepository
	hasher   *password.Hasher
	issuer   *token.Issuer
	notifier Notifier
	config   *config.Config

	// dummyHash is compared against when login hits an unknown email, so
	// that branch burns the same bcrypt cost as a real mismatch.
	dummyHash string
}

func NewAuthUsecase(userRepo repository.UserRepository, hasher *password.Hasher, issuer *token.Issuer, notifier Notifier, cfg *config.Config) AuthUsecase {
	dummyHash, err := hasher.Hash("timing-equalization-placeholder")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to prepare login dummy hash")
	}
	return &authUsecase{
		userRepo:  userRepo,
		hasher:    hasher,
		issuer:    issuer,
		notifier:  notifier,
		config:    cfg,
		dummyHash: dummyHash,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup creates an account and returns a fresh session token. The lookup
// before Create is best effort; the email unique index is the real backstop
// against a concurrent duplicate.
func (u *authUsecase) Signup(req *dto.SignupRequest, dob time.Time) (*dto.AuthResponse, error) {
	email := normalizeEmail(req.Email)

	existing, err := u.userRepo.FindByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("signup lookup: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateAccount
	}

	hash, err := u.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Password:     hash,
		DOB:          dob,
		ProfileImage: req.ProfileImage,
	}
	if err := u.userRepo.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrDuplicateAccount
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	signed, err := u.issuer.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue session token: %w", err)
	}

	log.Info().Str("user_id", user.ID).Msg("user registered")
	return &dto.AuthResponse{Token: signed, User: user.Public()}, nil
}

// Login verifies credentials and issues a session token. Unknown email and
// wrong password both come back as ErrInvalidCredentials.
func (u *authUsecase) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := u.userRepo.FindByEmail(normalizeEmail(req.Email))
	if err != nil {
		return nil, fmt.Errorf("login lookup: %w", err)
	}
	if user == nil {
		u.hasher.Check(req.Password, u.dummyHash)
		return nil, ErrInvalidCredentials
	}

	if !u.hasher.Check(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	signed, err := u.issuer.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue session token: %w", err)
	}

	return &dto.AuthResponse{Token: signed, User: user.Public()}, nil
}

// UpdatePassword replaces the hash for an already-authenticated user. The
// newPassword != currentPassword rule is enforced by the delivery layer.
func (u *authUsecase) UpdatePassword(userID, currentPassword, newPassword string) error {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return fmt.Errorf("update password lookup: %w", err)
	}
	if user == nil {
		return ErrNotFound
	}

	if !u.hasher.Check(currentPassword, user.Password) {
		return ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return u.userRepo.UpdateFields(user.ID, map[string]interface{}{
		"password": hash,
	})
}

// ForgotPassword stores a fresh reset token and mails the link. An unknown
// email returns nil so the response is indistinguishable from the registered
// case. A repeat call overwrites the previous token; only the latest one is
// usable.
func (u *authUsecase) ForgotPassword(email string) error {
	user, err := u.userRepo.FindByEmail(normalizeEmail(email))
	if err != nil {
		return fmt.Errorf("forgot password lookup: %w", err)
	}
	if user == nil {
		return nil
	}

	resetToken, err := token.NewResetToken()
	if err != nil {
		return err
	}
	expiresAt := time.Now().Add(u.config.ResetTokenTTL)

	err = u.userRepo.UpdateFields(user.ID, map[string]interface{}{
		"reset_password_token":   resetToken,
		"reset_password_expires": expiresAt,
	})
	if err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	if err := u.notifier.SendPasswordResetEmail(user.Email, resetToken); err != nil {
		// The token stays persisted; a retry overwrites it.
		log.Warn().Str("user_id", user.ID).Err(err).Msg("reset email delivery failed")
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	return nil
}

// ResetPassword consumes a reset token. Clearing the token in the same
// update that replaces the hash is what makes it single use.
func (u *authUsecase) ResetPassword(resetToken, newPassword string) error {
	user, err := u.userRepo.FindByResetToken(resetToken, time.Now())
	if err != nil {
		return fmt.Errorf("reset token lookup: %w", err)
	}
	if user == nil {
		return ErrInvalidOrExpiredToken
	}

	hash, err := u.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	err = u.userRepo.UpdateFields(user.ID, map[string]interface{}{
		"password":               hash,
		"reset_password_token":   nil,
		"reset_password_expires": nil,
	})
	if err != nil {
		return fmt.Errorf("apply password reset: %w", err)
	}

	log.Info().Str("user_id", user.ID).Msg("password reset completed")
	return nil
}

func (u *authUsecase) VerifySessionToken(raw string) (*token.Claims, error) {
	return u.issuer.Verify(raw)
}
