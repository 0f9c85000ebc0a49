package usecase

import (
	"errors"
	"fmt"

	"accounthub-backend/internal/auth/domain"
	"accounthub-backend/internal/auth/repository"
	userdto "accounthub-backend/internal/user/dto"

	"github.com/rs/zerolog/log"
)

// ErrNotFound covers profile lookups by an id that no longer exists. These
// ids come from verified tokens or listing output, so there is no
// enumeration concern here.
var ErrNotFound = errors.New("user not found")

// UserUsecase handles profile reads and writes for existing accounts.
type UserUsecase interface {
	GetProfile(userID string) (*domain.PublicUser, error)
	UpdateProfile(userID string, req *userdto.UpdateProfileRequest) (*domain.PublicUser, error)
	ListUsers(query *userdto.ListUsersQuery) (*userdto.ListUsersResponse, error)
	DeleteAccount(userID string) error
}

type userUsecase struct {
	userRepo repository.UserRepository
}

func NewUserUsecase(userRepo repository.UserRepository) UserUsecase {
	return &userUsecase{
		userRepo: userRepo,
	}
}

func (u *userUsecase) GetProfile(userID string) (*domain.PublicUser, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, fmt.Errorf("profile lookup: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user.Public(), nil
}

func (u *userUsecase) UpdateProfile(userID string, req *userdto.UpdateProfileRequest) (*domain.PublicUser, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, fmt.Errorf("profile lookup: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}

	fields, err := req.Fields()
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := u.userRepo.UpdateFields(userID, fields); err != nil {
			return nil, fmt.Errorf("update profile: %w", err)
		}
	}

	updated, err := u.userRepo.FindByID(userID)
	if err != nil || updated == nil {
		return nil, fmt.Errorf("reload profile: %w", err)
	}
	return updated.Public(), nil
}

func (u *userUsecase) ListUsers(query *userdto.ListUsersQuery) (*userdto.ListUsersResponse, error) {
	users, total, err := u.userRepo.List(repository.ListParams{
		Search:    query.Search,
		SortField: query.SortField,
		SortOrder: query.SortOrder,
		Page:      query.Page,
		Limit:     query.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	public := make([]*domain.PublicUser, 0, len(users))
	for i := range users {
		public = append(public, users[i].Public())
	}

	totalPages := int(total) / query.Limit
	if int(total)%query.Limit != 0 {
		totalPages++
	}

	return &userdto.ListUsersResponse{
		Users: public,
		Pagination: userdto.Pagination{
			Total:       total,
			TotalPages:  totalPages,
			CurrentPage: query.Page,
			Limit:       query.Limit,
		},
	}, nil
}

// DeleteAccount soft-deletes: the row stays but disappears from every
// subsequent lookup.
func (u *userUsecase) DeleteAccount(userID string) error {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return fmt.Errorf("delete lookup: %w", err)
	}
	if user == nil {
		return ErrNotFound
	}
	if err := u.userRepo.SoftDelete(userID); err != nil {
		return fmt.Errorf("soft delete: %w", err)
	}
	log.Info().Str("user_id", userID).Msg("account soft-deleted")
	return nil
}
