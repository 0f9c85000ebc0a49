package usecase

import (
	"sort"
	"strings"
	"testing"
	"time"

	"accounthub-backend/internal/auth/domain"
	"accounthub-backend/internal/auth/repository"
	userdto "accounthub-backend/internal/user/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (s *stubUserRepo) Create(user *domain.User) error { return nil }

func (s *stubUserRepo) FindByEmail(email string) (*domain.User, error) { return nil, nil }

func (s *stubUserRepo) FindByID(id string) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok || u.DeletedAt.Valid {
		return nil, nil
	}
	return u, nil
}

func (s *stubUserRepo) FindByResetToken(tok string, now time.Time) (*domain.User, error) {
	return nil, nil
}

func (s *stubUserRepo) UpdateFields(id string, fields map[string]interface{}) error {
	u, ok := s.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := fields["name"]; ok {
		u.Name = v.(string)
	}
	if v, ok := fields["dob"]; ok {
		u.DOB = v.(time.Time)
	}
	if v, ok := fields["profile_image"]; ok {
		u.ProfileImage = v.(string)
	}
	return nil
}

func (s *stubUserRepo) SoftDelete(id string) error {
	u, ok := s.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	return nil
}

func (s *stubUserRepo) List(params repository.ListParams) ([]domain.User, int64, error) {
	var matched []domain.User
	for _, u := range s.users {
		if u.DeletedAt.Valid {
			continue
		}
		if params.Search != "" &&
			!strings.Contains(u.Name, params.Search) && !strings.Contains(u.Email, params.Search) {
			continue
		}
		matched = append(matched, *u)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Email < matched[j].Email })

	total := int64(len(matched))
	start := (params.Page - 1) * params.Limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + params.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (s *stubUserRepo) ClearExpiredResetTokens(now time.Time) (int64, error) { return 0, nil }

func testUser(id, name, email string) *domain.User {
	return &domain.User{
		ID:    id,
		Name:  name,
		Email: email,
		DOB:   time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestGetProfile(t *testing.T) {
	uc := NewUserUsecase(newStubUserRepo(testUser("u1", "Alice", "alice@x.com")))

	profile, err := uc.GetProfile("u1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", profile.Name)
	assert.Equal(t, "1990-05-01", profile.DOB)

	_, err = uc.GetProfile("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProfilePartial(t *testing.T) {
	repo := newStubUserRepo(testUser("u1", "Alice", "alice@x.com"))
	uc := NewUserUsecase(repo)

	profile, err := uc.UpdateProfile("u1", &userdto.UpdateProfileRequest{Name: "Alicia"})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", profile.Name)
	assert.Equal(t, "alice@x.com", profile.Email, "email is not part of profile updates")

	_, err = uc.UpdateProfile("missing", &userdto.UpdateProfileRequest{Name: "Nope"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListUsersPagination(t *testing.T) {
	repo := newStubUserRepo(
		testUser("u1", "Alice", "alice@x.com"),
		testUser("u2", "Bob", "bob@x.com"),
		testUser("u3", "Carol", "carol@x.com"),
	)
	uc := NewUserUsecase(repo)

	resp, err := uc.ListUsers(&userdto.ListUsersQuery{SortField: "email", SortOrder: "ASC", Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, resp.Users, 2)
	assert.Equal(t, int64(3), resp.Pagination.Total)
	assert.Equal(t, 2, resp.Pagination.TotalPages)
	assert.Equal(t, 1, resp.Pagination.CurrentPage)

	resp, err = uc.ListUsers(&userdto.ListUsersQuery{Search: "bob", SortField: "email", SortOrder: "ASC", Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, resp.Users, 1)
	assert.Equal(t, "Bob", resp.Users[0].Name)
}

func TestDeleteAccountIsSoft(t *testing.T) {
	repo := newStubUserRepo(testUser("u1", "Alice", "alice@x.com"))
	uc := NewUserUsecase(repo)

	require.NoError(t, uc.DeleteAccount("u1"))

	// Hidden from lookups, but the record itself survives.
	_, err := uc.GetProfile("u1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.True(t, repo.users["u1"].DeletedAt.Valid)

	assert.ErrorIs(t, uc.DeleteAccount("u1"), ErrNotFound)
}
