package delivery

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"accounthub-backend/internal/auth/domain"
	"accounthub-backend/internal/auth/password"
	"accounthub-backend/internal/auth/repository"
	"accounthub-backend/internal/auth/token"
	"accounthub-backend/internal/auth/usecase"
	"accounthub-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type memUserRepo struct {
	byID map[string]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: make(map[string]*domain.User)}
}

func (m *memUserRepo) Create(user *domain.User) error {
	for _, u := range m.byID {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	user.ID = "user-" + user.Email
	m.byID[user.ID] = user
	return nil
}

func (m *memUserRepo) FindByEmail(email string) (*domain.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) FindByID(id string) (*domain.User, error) {
	return m.byID[id], nil
}

func (m *memUserRepo) FindByResetToken(tok string, now time.Time) (*domain.User, error) {
	for _, u := range m.byID {
		if u.ResetPasswordToken != nil && *u.ResetPasswordToken == tok && u.ResetPasswordExpires.After(now) {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) UpdateFields(id string, fields map[string]interface{}) error {
	u, ok := m.byID[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := fields["reset_password_token"]; ok && v != nil {
		s := v.(string)
		u.ResetPasswordToken = &s
	}
	if v, ok := fields["reset_password_expires"]; ok && v != nil {
		ts := v.(time.Time)
		u.ResetPasswordExpires = &ts
	}
	return nil
}

func (m *memUserRepo) SoftDelete(id string) error { return nil }

func (m *memUserRepo) List(params repository.ListParams) ([]domain.User, int64, error) {
	return nil, 0, nil
}

func (m *memUserRepo) ClearExpiredResetTokens(now time.Time) (int64, error) { return 0, nil }

type memNotifier struct{ sent int }

func (m *memNotifier) SendPasswordResetEmail(email, rawToken string) error {
	m.sent++
	return nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *memUserRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := newMemUserRepo()
	uc := usecase.NewAuthUsecase(
		repo,
		password.NewHasher(bcrypt.MinCost),
		token.NewIssuer("test-secret", time.Hour),
		&memNotifier{},
		&config.Config{ResetTokenTTL: time.Hour},
	)

	h := NewAuthHandler(uc)
	r := gin.New()
	r.POST("/auth/register", h.Signup)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/password/forgot", h.ForgotPassword)
	r.POST("/auth/password/reset", h.ResetPassword)
	return r, repo
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestForgotPasswordResponseShapeIsIdentical(t *testing.T) {
	r, _ := newTestRouter(t)

	w := postJSON(t, r, "/auth/register",
		`{"name":"Test User","email":"a@x.com","password":"longenough1","dob":"1990-05-01"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	known := postJSON(t, r, "/auth/password/forgot", `{"email":"a@x.com"}`)
	unknown := postJSON(t, r, "/auth/password/forgot", `{"email":"nobody@x.com"}`)

	assert.Equal(t, http.StatusOK, known.Code)
	assert.Equal(t, unknown.Code, known.Code)
	assert.Equal(t, unknown.Body.String(), known.Body.String(),
		"registered and unregistered emails must produce identical responses")
}

func TestLoginFailureIsGeneric(t *testing.T) {
	r, _ := newTestRouter(t)

	w := postJSON(t, r, "/auth/register",
		`{"name":"Test User","email":"a@x.com","password":"longenough1","dob":"1990-05-01"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	unknown := postJSON(t, r, "/auth/login", `{"email":"nobody@x.com","password":"longenough1"}`)
	wrongPw := postJSON(t, r, "/auth/login", `{"email":"a@x.com","password":"wrongpassword"}`)

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPw.Code)
	assert.Equal(t, unknown.Body.String(), wrongPw.Body.String())
}

func TestResetPasswordRejectsMalformedToken(t *testing.T) {
	r, _ := newTestRouter(t)

	// Wrong length fails binding before the usecase runs.
	w := postJSON(t, r, "/auth/password/reset", `{"token":"deadbeef","newPassword":"newpass123"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Well-formed but unknown token gets the generic message.
	fake := "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"
	w = postJSON(t, r, "/auth/password/reset", `{"token":"`+fake+`","newPassword":"newpass123"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired reset token")
}
