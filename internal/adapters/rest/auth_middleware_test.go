package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"classifieds-service/internal/contextkeys"
	"classifieds-service/internal/core/domain"
	"classifieds-service/internal/core/port"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidateTokenUC struct {
	claims *port.Claims
	err    error
}

func (s *stubValidateTokenUC) Execute(ctx context.Context, token string) (*port.Claims, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.claims, nil
}

type stubUserRepo struct {
	user *domain.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) error { return nil }
func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, nil
}
func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.user, nil
}
func (s *stubUserRepo) List(ctx context.Context) ([]domain.User, error)     { return nil, nil }
func (s *stubUserRepo) Update(ctx context.Context, user *domain.User) error { return nil }
func (s *stubUserRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }

func captureAuth(captured **domain.AuthContext) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = contextkeys.AuthFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate(t *testing.T) {
	user := &domain.User{ID: uuid.New(), Email: "user@example.com", Role: domain.RoleUser}
	claims := &port.Claims{UserID: user.ID, Email: user.Email, Role: user.Role}

	t.Run("valid token reaches the handler with auth context", func(t *testing.T) {
		mw := NewAuthMiddleware(&stubValidateTokenUC{claims: claims}, &stubUserRepo{user: user})
		var captured *domain.AuthContext

		req := httptest.NewRequest(http.MethodGet, "/my/listings", nil)
		req.Header.Set("Authorization", "Bearer some-token")
		rec := httptest.NewRecorder()
		mw.Authenticate(captureAuth(&captured)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, captured)
		assert.Equal(t, user.ID, captured.UserID)
		assert.Equal(t, domain.RoleUser, captured.Role)
	})

	t.Run("missing header is 401", func(t *testing.T) {
		mw := NewAuthMiddleware(&stubValidateTokenUC{claims: claims}, &stubUserRepo{user: user})

		req := httptest.NewRequest(http.MethodGet, "/my/listings", nil)
		rec := httptest.NewRecorder()
		mw.Authenticate(captureAuth(new(*domain.AuthContext))).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header is 401", func(t *testing.T) {
		mw := NewAuthMiddleware(&stubValidateTokenUC{claims: claims}, &stubUserRepo{user: user})

		req := httptest.NewRequest(http.MethodGet, "/my/listings", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()
		mw.Authenticate(captureAuth(new(*domain.AuthContext))).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token is 401", func(t *testing.T) {
		mw := NewAuthMiddleware(&stubValidateTokenUC{err: domain.ErrTokenInvalid}, &stubUserRepo{user: user})

		req := httptest.NewRequest(http.MethodGet, "/my/listings", nil)
		req.Header.Set("Authorization", "Bearer forged")
		rec := httptest.NewRecorder()
		mw.Authenticate(captureAuth(new(*domain.AuthContext))).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("ban takes effect even with a live token", func(t *testing.T) {
		banned := *user
		banned.Banned = true
		mw := NewAuthMiddleware(&stubValidateTokenUC{claims: claims}, &stubUserRepo{user: &banned})

		req := httptest.NewRequest(http.MethodGet, "/my/listings", nil)
		req.Header.Set("Authorization", "Bearer still-valid")
		rec := httptest.NewRecorder()
		mw.Authenticate(captureAuth(new(*domain.AuthContext))).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("deleted account is 401", func(t *testing.T) {
		mw := NewAuthMiddleware(&stubValidateTokenUC{claims: claims}, &stubUserRepo{user: nil})

		req := httptest.NewRequest(http.MethodGet, "/my/listings", nil)
		req.Header.Set("Authorization", "Bearer orphan")
		rec := httptest.NewRecorder()
		mw.Authenticate(captureAuth(new(*domain.AuthContext))).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestOptionalAuthenticate(t *testing.T) {
	user := &domain.User{ID: uuid.New(), Email: "user@example.com", Role: domain.RoleUser}
	claims := &port.Claims{UserID: user.ID, Email: user.Email, Role: user.Role}

	t.Run("anonymous request passes through", func(t *testing.T) {
		mw := NewAuthMiddleware(&stubValidateTokenUC{claims: claims}, &stubUserRepo{user: user})
		var captured *domain.AuthContext

		req := httptest.NewRequest(http.MethodGet, "/listings", nil)
		rec := httptest.NewRecorder()
		mw.OptionalAuthenticate(captureAuth(&captured)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, captured)
	})

	t.Run("valid token attaches auth context", func(t *testing.T) {
		mw := NewAuthMiddleware(&stubValidateTokenUC{claims: claims}, &stubUserRepo{user: user})
		var captured *domain.AuthContext

		req := httptest.NewRequest(http.MethodGet, "/listings", nil)
		req.Header.Set("Authorization", "Bearer some-token")
		rec := httptest.NewRecorder()
		mw.OptionalAuthenticate(captureAuth(&captured)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, captured)
		assert.Equal(t, user.ID, captured.UserID)
	})

	t.Run("broken token is rejected, not ignored", func(t *testing.T) {
		mw := NewAuthMiddleware(&stubValidateTokenUC{err: domain.ErrTokenInvalid}, &stubUserRepo{user: user})

		req := httptest.NewRequest(http.MethodGet, "/listings", nil)
		req.Header.Set("Authorization", "Bearer forged")
		rec := httptest.NewRecorder()
		mw.OptionalAuthenticate(captureAuth(new(*domain.AuthContext))).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
