package usecase

import (
	"context"
	"testing"
	"time"

	"classifieds-service/internal/core/domain"
	"classifieds-service/internal/core/port/usecases_port"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTokenTTL = 24 * time.Hour

func boolPtr(v bool) *bool    { return &v }
func strPtr(v string) *string { return &v }

func seededUser(t *testing.T, repo *fakeUserRepo, email string) *domain.User {
	t.Helper()
	u, err := domain.NewUser(email, "password1", "tester")
	require.NoError(t, err)
	repo.put(u)
	return u
}

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()

	t.Run("successful registration returns token", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := NewRegisterUserUseCase(repo, &fakeTokenService{}, testTokenTTL)

		user, token, err := uc.Execute(ctx, "new@example.com", "password1")
		require.NoError(t, err)

		assert.Equal(t, domain.RoleUser, user.Role)
		// отображаемое имя по умолчанию - локальная часть email
		assert.Equal(t, "new", user.ShowName)
		assert.NotEmpty(t, token)
		assert.Len(t, repo.byID, 1)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		repo := newFakeUserRepo()
		seededUser(t, repo, "taken@example.com")
		uc := NewRegisterUserUseCase(repo, &fakeTokenService{}, testTokenTTL)

		_, _, err := uc.Execute(ctx, "taken@example.com", "password1")
		assert.ErrorIs(t, err, domain.ErrEmailInUse)
	})
}

func TestLoginUser(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		repo := newFakeUserRepo()
		seededUser(t, repo, "user@example.com")
		uc := NewLoginUserUseCase(repo, &fakeTokenService{}, testTokenTTL)

		user, token, err := uc.Execute(ctx, "user@example.com", "password1")
		require.NoError(t, err)
		assert.Equal(t, "user@example.com", user.Email)
		assert.NotEmpty(t, token)
	})

	t.Run("unknown email", func(t *testing.T) {
		uc := NewLoginUserUseCase(newFakeUserRepo(), &fakeTokenService{}, testTokenTTL)
		_, _, err := uc.Execute(ctx, "nobody@example.com", "password1")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := newFakeUserRepo()
		seededUser(t, repo, "user@example.com")
		uc := NewLoginUserUseCase(repo, &fakeTokenService{}, testTokenTTL)

		_, _, err := uc.Execute(ctx, "user@example.com", "wrong-password")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("banned user knows the password but gets no token", func(t *testing.T) {
		repo := newFakeUserRepo()
		u := seededUser(t, repo, "banned@example.com")
		u.Banned = true
		uc := NewLoginUserUseCase(repo, &fakeTokenService{}, testTokenTTL)

		_, _, err := uc.Execute(ctx, "banned@example.com", "password1")
		assert.ErrorIs(t, err, domain.ErrUserBanned)
	})
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()
	admin := &domain.AuthContext{UserID: uuid.New(), Role: domain.RoleAdmin}

	t.Run("non-admin is rejected", func(t *testing.T) {
		repo := newFakeUserRepo()
		target := seededUser(t, repo, "target@example.com")
		uc := NewUpdateUserUseCase(repo)

		subadmin := &domain.AuthContext{UserID: uuid.New(), Role: domain.RoleSubadmin}
		_, err := uc.Execute(ctx, subadmin, target.ID, usecases_port.UserPatch{Banned: boolPtr(true)})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("ban another user", func(t *testing.T) {
		repo := newFakeUserRepo()
		target := seededUser(t, repo, "target@example.com")
		uc := NewUpdateUserUseCase(repo)

		updated, err := uc.Execute(ctx, admin, target.ID, usecases_port.UserPatch{Banned: boolPtr(true)})
		require.NoError(t, err)
		assert.True(t, updated.Banned)
	})

	t.Run("admin cannot ban own account", func(t *testing.T) {
		repo := newFakeUserRepo()
		self := seededUser(t, repo, "admin@example.com")
		self.Role = domain.RoleAdmin
		selfAuth := &domain.AuthContext{UserID: self.ID, Role: domain.RoleAdmin}
		uc := NewUpdateUserUseCase(repo)

		_, err := uc.Execute(ctx, selfAuth, self.ID, usecases_port.UserPatch{Banned: boolPtr(true)})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("approving pending request promotes to subadmin", func(t *testing.T) {
		repo := newFakeUserRepo()
		target := seededUser(t, repo, "target@example.com")
		target.SubadminRequest = true
		uc := NewUpdateUserUseCase(repo)

		updated, err := uc.Execute(ctx, admin, target.ID, usecases_port.UserPatch{SubadminRequest: boolPtr(true)})
		require.NoError(t, err)
		assert.Equal(t, domain.RoleSubadmin, updated.Role)
		assert.False(t, updated.SubadminRequest)
	})

	t.Run("approving without pending request is a no-op", func(t *testing.T) {
		repo := newFakeUserRepo()
		target := seededUser(t, repo, "target@example.com")
		uc := NewUpdateUserUseCase(repo)

		updated, err := uc.Execute(ctx, admin, target.ID, usecases_port.UserPatch{SubadminRequest: boolPtr(true)})
		require.NoError(t, err)
		assert.Equal(t, domain.RoleUser, updated.Role)
	})

	t.Run("rejecting clears the request", func(t *testing.T) {
		repo := newFakeUserRepo()
		target := seededUser(t, repo, "target@example.com")
		target.SubadminRequest = true
		uc := NewUpdateUserUseCase(repo)

		updated, err := uc.Execute(ctx, admin, target.ID, usecases_port.UserPatch{SubadminRequest: boolPtr(false)})
		require.NoError(t, err)
		assert.Equal(t, domain.RoleUser, updated.Role)
		assert.False(t, updated.SubadminRequest)
	})

	t.Run("role can be set to USER or SUBADMIN only", func(t *testing.T) {
		repo := newFakeUserRepo()
		target := seededUser(t, repo, "target@example.com")
		uc := NewUpdateUserUseCase(repo)

		updated, err := uc.Execute(ctx, admin, target.ID, usecases_port.UserPatch{Role: strPtr(domain.RoleSubadmin)})
		require.NoError(t, err)
		assert.Equal(t, domain.RoleSubadmin, updated.Role)

		_, err = uc.Execute(ctx, admin, target.ID, usecases_port.UserPatch{Role: strPtr(domain.RoleAdmin)})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("missing user", func(t *testing.T) {
		uc := NewUpdateUserUseCase(newFakeUserRepo())
		_, err := uc.Execute(ctx, admin, uuid.New(), usecases_port.UserPatch{Banned: boolPtr(true)})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	admin := &domain.AuthContext{UserID: uuid.New(), Role: domain.RoleAdmin}

	t.Run("listings are removed together with the account", func(t *testing.T) {
		users := newFakeUserRepo()
		listings := newFakeListingRepo()
		target := seededUser(t, users, "target@example.com")
		listings.put(pendingListing(target.ID))

		uc := NewDeleteUserUseCase(users, listings)
		require.NoError(t, uc.Execute(ctx, admin, target.ID))

		assert.Equal(t, []uuid.UUID{target.ID}, listings.deletedOwners)
		assert.Equal(t, []uuid.UUID{target.ID}, users.deleted)
		assert.Empty(t, listings.byID)
	})

	t.Run("admin cannot delete own account", func(t *testing.T) {
		users := newFakeUserRepo()
		uc := NewDeleteUserUseCase(users, newFakeListingRepo())
		err := uc.Execute(ctx, admin, admin.UserID)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("non-admin is rejected", func(t *testing.T) {
		users := newFakeUserRepo()
		target := seededUser(t, users, "target@example.com")
		uc := NewDeleteUserUseCase(users, newFakeListingRepo())

		user := &domain.AuthContext{UserID: uuid.New(), Role: domain.RoleUser}
		assert.ErrorIs(t, uc.Execute(ctx, user, target.ID), domain.ErrForbidden)
	})
}

func TestRequestSubadmin(t *testing.T) {
	ctx := context.Background()

	t.Run("regular user files a request", func(t *testing.T) {
		repo := newFakeUserRepo()
		u := seededUser(t, repo, "user@example.com")
		uc := NewRequestSubadminUseCase(repo)

		require.NoError(t, uc.Execute(ctx, u.AuthContext()))
		assert.True(t, repo.byID[u.ID].SubadminRequest)
	})

	t.Run("repeated request is idempotent", func(t *testing.T) {
		repo := newFakeUserRepo()
		u := seededUser(t, repo, "user@example.com")
		u.SubadminRequest = true
		uc := NewRequestSubadminUseCase(repo)

		require.NoError(t, uc.Execute(ctx, u.AuthContext()))
		assert.Empty(t, repo.updated)
	})

	t.Run("elevated roles may not apply", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := NewRequestSubadminUseCase(repo)

		subadmin := &domain.AuthContext{UserID: uuid.New(), Role: domain.RoleSubadmin}
		assert.ErrorIs(t, uc.Execute(ctx, subadmin), domain.ErrForbidden)

		admin := &domain.AuthContext{UserID: uuid.New(), Role: domain.RoleAdmin}
		assert.ErrorIs(t, uc.Execute(ctx, admin), domain.ErrForbidden)
	})
}
