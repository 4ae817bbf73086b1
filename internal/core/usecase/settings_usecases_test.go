package usecase

import (
	"context"
	"testing"

	"classifieds-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettingsRepo struct {
	stored *domain.Settings
}

func (r *fakeSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	if r.stored == nil {
		return domain.DefaultSettings(), nil
	}
	return r.stored, nil
}

func (r *fakeSettingsRepo) Upsert(ctx context.Context, settings *domain.Settings) error {
	r.stored = settings
	return nil
}

func TestGetSettings_DefaultsBeforeFirstSave(t *testing.T) {
	uc := NewGetSettingsUseCase(&fakeSettingsRepo{})

	settings, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, settings.HomePageSliders.Newest)
	assert.True(t, settings.HomePageSliders.VillaLand)
}

func TestUpdateSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("admin updates the singleton", func(t *testing.T) {
		repo := &fakeSettingsRepo{}
		uc := NewUpdateSettingsUseCase(repo)
		admin := &domain.AuthContext{UserID: uuid.New(), Role: domain.RoleAdmin}

		updated, err := uc.Execute(ctx, admin, domain.Settings{
			HomePageSliders: domain.HomePageSliders{Newest: true},
		})
		require.NoError(t, err)
		assert.False(t, updated.UpdatedAt.IsZero())
		require.NotNil(t, repo.stored)
		assert.True(t, repo.stored.HomePageSliders.Newest)
		assert.False(t, repo.stored.HomePageSliders.Store)
	})

	t.Run("non-admin is rejected", func(t *testing.T) {
		uc := NewUpdateSettingsUseCase(&fakeSettingsRepo{})
		subadmin := &domain.AuthContext{UserID: uuid.New(), Role: domain.RoleSubadmin}

		_, err := uc.Execute(ctx, subadmin, domain.Settings{})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}
