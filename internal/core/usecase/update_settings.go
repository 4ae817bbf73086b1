package usecase

import (
	"context"
	"time"

	"classifieds-service/internal/contextkeys"
	"classifieds-service/internal/core/domain"
	"classifieds-service/internal/core/port"
)

// UpdateSettingsUseCase - правка настроек витрины, доступна только админу.
type UpdateSettingsUseCase struct {
	settings port.SettingsRepositoryPort
}

func NewUpdateSettingsUseCase(settings port.SettingsRepositoryPort) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{settings: settings}
}

func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, auth *domain.AuthContext, settings domain.Settings) (*domain.Settings, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "UpdateSettings",
	})

	if !auth.IsAdmin() {
		ucLogger.Warn("Caller is not an admin", nil)
		return nil, domain.ErrForbidden
	}

	settings.UpdatedAt = time.Now()
	if err := uc.settings.Upsert(ctx, &settings); err != nil {
		ucLogger.Error("Failed to persist settings", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return &settings, nil
}
