package usecase

import (
	"context"

	"classifieds-service/internal/contextkeys"
	"classifieds-service/internal/core/domain"
	"classifieds-service/internal/core/port"
)

// GetSettingsUseCase - публичные настройки витрины (слайдеры главной).
type GetSettingsUseCase struct {
	settings port.SettingsRepositoryPort
}

func NewGetSettingsUseCase(settings port.SettingsRepositoryPort) *GetSettingsUseCase {
	return &GetSettingsUseCase{settings: settings}
}

func (uc *GetSettingsUseCase) Execute(ctx context.Context) (*domain.Settings, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	settings, err := uc.settings.Get(ctx)
	if err != nil {
		logger.Error("Failed to load settings", err, port.Fields{
			"use_case": "GetSettings",
		})
		return nil, err
	}
	return settings, nil
}
