package usecases_port

import (
	"context"

	"classifieds-service/internal/core/domain"
)

type UpdateSettingsUseCase interface {
	Execute(ctx context.Context, auth *domain.AuthContext, settings domain.Settings) (*domain.Settings, error)
}
