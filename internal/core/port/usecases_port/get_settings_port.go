package usecases_port

import (
	"context"

	"classifieds-service/internal/core/domain"
)

type GetSettingsUseCase interface {
	Execute(ctx context.Context) (*domain.Settings, error)
}
