package port

import (
	"context"

	"classifieds-service/internal/core/domain"
)

// SettingsRepositoryPort - контракт хранилища singleton-настроек.
type SettingsRepositoryPort interface {
	// Get возвращает дефолтные настройки, если запись еще не создавалась.
	Get(ctx context.Context) (*domain.Settings, error)
	Upsert(ctx context.Context, settings *domain.Settings) error
}
