package usecases_port

import (
	"context"

	"classifieds-service/internal/core/domain"
)

// GetOwnListingsUseCase - объявления самого пользователя для личного
// кабинета, во всех состояниях модерации.
type GetOwnListingsUseCase interface {
	Execute(ctx context.Context, auth *domain.AuthContext) ([]domain.Listing, error)
}
