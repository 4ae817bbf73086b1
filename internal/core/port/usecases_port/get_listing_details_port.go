package usecases_port

import (
	"context"

	"classifieds-service/internal/core/domain"

	"github.com/google/uuid"
)

// GetListingDetailsUseCase - карточка объявления с проверкой гейта видимости.
// Отказ гейта неотличим от несуществующего id (ErrListingNotFound).
type GetListingDetailsUseCase interface {
	Execute(ctx context.Context, auth *domain.AuthContext, listingID uuid.UUID) (*domain.Listing, error)
}
