package usecases_port

import (
	"context"

	"classifieds-service/internal/core/domain"
)

// CreateListingUseCase - подача нового объявления. Новые объявления
// всегда попадают на модерацию (pending).
type CreateListingUseCase interface {
	Execute(ctx context.Context, auth *domain.AuthContext, draft domain.Listing) (*domain.Listing, error)
}
