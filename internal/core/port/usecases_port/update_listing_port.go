package usecases_port

import (
	"context"

	"classifieds-service/internal/core/domain"

	"github.com/google/uuid"
)

// UpdateListingUseCase - правка контентных полей владельцем.
// Состояние модерации этим путем не меняется.
type UpdateListingUseCase interface {
	Execute(ctx context.Context, auth *domain.AuthContext, listingID uuid.UUID, draft domain.Listing) (*domain.Listing, error)
}
