package usecases_port

import (
	"context"

	"classifieds-service/internal/core/domain"

	"github.com/google/uuid"
)

// ModerateListingUseCase - смена состояния модерации. Только ADMIN;
// SUBADMIN и владелец получают ErrForbidden, а не молчаливый no-op.
type ModerateListingUseCase interface {
	Execute(ctx context.Context, auth *domain.AuthContext, listingID uuid.UUID, state domain.ModerationState) (*domain.Listing, error)
}
