package usecases_port

import (
	"context"

	"classifieds-service/internal/core/domain"

	"github.com/google/uuid"
)

type DeleteListingUseCase interface {
	Execute(ctx context.Context, auth *domain.AuthContext, listingID uuid.UUID) error
}
