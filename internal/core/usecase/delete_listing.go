package usecase

import (
	"context"

	"classifieds-service/internal/contextkeys"
	"classifieds-service/internal/core/domain"
	"classifieds-service/internal/core/port"

	"github.com/google/uuid"
)

type DeleteListingUseCase struct {
	listings port.ListingRepositoryPort
}

func NewDeleteListingUseCase(listings port.ListingRepositoryPort) *DeleteListingUseCase {
	return &DeleteListingUseCase{listings: listings}
}

func (uc *DeleteListingUseCase) Execute(ctx context.Context, auth *domain.AuthContext, listingID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "DeleteListing",
		"listing_id": listingID.String(),
	})

	ucLogger.Info("Use case started", nil)

	existing, err := uc.listings.FindByID(ctx, listingID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return err
	}
	if existing == nil {
		ucLogger.Warn("Listing not found", nil)
		return domain.ErrListingNotFound
	}

	if !existing.CanBeDeletedBy(auth) {
		ucLogger.Warn("Caller may not delete this listing", nil)
		return domain.ErrForbidden
	}

	if err := uc.listings.Delete(ctx, listingID); err != nil {
		ucLogger.Error("Repository failed to delete listing", err, nil)
		return err
	}

	ucLogger.Info("Use case finished: listing deleted", nil)
	return nil
}
