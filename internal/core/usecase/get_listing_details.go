package usecase

import (
	"context"

	"classifieds-service/internal/contextkeys"
	"classifieds-service/internal/core/domain"
	"classifieds-service/internal/core/port"

	"github.com/google/uuid"
)

type GetListingDetailsUseCase struct {
	listings port.ListingRepositoryPort
}

func NewGetListingDetailsUseCase(listings port.ListingRepositoryPort) *GetListingDetailsUseCase {
	return &GetListingDetailsUseCase{listings: listings}
}

func (uc *GetListingDetailsUseCase) Execute(ctx context.Context, auth *domain.AuthContext, listingID uuid.UUID) (*domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "GetListingDetails",
		"listing_id": listingID.String(),
	})

	listing, err := uc.listings.FindByID(ctx, listingID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}
	if listing == nil {
		ucLogger.Warn("Listing not found", nil)
		return nil, domain.ErrListingNotFound
	}

	// Гейт видимости: неопубликованное объявление для постороннего
	// выглядит так, будто его нет вовсе.
	if !listing.VisibleTo(auth) {
		ucLogger.Warn("Visibility gate rejected the caller", port.Fields{
			"moderation": listing.Moderation,
		})
		return nil, domain.ErrListingNotFound
	}

	ucLogger.Info("Use case finished successfully", nil)
	return listing, nil
}
