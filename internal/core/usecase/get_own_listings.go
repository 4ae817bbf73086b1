package usecase

import (
	"context"

	"classifieds-service/internal/contextkeys"
	"classifieds-service/internal/core/domain"
	"classifieds-service/internal/core/port"
)

type GetOwnListingsUseCase struct {
	listings port.ListingRepositoryPort
}

func NewGetOwnListingsUseCase(listings port.ListingRepositoryPort) *GetOwnListingsUseCase {
	return &GetOwnListingsUseCase{listings: listings}
}

func (uc *GetOwnListingsUseCase) Execute(ctx context.Context, auth *domain.AuthContext) ([]domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetOwnListings",
		"owner_id": auth.UserID.String(),
	})

	listings, err := uc.listings.FindByOwner(ctx, auth.UserID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"count": len(listings)})
	return listings, nil
}
