package usecase

import (
	"context"
	"fmt"
	"time"

	"classifieds-service/internal/contextkeys"
	"classifieds-service/internal/core/domain"
	"classifieds-service/internal/core/port"

	"github.com/google/uuid"
)

type CreateListingUseCase struct {
	listings port.ListingRepositoryPort
}

func NewCreateListingUseCase(listings port.ListingRepositoryPort) *CreateListingUseCase {
	return &CreateListingUseCase{listings: listings}
}

func (uc *CreateListingUseCase) Execute(ctx context.Context, auth *domain.AuthContext, draft domain.Listing) (*domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CreateListing",
		"owner_id": auth.UserID.String(),
	})

	ucLogger.Info("Use case started", nil)

	if !draft.Price.MatchesFileType(draft.FileType) {
		ucLogger.Warn("Price variant does not match file type", port.Fields{
			"file_type": draft.FileType,
		})
		return nil, fmt.Errorf("%w: price shape does not match fileType %q", domain.ErrValidation, draft.FileType)
	}
	if len(draft.Images) > domain.MaxImages {
		return nil, fmt.Errorf("%w: at most %d images are allowed", domain.ErrValidation, domain.MaxImages)
	}

	now := time.Now().UTC()
	listing := draft
	listing.ID = uuid.New()
	listing.OwnerID = auth.UserID
	listing.Moderation = domain.ModerationPending
	listing.CreatedAt = now
	listing.UpdatedAt = now

	if err := uc.listings.Create(ctx, &listing); err != nil {
		ucLogger.Error("Repository failed to create listing", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished: listing created, awaiting moderation", port.Fields{
		"listing_id": listing.ID.String(),
	})
	return &listing, nil
}
