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

type UpdateListingUseCase struct {
	listings port.ListingRepositoryPort
}

func NewUpdateListingUseCase(listings port.ListingRepositoryPort) *UpdateListingUseCase {
	return &UpdateListingUseCase{listings: listings}
}

func (uc *UpdateListingUseCase) Execute(ctx context.Context, auth *domain.AuthContext, listingID uuid.UUID, draft domain.Listing) (*domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "UpdateListing",
		"listing_id": listingID.String(),
	})

	ucLogger.Info("Use case started", nil)

	existing, err := uc.listings.FindByID(ctx, listingID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}
	if existing == nil {
		ucLogger.Warn("Listing not found", nil)
		return nil, domain.ErrListingNotFound
	}

	if !existing.CanBeEditedBy(auth) {
		// Чужое объявление: владелец-не-ты получает явный отказ.
		// Существование записи тут уже не секрет - контент правит только владелец.
		ucLogger.Warn("Caller is not the owner of the listing", nil)
		return nil, domain.ErrForbidden
	}

	if !draft.Price.MatchesFileType(draft.FileType) {
		return nil, fmt.Errorf("%w: price shape does not match fileType %q", domain.ErrValidation, draft.FileType)
	}
	if len(draft.Images) > domain.MaxImages {
		return nil, fmt.Errorf("%w: at most %d images are allowed", domain.ErrValidation, domain.MaxImages)
	}

	// Переносим контентные поля; владелец, состояние модерации
	// и даты создания остаются прежними.
	updated := *existing
	updated.Title = draft.Title
	updated.Description = draft.Description
	updated.Location = draft.Location
	updated.Address = draft.Address
	updated.RealState = draft.RealState
	updated.Phone = draft.Phone
	updated.FileType = draft.FileType
	updated.AreaMeter = draft.AreaMeter
	updated.Price = draft.Price
	updated.Category = draft.Category
	updated.ConstructionDate = draft.ConstructionDate
	updated.Amenities = draft.Amenities
	updated.Rules = draft.Rules
	updated.Images = draft.Images
	updated.UpdatedAt = time.Now().UTC()

	if err := uc.listings.Update(ctx, &updated); err != nil {
		ucLogger.Error("Repository failed to update listing", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished: listing updated", nil)
	return &updated, nil
}
