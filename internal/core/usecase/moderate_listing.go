package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"classifieds-service/internal/contextkeys"
	"classifieds-service/internal/core/domain"
	"classifieds-service/internal/core/port"
)

// ModerateListingUseCase - вынесение решения модерации. Менять статус может
// только ADMIN: субадмин видит панель, но решение не принимает.
type ModerateListingUseCase struct {
	listings port.ListingRepositoryPort
	reporter port.ModerationReporterPort
}

func NewModerateListingUseCase(listings port.ListingRepositoryPort, reporter port.ModerationReporterPort) *ModerateListingUseCase {
	return &ModerateListingUseCase{listings: listings, reporter: reporter}
}

func (uc *ModerateListingUseCase) Execute(ctx context.Context, auth *domain.AuthContext, listingID uuid.UUID, state domain.ModerationState) (*domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "ModerateListing",
		"listing_id": listingID.String(),
		"state":      string(state),
	})

	if !auth.CanModerate() {
		ucLogger.Warn("Caller is not allowed to moderate listings", nil)
		return nil, domain.ErrForbidden
	}
	if !state.IsValid() {
		return nil, fmt.Errorf("%w: unknown moderation state %q", domain.ErrValidation, state)
	}

	listing, err := uc.listings.FindByID(ctx, listingID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}
	if listing == nil {
		return nil, domain.ErrListingNotFound
	}

	if err := uc.listings.SetModerationState(ctx, listingID, state); err != nil {
		ucLogger.Error("Failed to persist moderation decision", err, nil)
		return nil, err
	}
	listing.Moderation = state
	listing.UpdatedAt = time.Now()

	// Уведомление - best effort: решение уже сохранено, отказ брокера
	// не должен откатывать модерацию.
	event := port.ModerationEvent{
		ListingID:   listingID,
		OwnerID:     listing.OwnerID,
		State:       state,
		ModeratorID: auth.UserID,
		At:          time.Now(),
	}
	if err := uc.reporter.ReportModeration(ctx, event); err != nil {
		ucLogger.Warn("Failed to publish moderation event", port.Fields{
			"error": err.Error(),
		})
	}

	ucLogger.Info("Use case finished successfully", nil)
	return listing, nil
}
