package usecase

import (
	"context"

	"classifieds-service/internal/contextkeys"
	"classifieds-service/internal/core/domain"
	"classifieds-service/internal/core/port"
)

// ReviewListingsUseCase - выборка для панели модерации: тот же конвейер,
// что и у публичного каталога, но предикат НЕ содержит условия published,
// поэтому видны объявления во всех состояниях.
type ReviewListingsUseCase struct {
	listings port.ListingRepositoryPort
}

func NewReviewListingsUseCase(listings port.ListingRepositoryPort) *ReviewListingsUseCase {
	return &ReviewListingsUseCase{listings: listings}
}

func (uc *ReviewListingsUseCase) Execute(ctx context.Context, auth *domain.AuthContext, filters domain.ListingFilters, sortKey string, page int) (*domain.PaginatedListings, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ReviewListings",
		"sort":     sortKey,
		"page":     page,
	})

	if !auth.CanReviewListings() {
		ucLogger.Warn("Caller has no access to the review panel", nil)
		return nil, domain.ErrForbidden
	}

	page = domain.NormalizePage(page)
	sortField, sortDesc := domain.ResolveSort(sortKey, domain.FileType(filters.FileType))

	result, err := uc.listings.FindWithFilters(ctx, port.ListingQuery{
		Filters:    filters,
		SortBy:     sortField,
		SortDesc:   sortDesc,
		Limit:      domain.ItemsPerPage,
		Offset:     domain.PageOffset(page),
		PublicOnly: false,
	})
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	result.CurrentPage = page
	result.TotalPages = domain.TotalPages(result.TotalCount)
	result.ItemsPerPage = domain.ItemsPerPage

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found": result.TotalCount,
	})
	return result, nil
}
