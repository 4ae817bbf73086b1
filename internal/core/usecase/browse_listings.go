package usecase

import (
	"context"

	"classifieds-service/internal/contextkeys"
	"classifieds-service/internal/core/domain"
	"classifieds-service/internal/core/port"
)

// BrowseListingsUseCase - публичный каталог. Собирает фильтры, сортировку
// и пагинацию в один запрос к хранилищу; предикат всегда включает
// "только опубликованные".
type BrowseListingsUseCase struct {
	listings port.ListingRepositoryPort
}

func NewBrowseListingsUseCase(listings port.ListingRepositoryPort) *BrowseListingsUseCase {
	return &BrowseListingsUseCase{listings: listings}
}

func (uc *BrowseListingsUseCase) Execute(ctx context.Context, filters domain.ListingFilters, sortKey string, page int) (*domain.PaginatedListings, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "BrowseListings",
		"sort":     sortKey,
		"page":     page,
	})

	ucLogger.Info("Use case started", nil)

	page = domain.NormalizePage(page)
	sortField, sortDesc := domain.ResolveSort(sortKey, domain.FileType(filters.FileType))

	result, err := uc.listings.FindWithFilters(ctx, port.ListingQuery{
		Filters:    filters,
		SortBy:     sortField,
		SortDesc:   sortDesc,
		Limit:      domain.ItemsPerPage,
		Offset:     domain.PageOffset(page),
		PublicOnly: true,
	})
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	result.CurrentPage = page
	result.TotalPages = domain.TotalPages(result.TotalCount)
	result.ItemsPerPage = domain.ItemsPerPage

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found":   result.TotalCount,
		"items_on_page": len(result.Listings),
	})

	return result, nil
}
