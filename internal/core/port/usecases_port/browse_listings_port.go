package usecases_port

import (
	"context"

	"classifieds-service/internal/core/domain"
)

// BrowseListingsUseCase - публичный каталог: только опубликованные объявления.
type BrowseListingsUseCase interface {
	Execute(ctx context.Context, filters domain.ListingFilters, sortKey string, page int) (*domain.PaginatedListings, error)
}
