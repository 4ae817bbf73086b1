package usecases_port

import (
	"context"

	"classifieds-service/internal/core/domain"
)

// ReviewListingsUseCase - админская выборка: тот же конвейер
// фильтров/сортировки/пагинации, но без условия published.
// Доступна ADMIN и SUBADMIN.
type ReviewListingsUseCase interface {
	Execute(ctx context.Context, auth *domain.AuthContext, filters domain.ListingFilters, sortKey string, page int) (*domain.PaginatedListings, error)
}
