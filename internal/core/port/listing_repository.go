package port

import (
	"context"

	"classifieds-service/internal/core/domain"

	"github.com/google/uuid"
)

// ListingQuery - параметры одной страничной выборки. Count и выборка
// страницы обязаны выполняться по одному и тому же предикату.
type ListingQuery struct {
	Filters  domain.ListingFilters
	SortBy   domain.SortField
	SortDesc bool
	Limit    int
	Offset   int

	// PublicOnly добавляет базовое условие "только опубликованные".
	// Публичный каталог - true, админская панель - false.
	PublicOnly bool
}

// ListingRepositoryPort - контракт хранилища объявлений.
type ListingRepositoryPort interface {
	Create(ctx context.Context, listing *domain.Listing) error
	Update(ctx context.Context, listing *domain.Listing) error
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID возвращает (nil, nil), если объявление не найдено.
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error)

	// FindWithFilters выполняет count + выборку страницы по общему предикату.
	FindWithFilters(ctx context.Context, q ListingQuery) (*domain.PaginatedListings, error)

	// FindByOwner - все объявления пользователя, независимо от модерации.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Listing, error)

	// SetModerationState меняет только состояние модерации.
	SetModerationState(ctx context.Context, id uuid.UUID, state domain.ModerationState) error

	// DeleteByOwner удаляет все объявления пользователя (каскад при удалении аккаунта).
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error
}
