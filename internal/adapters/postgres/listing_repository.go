package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"classifieds-service/internal/contextkeys"
	"classifieds-service/internal/core/domain"
	"classifieds-service/internal/core/port"
)

// listingColumns - общий список колонок выборки, вместе с данными владельца
// из LEFT JOIN users.
const listingColumns = `
	l.id, l.title, l.description, l.location, l.address, l.real_state, l.phone,
	l.file_type, l.area_meter, l.price_amount, l.price_rent, l.price_mortgage,
	l.category, l.construction_date, l.amenities, l.rules, l.images,
	l.owner_id, l.moderation_status, l.created_at, l.updated_at,
	u.show_name, u.full_name`

type ListingRepository struct {
	pool *pgxpool.Pool
}

func NewListingRepository(pool *pgxpool.Pool) (*ListingRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &ListingRepository{pool: pool}, nil
}

// priceColumns раскладывает вариант цены по трем nullable-колонкам.
func priceColumns(p domain.Price) (amount, rent, mortgage *float64) {
	switch p.Kind {
	case domain.PriceSale:
		amount = &p.Amount
	case domain.PriceTerms:
		rent = &p.Rent
		mortgage = &p.Mortgage
	}
	return
}

// scanPrice восстанавливает вариант из колонок: заполненный price_amount
// означает цену продажи, иначе пара аренда/ипотека.
func scanPrice(amount, rent, mortgage *float64) domain.Price {
	if amount != nil {
		return domain.NewSalePrice(*amount)
	}
	var r, m float64
	if rent != nil {
		r = *rent
	}
	if mortgage != nil {
		m = *mortgage
	}
	return domain.NewRentTerms(r, m)
}

type listingScanner interface {
	Scan(dest ...any) error
}

func scanListing(row listingScanner) (*domain.Listing, error) {
	var (
		l                     domain.Listing
		amount, rent, mortgag *float64
		showName, fullName    *string
	)
	if err := row.Scan(
		&l.ID, &l.Title, &l.Description, &l.Location, &l.Address, &l.RealState, &l.Phone,
		&l.FileType, &l.AreaMeter, &amount, &rent, &mortgag,
		&l.Category, &l.ConstructionDate, &l.Amenities, &l.Rules, &l.Images,
		&l.OwnerID, &l.Moderation, &l.CreatedAt, &l.UpdatedAt,
		&showName, &fullName,
	); err != nil {
		return nil, err
	}
	l.Price = scanPrice(amount, rent, mortgag)
	if showName != nil {
		owner := domain.OwnerInfo{ID: l.OwnerID, ShowName: *showName}
		if fullName != nil {
			owner.FullName = *fullName
		}
		l.Owner = &owner
	}
	return &l, nil
}

func (r *ListingRepository) Create(ctx context.Context, listing *domain.Listing) error {
	amount, rent, mortgage := priceColumns(listing.Price)

	query := `
		INSERT INTO listings (id, title, description, location, address, real_state, phone,
			file_type, area_meter, price_amount, price_rent, price_mortgage,
			category, construction_date, amenities, rules, images,
			owner_id, moderation_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`

	_, err := r.pool.Exec(ctx, query,
		listing.ID, listing.Title, listing.Description, listing.Location, listing.Address,
		listing.RealState, listing.Phone, listing.FileType, listing.AreaMeter,
		amount, rent, mortgage, listing.Category, listing.ConstructionDate,
		listing.Amenities, listing.Rules, listing.Images,
		listing.OwnerID, listing.Moderation, listing.CreatedAt, listing.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("ListingRepository: failed to insert listing: %w", err)
	}
	return nil
}

func (r *ListingRepository) Update(ctx context.Context, listing *domain.Listing) error {
	amount, rent, mortgage := priceColumns(listing.Price)

	query := `
		UPDATE listings
		SET title = $2, description = $3, location = $4, address = $5, real_state = $6,
			phone = $7, file_type = $8, area_meter = $9,
			price_amount = $10, price_rent = $11, price_mortgage = $12,
			category = $13, construction_date = $14, amenities = $15, rules = $16,
			images = $17, moderation_status = $18, updated_at = $19
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		listing.ID, listing.Title, listing.Description, listing.Location, listing.Address,
		listing.RealState, listing.Phone, listing.FileType, listing.AreaMeter,
		amount, rent, mortgage, listing.Category, listing.ConstructionDate,
		listing.Amenities, listing.Rules, listing.Images,
		listing.Moderation, listing.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("ListingRepository: failed to update listing %s: %w", listing.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

func (r *ListingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ListingRepository: failed to delete listing %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

// FindByID возвращает (nil, nil), если объявление не найдено.
func (r *ListingRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM listings l
		LEFT JOIN users u ON u.id = l.owner_id
		WHERE l.id = $1`, listingColumns)

	listing, err := scanListing(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ListingRepository: failed to get listing %s: %w", id, err)
	}
	return listing, nil
}

// FindWithFilters выполняет count и выборку страницы в одной транзакции,
// чтобы totalPages считался по тому же снимку данных, что и страница.
func (r *ListingRepository) FindWithFilters(ctx context.Context, q port.ListingQuery) (*domain.PaginatedListings, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "ListingRepository",
		"method":    "FindWithFilters",
		"limit":     q.Limit,
		"offset":    q.Offset,
	})

	whereClause, args := applyFilters(q)

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM listings l %s", whereClause)
	var totalCount int64
	if err := tx.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		repoLogger.Error("Failed to count listings with filters", err, port.Fields{"query": countQuery})
		return nil, fmt.Errorf("failed to count listings with filters: %w", err)
	}

	// Если ничего не найдено, нет смысла делать второй запрос
	if totalCount == 0 {
		return &domain.PaginatedListings{
			Listings:   []domain.Listing{},
			TotalCount: 0,
		}, nil
	}

	dataQuery := fmt.Sprintf(`
		SELECT %s
		FROM listings l
		LEFT JOIN users u ON u.id = l.owner_id
		%s
		%s
		LIMIT $%d OFFSET $%d`,
		listingColumns, whereClause, buildOrderBy(q.SortBy, q.SortDesc),
		len(args)+1, len(args)+2,
	)
	pageArgs := append(args, q.Limit, q.Offset)

	rows, err := tx.Query(ctx, dataQuery, pageArgs...)
	if err != nil {
		repoLogger.Error("Failed to find listings with filters", err, port.Fields{"query": dataQuery})
		return nil, fmt.Errorf("failed to find listings with filters: %w", err)
	}
	defer rows.Close()

	listings := make([]domain.Listing, 0, q.Limit)
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		listings = append(listings, *listing)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during listings rows iteration", err, nil)
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	repoLogger.Info("Successfully found listings for page", port.Fields{
		"count":       len(listings),
		"total_count": totalCount,
	})

	return &domain.PaginatedListings{
		Listings:   listings,
		TotalCount: totalCount,
	}, nil
}

// FindByOwner - все объявления пользователя, независимо от модерации.
func (r *ListingRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Listing, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM listings l
		LEFT JOIN users u ON u.id = l.owner_id
		WHERE l.owner_id = $1
		ORDER BY l.created_at DESC, l.id ASC`, listingColumns)

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("ListingRepository: failed to query listings of owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	listings := make([]domain.Listing, 0)
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("ListingRepository: failed to scan owner listing: %w", err)
		}
		listings = append(listings, *listing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListingRepository: error during owner listings iteration: %w", err)
	}
	return listings, nil
}

func (r *ListingRepository) SetModerationState(ctx context.Context, id uuid.UUID, state domain.ModerationState) error {
	query := `UPDATE listings SET moderation_status = $2, updated_at = now() WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id, state)
	if err != nil {
		return fmt.Errorf("ListingRepository: failed to set moderation state for %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

func (r *ListingRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM listings WHERE owner_id = $1`, ownerID)
	if err != nil {
		return fmt.Errorf("ListingRepository: failed to delete listings of owner %s: %w", ownerID, err)
	}
	return nil
}
