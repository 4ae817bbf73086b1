package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"classifieds-service/internal/core/domain"
)

// SettingsRepository хранит singleton-запись настроек витрины.
type SettingsRepository struct {
	pool *pgxpool.Pool
}

func NewSettingsRepository(pool *pgxpool.Pool) (*SettingsRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &SettingsRepository{pool: pool}, nil
}

// Get возвращает дефолтные настройки, если запись еще не создавалась.
func (r *SettingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	query := `SELECT slider_newest, slider_apartment, slider_store, slider_office, slider_villa_land, updated_at
			  FROM settings WHERE id = 1`

	var s domain.Settings
	err := r.pool.QueryRow(ctx, query).Scan(
		&s.HomePageSliders.Newest,
		&s.HomePageSliders.Apartment,
		&s.HomePageSliders.Store,
		&s.HomePageSliders.Office,
		&s.HomePageSliders.VillaLand,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return &s, nil
}

func (r *SettingsRepository) Upsert(ctx context.Context, settings *domain.Settings) error {
	query := `INSERT INTO settings (id, slider_newest, slider_apartment, slider_store, slider_office, slider_villa_land, updated_at)
			  VALUES (1, $1, $2, $3, $4, $5, $6)
			  ON CONFLICT (id) DO UPDATE SET
				  slider_newest = EXCLUDED.slider_newest,
				  slider_apartment = EXCLUDED.slider_apartment,
				  slider_store = EXCLUDED.slider_store,
				  slider_office = EXCLUDED.slider_office,
				  slider_villa_land = EXCLUDED.slider_villa_land,
				  updated_at = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query,
		settings.HomePageSliders.Newest,
		settings.HomePageSliders.Apartment,
		settings.HomePageSliders.Store,
		settings.HomePageSliders.Office,
		settings.HomePageSliders.VillaLand,
		settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert settings: %w", err)
	}
	return nil
}
