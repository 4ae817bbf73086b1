package domain

import "time"

// HomePageSliders - какие секции-слайдеры показывать на главной.
type HomePageSliders struct {
	Newest    bool
	Apartment bool
	Store     bool
	Office    bool
	VillaLand bool
}

// Settings - singleton-настройки сайта. Инвариант "существует не больше
// одной записи" обеспечивает репозиторий (upsert по фиксированному ключу).
type Settings struct {
	HomePageSliders HomePageSliders
	UpdatedAt       time.Time
}

// DefaultSettings - значения до первого сохранения: все слайдеры включены.
func DefaultSettings() *Settings {
	return &Settings{
		HomePageSliders: HomePageSliders{
			Newest:    true,
			Apartment: true,
			Store:     true,
			Office:    true,
			VillaLand: true,
		},
	}
}
