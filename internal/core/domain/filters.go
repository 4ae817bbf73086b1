package domain

// ListingFilters - плоский набор необязательных параметров публичного поиска.
// nil-указатель означает "параметр не задан": соответствующее условие
// в запрос не попадает вообще, никаких дефолтных диапазонов.
type ListingFilters struct {
	FileType string
	Category string

	AreaMeterStart *float64
	AreaMeterEnd   *float64

	// Семантика min/max зависит от FileType: для buy это скалярная цена,
	// для rent/mortgage - залог (mortgage). MinRent/MaxRent применяются
	// только при FileType == rent.
	MinPrice *float64
	MaxPrice *float64
	MinRent  *float64
	MaxRent  *float64

	// Поиск подстроки в заголовке, регистронезависимый.
	Search string
}

// PaginatedListings - страница результатов вместе с метаданными пагинации.
type PaginatedListings struct {
	Listings     []Listing
	TotalCount   int64
	CurrentPage  int
	TotalPages   int
	ItemsPerPage int
}
