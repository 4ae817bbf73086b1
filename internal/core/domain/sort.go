package domain

// SortField - логическое поле сортировки. Адаптер хранилища сам мапит
// его на конкретную колонку.
type SortField string

const (
	SortByCreatedAt SortField = "createdAt"
	SortBySalePrice SortField = "price"
	SortByRentPrice SortField = "price.rent"
	SortByArea      SortField = "areaMeter"
)

// ResolveSort - чистая функция (sortKey, fileType) -> (поле, направление).
// Тотальная: любой ключ дает ровно одну пару, неизвестные ключи
// откатываются к newest. Поле цены зависит от активного fileType,
// потому что у buy цена скалярная, а у rent сортируют по кварплате.
func ResolveSort(sortKey string, fileType FileType) (SortField, bool) {
	switch sortKey {
	case "oldest":
		return SortByCreatedAt, false
	case "price-high":
		return priceSortField(fileType), true
	case "price-low":
		return priceSortField(fileType), false
	case "area-high":
		return SortByArea, true
	case "area-low":
		return SortByArea, false
	default: // newest и все нераспознанные ключи
		return SortByCreatedAt, true
	}
}

func priceSortField(fileType FileType) SortField {
	if fileType == FileTypeRent {
		return SortByRentPrice
	}
	return SortBySalePrice
}
