package domain

// ItemsPerPage - фиксированный размер страницы каталога.
const ItemsPerPage = 15

// NormalizePage приводит номер страницы к 1-индексированному значению:
// все, что меньше единицы (в том числе нераспарсенный ввод), становится 1.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// PageOffset - смещение выборки для страницы.
func PageOffset(page int) int {
	return (NormalizePage(page) - 1) * ItemsPerPage
}

// TotalPages - количество страниц для счетчика. Округление вверх.
func TotalPages(totalCount int64) int {
	if totalCount <= 0 {
		return 0
	}
	return int((totalCount + ItemsPerPage - 1) / ItemsPerPage)
}
