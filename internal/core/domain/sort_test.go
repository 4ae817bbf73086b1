package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSort(t *testing.T) {
	cases := []struct {
		key      string
		fileType FileType
		field    SortField
		desc     bool
	}{
		{"newest", FileTypeBuy, SortByCreatedAt, true},
		{"oldest", FileTypeBuy, SortByCreatedAt, false},
		{"area-high", FileTypeBuy, SortByArea, true},
		{"area-low", FileTypeRent, SortByArea, false},
		{"price-high", FileTypeBuy, SortBySalePrice, true},
		{"price-low", FileTypeBuy, SortBySalePrice, false},
		// для аренды цена значит квартплату
		{"price-high", FileTypeRent, SortByRentPrice, true},
		{"price-low", FileTypeRent, SortByRentPrice, false},
		// для ипотеки сортировка идет по залогу через общую price-колонку
		{"price-high", FileTypeMortgage, SortBySalePrice, true},
		// неизвестные ключи и пустой ввод откатываются к newest
		{"", FileTypeBuy, SortByCreatedAt, true},
		{"cheapest", FileTypeRent, SortByCreatedAt, true},
		{"PRICE-HIGH", FileTypeBuy, SortByCreatedAt, true},
	}

	for _, tc := range cases {
		field, desc := ResolveSort(tc.key, tc.fileType)
		assert.Equalf(t, tc.field, field, "key=%q fileType=%q", tc.key, tc.fileType)
		assert.Equalf(t, tc.desc, desc, "key=%q fileType=%q", tc.key, tc.fileType)
	}
}
