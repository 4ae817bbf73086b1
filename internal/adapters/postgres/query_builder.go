package postgres

import (
	"fmt"
	"strings"

	"classifieds-service/internal/core/domain"
	"classifieds-service/internal/core/port"
)

type queryBuilder struct {
	conditions []string
	args       []interface{}
	argId      int
}

func newQueryBuilder(publicOnly bool) *queryBuilder {
	qb := &queryBuilder{
		argId:      1,
		conditions: make([]string, 0),
		args:       make([]interface{}, 0),
	}
	if publicOnly {
		// Публичный каталог всегда работает только по опубликованным.
		qb.conditions = append(qb.conditions, "l.moderation_status = 'published'")
	}
	return qb
}

func (qb *queryBuilder) addCondition(condition string, fieldName string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, fieldName, qb.argId))
	qb.args = append(qb.args, arg)
	qb.argId++
}

// AddFloatFilter принимает указатели: nil означает, что граница не задана.
func (qb *queryBuilder) AddFloatFilter(fieldName string, min *float64, max *float64) {
	if min != nil {
		qb.addCondition("%s >= $%d", fieldName, *min)
	}
	if max != nil {
		qb.addCondition("%s <= $%d", fieldName, *max)
	}
}

// build создает финальную WHERE-часть запроса
func (qb *queryBuilder) build() (string, []interface{}) {
	whereClause := ""
	if len(qb.conditions) > 0 {
		whereClause = "WHERE " + strings.Join(qb.conditions, " AND ")
	}
	return whereClause, qb.args
}

// applyFilters - главный метод, который разбирает фильтры и строит запрос.
// Ценовые границы привязаны к типу сделки: без fileType колонка цены
// неоднозначна, поэтому они молча игнорируются.
func applyFilters(q port.ListingQuery) (string, []interface{}) {
	qb := newQueryBuilder(q.PublicOnly)
	filters := q.Filters

	if filters.FileType != "" {
		qb.addCondition("%s = $%d", "l.file_type", filters.FileType)
	}
	if filters.Category != "" {
		qb.addCondition("%s = $%d", "l.category", filters.Category)
	}

	qb.AddFloatFilter("l.area_meter", filters.AreaMeterStart, filters.AreaMeterEnd)

	switch domain.FileType(filters.FileType) {
	case domain.FileTypeBuy:
		qb.AddFloatFilter("l.price_amount", filters.MinPrice, filters.MaxPrice)
	case domain.FileTypeRent:
		qb.AddFloatFilter("l.price_mortgage", filters.MinPrice, filters.MaxPrice)
		qb.AddFloatFilter("l.price_rent", filters.MinRent, filters.MaxRent)
	case domain.FileTypeMortgage:
		qb.AddFloatFilter("l.price_mortgage", filters.MinPrice, filters.MaxPrice)
	}

	// Поиск по заголовку (подстрока без учета регистра)
	if filters.Search != "" {
		qb.addCondition("%s ILIKE $%d", "l.title", "%"+filters.Search+"%")
	}

	return qb.build()
}

// sortColumn отображает доменное поле сортировки на колонку таблицы.
func sortColumn(field domain.SortField) string {
	switch field {
	case domain.SortBySalePrice:
		return "l.price_amount"
	case domain.SortByRentPrice:
		return "l.price_rent"
	case domain.SortByArea:
		return "l.area_meter"
	default:
		return "l.created_at"
	}
}

// buildOrderBy строит стабильную сортировку: id как tie-breaker,
// NULLS LAST - чтобы объявления без цены не всплывали наверх.
func buildOrderBy(field domain.SortField, desc bool) string {
	direction := "ASC"
	if desc {
		direction = "DESC"
	}
	return fmt.Sprintf("ORDER BY %s %s NULLS LAST, l.id ASC", sortColumn(field), direction)
}
