package repositories

import (
	"strings"

	"gorm.io/gorm"
)

// PageSort is the pagination and price-sort contract shared by the catalog
// listing endpoints. Page is 1-indexed and only applies when Limit is set;
// without a limit the full filtered set is returned. PriceSort orders by the
// underlying product price, "asc" ascending, anything else descending.
type PageSort struct {
	PriceSort string
	Limit     int
	Page      int
}

func (p PageSort) apply(q *gorm.DB) *gorm.DB {
	if p.PriceSort != "" {
		dir := "DESC"
		if strings.EqualFold(p.PriceSort, "asc") {
			dir = "ASC"
		}
		q = q.Order("products.price " + dir)
	}
	if p.Limit > 0 {
		page := p.Page
		if page < 1 {
			page = 1
		}
		q = q.Offset((page - 1) * p.Limit).Limit(p.Limit)
	}
	return q
}

func filterBrands(q *gorm.DB, brands []string) *gorm.DB {
	if len(brands) > 0 {
		q = q.Where("products.brand IN ?", brands)
	}
	return q
}

// filterContains ORs a case-insensitive substring match per value on one
// column. Values are ORed with each other and ANDed with the rest of the
// query.
func filterContains(q *gorm.DB, column string, values []string) *gorm.DB {
	if len(values) == 0 {
		return q
	}
	group := q.Session(&gorm.Session{NewDB: true})
	for i, v := range values {
		pattern := "%" + strings.ToLower(strings.TrimSpace(v)) + "%"
		if i == 0 {
			group = group.Where("LOWER("+column+") LIKE ?", pattern)
		} else {
			group = group.Or("LOWER("+column+") LIKE ?", pattern)
		}
	}
	return q.Where(group)
}
