package handlers

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/TheCodister/badminton-shop-api/app/helpers"
	"github.com/TheCodister/badminton-shop-api/app/models"
	"github.com/TheCodister/badminton-shop-api/app/repositories"
)

// parseBrands uppercases each comma separated value and keeps only known
// brands, so an unrecognized value never reaches the storage query.
func parseBrands(raw string) []string {
	values := helpers.SplitCSV(raw)
	brands := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToUpper(v)
		if models.ValidBrand(v) {
			brands = append(brands, v)
		}
	}
	return brands
}

// parseEnumList strips all whitespace from each value, uppercases it and
// keeps only values the given enum accepts.
func parseEnumList(raw string, valid func(string) bool) []string {
	values := helpers.SplitCSV(raw)
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToUpper(strings.ReplaceAll(v, " ", ""))
		if valid(v) {
			out = append(out, v)
		}
	}
	return out
}

func parseIntList(raw, name string) ([]int, error) {
	values := helpers.SplitCSV(raw)
	out := make([]int, 0, len(values))
	for _, v := range values {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, helpers.NewValidation("Invalid " + name)
		}
		out = append(out, n)
	}
	return out, nil
}

func parsePageSort(q url.Values) (repositories.PageSort, error) {
	ps := repositories.PageSort{PriceSort: q.Get("price"), Page: 1}

	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return ps, helpers.NewValidation("Invalid limit")
		}
		ps.Limit = limit
	}
	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return ps, helpers.NewValidation("Invalid page")
		}
		ps.Page = page
	}
	return ps, nil
}
