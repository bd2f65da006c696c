package catalog

import (
	"strings"

	"github.com/marvenarg/countrycatalog/internal/domain"
)

// FindIndicesByName returns, in collection order, the indices of the records
// whose normalized name contains the normalized query. An empty query matches
// every record.
func FindIndicesByName(records []domain.Country, query string) []int {
	target := domain.NormalizeKey(query)
	indices := make([]int, 0)
	for i := range records {
		if strings.Contains(records[i].Key(), target) {
			indices = append(indices, i)
		}
	}
	return indices
}

// IndexOfKey returns the index of the record whose normalized name equals the
// normalized name, or -1.
func IndexOfKey(records []domain.Country, name string) int {
	key := domain.NormalizeKey(name)
	for i := range records {
		if records[i].Key() == key {
			return i
		}
	}
	return -1
}

// FilterByContinent returns the records whose continent matches the given one
// after key normalization of both sides. Order is preserved.
func FilterByContinent(records []domain.Country, continent string) []domain.Country {
	key := domain.NormalizeKey(continent)
	result := make([]domain.Country, 0)
	for _, c := range records {
		if domain.NormalizeKey(c.Continent) == key {
			result = append(result, c)
		}
	}
	return result
}

// FilterByRange returns the records with min <= field value <= max.
// Bounds are used as given: when max < min nothing matches, callers that
// accept bounds in any order swap them first.
func FilterByRange(records []domain.Country, field domain.RangeField, min, max int64) []domain.Country {
	result := make([]domain.Country, 0)
	for _, c := range records {
		v := c.Field(field)
		if min <= v && v <= max {
			result = append(result, c)
		}
	}
	return result
}

// Pick returns the records at the given indices.
func Pick(records []domain.Country, indices []int) []domain.Country {
	result := make([]domain.Country, 0, len(indices))
	for _, i := range indices {
		result = append(result, records[i])
	}
	return result
}
