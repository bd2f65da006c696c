package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/marvenarg/countrycatalog/internal/domain"
)

// SortInPlace orders records by field, ascending or descending. The sort is
// stable: records with equal keys keep their relative order in both
// directions.
//
// Names compare as stored, byte by byte, so case matters ("Zambia" sorts
// before "argentina").
func SortInPlace(records []domain.Country, field domain.SortField, ascending bool) {
	compare := comparator(field)
	if !ascending {
		base := compare
		compare = func(a, b domain.Country) int { return base(b, a) }
	}
	slices.SortStableFunc(records, compare)
}

func comparator(field domain.SortField) func(a, b domain.Country) int {
	switch field {
	case domain.SortFieldPopulation:
		return func(a, b domain.Country) int { return cmp.Compare(a.Population, b.Population) }
	case domain.SortFieldArea:
		return func(a, b domain.Country) int { return cmp.Compare(a.Area, b.Area) }
	default:
		return func(a, b domain.Country) int { return strings.Compare(a.Name, b.Name) }
	}
}
