package catalog

import "github.com/marvenarg/countrycatalog/internal/domain"

func sampleCatalog() []domain.Country {
	return []domain.Country{
		{Name: "Chile", Population: 19000000, Area: 756102, Continent: "South America"},
		{Name: "Argentina", Population: 45000000, Area: 2780400, Continent: "South America"},
		{Name: "Nigeria", Population: 206000000, Area: 923768, Continent: "Africa"},
		{Name: "Niger", Population: 24000000, Area: 1267000, Continent: "Africa"},
		{Name: "Spain", Population: 47000000, Area: 505990, Continent: "Europe"},
	}
}

func names(records []domain.Country) []string {
	out := make([]string, len(records))
	for i, c := range records {
		out[i] = c.Name
	}
	return out
}
