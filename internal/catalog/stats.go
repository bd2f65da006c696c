package catalog

import "github.com/marvenarg/countrycatalog/internal/domain"

// ContinentCount is the number of records sharing one continent label.
type ContinentCount struct {
	Continent string
	Count     int
}

// Stats holds aggregate figures over a non-empty catalog.
type Stats struct {
	Total         int
	MostPopulous  domain.Country
	LeastPopulous domain.Country
	AvgPopulation float64
	AvgArea       float64
	// ByContinent is ordered by first appearance in the collection.
	ByContinent []ContinentCount
}

// Summarize computes catalog statistics. It returns domain.ErrNoData for an
// empty collection instead of degenerate figures.
//
// Ties on population keep the first record encountered. Continent groups use
// the stored label verbatim: "Europe" and "europe" are counted separately,
// unlike FilterByContinent which compares normalized keys.
func Summarize(records []domain.Country) (Stats, error) {
	if len(records) == 0 {
		return Stats{}, domain.ErrNoData
	}

	st := Stats{
		Total:         len(records),
		MostPopulous:  records[0],
		LeastPopulous: records[0],
	}

	var sumPopulation, sumArea float64
	position := make(map[string]int)
	for _, c := range records {
		sumPopulation += float64(c.Population)
		sumArea += float64(c.Area)

		if c.Population > st.MostPopulous.Population {
			st.MostPopulous = c
		}
		if c.Population < st.LeastPopulous.Population {
			st.LeastPopulous = c
		}

		if i, ok := position[c.Continent]; ok {
			st.ByContinent[i].Count++
			continue
		}
		position[c.Continent] = len(st.ByContinent)
		st.ByContinent = append(st.ByContinent, ContinentCount{Continent: c.Continent, Count: 1})
	}

	n := float64(len(records))
	st.AvgPopulation = sumPopulation / n
	st.AvgArea = sumArea / n
	return st, nil
}
