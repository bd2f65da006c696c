package country

import (
	"fmt"

	"github.com/marvenarg/countrycatalog/internal/catalog"
	"github.com/marvenarg/countrycatalog/internal/domain"
)

// Search returns the records whose normalized name contains the query.
func (s *Service) Search(query string) []domain.Country {
	return catalog.Pick(s.countries, catalog.FindIndicesByName(s.countries, query))
}

// Lookup classifies a name query without asking the user anything.
func (s *Service) Lookup(query string) catalog.Selection {
	return catalog.Lookup(s.countries, query)
}

// Select runs the disambiguation protocol, asking chooser when several
// records match. The number of tolerated invalid answers comes from the
// catalog configuration.
func (s *Service) Select(query string, chooser catalog.Chooser) (catalog.Selection, error) {
	return catalog.SelectOne(s.countries, query, chooser, s.cfg.SelectionAttempts)
}

// FilterByContinent returns the records on the given continent.
func (s *Service) FilterByContinent(continent string) []domain.Country {
	return catalog.FilterByContinent(s.countries, continent)
}

// FilterByRange returns the records whose field lies in [min, max].
func (s *Service) FilterByRange(field domain.RangeField, min, max int64) []domain.Country {
	return catalog.FilterByRange(s.countries, field, min, max)
}

// Sort reorders the collection in place. The new order is not persisted;
// it is written on the next successful mutation.
func (s *Service) Sort(field domain.SortField, ascending bool) error {
	if !field.IsValid() {
		return domain.NewValidationError("field", "must be name, population or area")
	}
	catalog.SortInPlace(s.countries, field, ascending)
	return nil
}

// Stats summarizes the collection. It returns domain.ErrNoData when empty.
func (s *Service) Stats() (catalog.Stats, error) {
	return catalog.Summarize(s.countries)
}

// Resolve runs Select and maps its outcome to an index. No match yields
// domain.ErrNotFound and a rejected choice domain.ErrInvalidSelection.
func (s *Service) Resolve(query string, chooser catalog.Chooser) (int, error) {
	sel, err := s.Select(query, chooser)
	if err != nil {
		return -1, err
	}
	switch sel.Outcome {
	case catalog.Selected:
		return sel.Index, nil
	case catalog.NoMatch:
		return -1, fmt.Errorf("country %q: %w", query, domain.ErrNotFound)
	default:
		return -1, domain.ErrInvalidSelection
	}
}
