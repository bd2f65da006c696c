package country

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/marvenarg/countrycatalog/internal/catalog"
	"github.com/marvenarg/countrycatalog/internal/domain"
)

// Add validates and appends a new country, then persists the collection.
// A name equal to an existing one after normalization is rejected with
// domain.ErrAlreadyExists. If the save fails the append is undone.
func (s *Service) Add(ctx context.Context, input AddCountryInput) (domain.Country, error) {
	if err := input.Validate(s.cfg.NameMaxLength, s.cfg.ContinentMaxLength); err != nil {
		return domain.Country{}, err
	}

	c := domain.Country{
		Name:       domain.Normalize(input.Name),
		Population: input.Population,
		Area:       input.Area,
		Continent:  domain.Normalize(input.Continent),
	}

	if i := catalog.IndexOfKey(s.countries, c.Name); i >= 0 {
		return domain.Country{}, fmt.Errorf("%w: %q", domain.ErrAlreadyExists, s.countries[i].Name)
	}

	prev := s.countries
	s.countries = append(s.countries[:len(s.countries):len(s.countries)], c)
	if err := s.repo.Save(ctx, s.countries); err != nil {
		s.countries = prev
		return domain.Country{}, fmt.Errorf("save countries: %w", err)
	}

	s.log.InfoContext(ctx, "country added",
		sessionAttr(ctx),
		slog.String("name", c.Name),
		slog.String("continent", c.Continent),
	)

	return c, nil
}
