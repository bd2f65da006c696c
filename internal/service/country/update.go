package country

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/marvenarg/countrycatalog/internal/domain"
)

// UpdatePopulation sets the population of the record at index and persists
// the collection. The previous value is restored if the save fails.
func (s *Service) UpdatePopulation(ctx context.Context, index int, population int64) (domain.Country, error) {
	return s.update(ctx, index, domain.RangeFieldPopulation, population)
}

// UpdateArea sets the area of the record at index and persists the
// collection. The previous value is restored if the save fails.
func (s *Service) UpdateArea(ctx context.Context, index int, area int64) (domain.Country, error) {
	return s.update(ctx, index, domain.RangeFieldArea, area)
}

func (s *Service) update(ctx context.Context, index int, field domain.RangeField, value int64) (domain.Country, error) {
	if value < 1 {
		return domain.Country{}, domain.NewValidationError(field.String(), "must be at least 1")
	}
	if index < 0 || index >= len(s.countries) {
		return domain.Country{}, fmt.Errorf("country #%d: %w", index, domain.ErrNotFound)
	}

	before := s.countries[index]
	switch field {
	case domain.RangeFieldArea:
		s.countries[index].Area = value
	default:
		s.countries[index].Population = value
	}

	if err := s.repo.Save(ctx, s.countries); err != nil {
		s.countries[index] = before
		return domain.Country{}, fmt.Errorf("save countries: %w", err)
	}

	s.log.InfoContext(ctx, "country updated",
		sessionAttr(ctx),
		slog.String("name", before.Name),
		slog.String("field", field.String()),
		slog.Int64("old", before.Field(field)),
		slog.Int64("new", value),
	)

	return s.countries[index], nil
}
