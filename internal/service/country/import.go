package country

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/marvenarg/countrycatalog/internal/domain"
)

// ImportResult contains the result of an import operation.
type ImportResult struct {
	Imported int
	Skipped  int
	Errors   []ImportError
}

// ImportError describes a single rejected item.
type ImportError struct {
	LineNumber int
	Name       string
	Reason     string
}

// Import adds every valid item whose name is not already in the catalog,
// then saves once. Items are checked like Add; rejected items are reported
// by 1-based position. With dryRun nothing is changed. If the save fails no
// item is kept.
func (s *Service) Import(ctx context.Context, items []domain.Country, dryRun bool) (ImportResult, error) {
	result := ImportResult{}
	seen := make(map[string]bool, len(s.countries)+len(items))
	for _, c := range s.countries {
		seen[c.Key()] = true
	}

	accepted := make([]domain.Country, 0, len(items))
	for i, item := range items {
		input := AddCountryInput{
			Name:       item.Name,
			Population: item.Population,
			Area:       item.Area,
			Continent:  item.Continent,
		}
		reject := func(reason string) {
			result.Skipped++
			result.Errors = append(result.Errors, ImportError{LineNumber: i + 1, Name: item.Name, Reason: reason})
		}

		if err := input.Validate(s.cfg.NameMaxLength, s.cfg.ContinentMaxLength); err != nil {
			var verr *domain.ValidationError
			if errors.As(err, &verr) && len(verr.Errors) > 0 {
				fe := verr.Errors[0]
				reject(fmt.Sprintf("%s: %s", fe.Field, fe.Message))
			} else {
				reject(err.Error())
			}
			continue
		}

		c := domain.Country{
			Name:       domain.Normalize(item.Name),
			Population: item.Population,
			Area:       item.Area,
			Continent:  domain.Normalize(item.Continent),
		}
		if seen[c.Key()] {
			reject("already exists")
			continue
		}
		seen[c.Key()] = true
		accepted = append(accepted, c)
	}
	result.Imported = len(accepted)

	if dryRun || len(accepted) == 0 {
		return result, nil
	}

	prev := s.countries
	s.countries = append(s.countries[:len(s.countries):len(s.countries)], accepted...)
	if err := s.repo.Save(ctx, s.countries); err != nil {
		s.countries = prev
		return ImportResult{}, fmt.Errorf("save countries: %w", err)
	}

	s.log.InfoContext(ctx, "countries imported",
		sessionAttr(ctx),
		slog.Int("imported", result.Imported),
		slog.Int("skipped", result.Skipped),
	)

	return result, nil
}
