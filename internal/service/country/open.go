package country

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/marvenarg/countrycatalog/internal/domain"
)

// Open prepares the store and replaces the collection with its contents.
// Skipped rows are logged and returned to the caller for display.
func (s *Service) Open(ctx context.Context) (domain.LoadResult, error) {
	if err := s.repo.Init(ctx); err != nil {
		return domain.LoadResult{}, fmt.Errorf("init store: %w", err)
	}

	res, err := s.repo.Load(ctx)
	if err != nil {
		return domain.LoadResult{}, fmt.Errorf("load countries: %w", err)
	}

	for _, row := range res.Skipped {
		s.log.WarnContext(ctx, "row skipped",
			sessionAttr(ctx),
			slog.Int("line", row.Line),
			slog.String("reason", row.Reason),
		)
	}

	if res.Countries == nil {
		res.Countries = []domain.Country{}
	}
	s.countries = res.Countries

	s.log.InfoContext(ctx, "catalog loaded",
		sessionAttr(ctx),
		slog.Int("count", len(res.Countries)),
		slog.Int("skipped", len(res.Skipped)),
	)

	return domain.LoadResult{Countries: s.List(), Skipped: res.Skipped}, nil
}
