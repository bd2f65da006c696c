package country

import (
	"context"
	"log/slog"
	"slices"

	"github.com/marvenarg/countrycatalog/internal/catalog"
	"github.com/marvenarg/countrycatalog/internal/config"
	"github.com/marvenarg/countrycatalog/internal/domain"
	"github.com/marvenarg/countrycatalog/pkg/ctxutil"
)

type countryRepo interface {
	Init(ctx context.Context) error
	Load(ctx context.Context) (domain.LoadResult, error)
	Save(ctx context.Context, countries []domain.Country) error
}

// Service owns the in-memory collection and keeps it synchronized with the
// store after every mutation.
type Service struct {
	repo      countryRepo
	log       *slog.Logger
	cfg       config.CatalogConfig
	countries []domain.Country
}

// NewService creates a new Country service.
func NewService(
	log *slog.Logger,
	repo countryRepo,
	cfg config.CatalogConfig,
) *Service {
	return &Service{
		repo:      repo,
		log:       log.With("service", "country"),
		cfg:       cfg,
		countries: []domain.Country{},
	}
}

// List returns a copy of the collection in its current order.
func (s *Service) List() []domain.Country {
	return slices.Clone(s.countries)
}

// Len returns the number of records.
func (s *Service) Len() int {
	return len(s.countries)
}

// Exists reports whether a record with the same normalized name exists.
func (s *Service) Exists(name string) bool {
	return catalog.IndexOfKey(s.countries, name) >= 0
}

// At returns the record at index.
func (s *Service) At(index int) (domain.Country, error) {
	if index < 0 || index >= len(s.countries) {
		return domain.Country{}, domain.ErrNotFound
	}
	return s.countries[index], nil
}

func sessionAttr(ctx context.Context) slog.Attr {
	return slog.Group("session",
		slog.String("id", ctxutil.SessionIDString(ctx)),
		slog.String("command", ctxutil.CommandFromCtx(ctx)),
	)
}
