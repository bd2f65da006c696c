package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/marvenarg/countrycatalog/internal/adapter/csvstore"
	"github.com/marvenarg/countrycatalog/internal/adapter/sqlite"
	"github.com/marvenarg/countrycatalog/internal/config"
	"github.com/marvenarg/countrycatalog/internal/domain"
	"github.com/marvenarg/countrycatalog/internal/service/country"
	"github.com/marvenarg/countrycatalog/internal/transport/cli"
	"github.com/marvenarg/countrycatalog/pkg/ctxutil"
)

// Options carries command-line overrides of the loaded configuration.
type Options struct {
	ConfigPath string
	DataPath   string
}

// App holds the wired components of one catalog session.
type App struct {
	Config    *config.Config
	Log       *slog.Logger
	Countries *country.Service
	closers   []func() error
}

type countryStore interface {
	Init(ctx context.Context) error
	Load(ctx context.Context) (domain.LoadResult, error)
	Save(ctx context.Context, countries []domain.Country) error
}

// New loads configuration, initializes the logger and builds the store
// selected by storage.driver. Call Close when done.
func New(opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.DataPath != "" {
		cfg.Storage.Path = opts.DataPath
	}

	logger, closeLog, err := NewLogger(cfg.Log)
	if err != nil {
		return nil, err
	}

	store, closeStore, err := newStore(cfg.Storage)
	if err != nil {
		_ = closeLog()
		return nil, err
	}

	return &App{
		Config:    cfg,
		Log:       logger,
		Countries: country.NewService(logger, store, cfg.Catalog),
		closers:   []func() error{closeStore, closeLog},
	}, nil
}

func newStore(cfg config.StorageConfig) (countryStore, func() error, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		s, err := sqlite.Open(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case config.DriverCSV:
		return csvstore.New(cfg.Path), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// Open starts a session: it stores a fresh session id in the returned
// context and loads the catalog.
func (a *App) Open(ctx context.Context) (context.Context, domain.LoadResult, error) {
	ctx, sessionID := ctxutil.NewSession(ctx)

	a.Log.InfoContext(ctx, "starting catalog",
		slog.String("version", BuildVersion()),
		slog.String("session_id", sessionID.String()),
		slog.String("driver", a.Config.Storage.Driver),
		slog.String("path", a.Config.Storage.Path),
	)

	res, err := a.Countries.Open(ctx)
	if err != nil {
		return ctx, domain.LoadResult{}, err
	}
	return ctx, res, nil
}

// Close releases the store and the log file.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Run is the interactive entry point: it opens the catalog and runs the
// menu until the user exits or the input ends.
func Run(ctx context.Context, opts Options, in io.Reader, out io.Writer) error {
	a, err := New(opts)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	ctx, res, err := a.Open(ctx)
	if err != nil {
		return err
	}

	view := cli.NewRenderer(out, a.Config.UI.MenuWidth, false)
	if n := len(res.Skipped); n > 0 {
		view.Notice(fmt.Sprintf("Warning: %d malformed rows were skipped while loading %s.", n, a.Config.Storage.Path))
	}

	menu := cli.NewMenu(a.Log, a.Countries, in, out, a.Config.Catalog, a.Config.UI)
	return menu.Run(ctx)
}
