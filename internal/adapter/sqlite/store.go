// Package sqlite persists the country catalog as a full snapshot in a single
// SQLite table. Every save replaces the table contents in one transaction.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/marvenarg/countrycatalog/internal/domain"
)

const table = "countries"

const createTableSQL = `CREATE TABLE IF NOT EXISTS countries (
	position   INTEGER PRIMARY KEY,
	name       TEXT    NOT NULL,
	population INTEGER NOT NULL,
	area       INTEGER NOT NULL,
	continent  TEXT    NOT NULL
)`

var columns = []string{"position", "name", "population", "area", "continent"}

// insertBatchSize keeps each INSERT well under SQLite's bound-variable limit
// (32766 by default, five per row).
const insertBatchSize = 500

// Store keeps the catalog in an SQLite database file.
type Store struct {
	db   *sql.DB
	path string
	qb   sq.StatementBuilderType
}

// Open opens (or creates) the database file at path.
func Open(path string) (*Store, error) {
	if path == "" {
		path = "countries.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("sqlite: create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", path, err)
	}
	// A single session owns the catalog.
	db.SetMaxOpenConns(1)
	return &Store{
		db:   db,
		path: path,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// Path returns the configured database path.
func (s *Store) Path() string { return s.path }

// Init creates the countries table when it is missing.
func (s *Store) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("sqlite: create table: %w", err)
	}
	return nil
}

// Load reads every row ordered by position. Rows that violate record
// invariants (blank text, negative numbers) are skipped and reported.
func (s *Store) Load(ctx context.Context) (domain.LoadResult, error) {
	query, args, err := s.qb.Select(columns...).From(table).OrderBy("position ASC").ToSql()
	if err != nil {
		return domain.LoadResult{}, fmt.Errorf("sqlite: build select: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return domain.LoadResult{}, fmt.Errorf("sqlite: select countries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	res := domain.LoadResult{Countries: []domain.Country{}}
	for rows.Next() {
		var (
			position         int
			name, continent  string
			population, area int64
		)
		if err := rows.Scan(&position, &name, &population, &area, &continent); err != nil {
			return domain.LoadResult{}, fmt.Errorf("sqlite: scan: %w", err)
		}
		c, reason := domain.FromStorage(name, population, area, continent)
		if reason != "" {
			res.Skipped = append(res.Skipped, domain.SkippedRow{Line: position, Reason: reason})
			continue
		}
		res.Countries = append(res.Countries, c)
	}
	if err := rows.Err(); err != nil {
		return domain.LoadResult{}, fmt.Errorf("sqlite: iterate: %w", err)
	}
	return res, nil
}

// Save replaces the table contents with countries, in order.
func (s *Store) Save(ctx context.Context, countries []domain.Country) (retErr error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	del, args, err := s.qb.Delete(table).ToSql()
	if err != nil {
		return fmt.Errorf("sqlite: build delete: %w", err)
	}
	if _, err := tx.ExecContext(ctx, del, args...); err != nil {
		return fmt.Errorf("sqlite: clear countries: %w", err)
	}

	for start := 0; start < len(countries); start += insertBatchSize {
		end := min(start+insertBatchSize, len(countries))
		insert := s.qb.Insert(table).Columns(columns...)
		for i := start; i < end; i++ {
			c := countries[i]
			insert = insert.Values(i+1, c.Name, c.Population, c.Area, c.Continent)
		}
		query, args, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("sqlite: build insert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("sqlite: insert countries %d-%d: %w", start+1, end, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit: %w", err)
	}
	return nil
}
