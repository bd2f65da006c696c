// Package csvstore persists the country catalog as a comma-separated text file
// with a single header row. Every save rewrites the whole file.
package csvstore

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/marvenarg/countrycatalog/internal/domain"
)

// Header is the column layout written by Save and Init.
var Header = []string{"name", "population", "area", "continent"}

// Store reads and writes one catalog file. The path is fixed at construction.
type Store struct {
	path string
}

// New creates a Store bound to path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the configured file path.
func (s *Store) Path() string { return s.path }

// Init creates the file with only the header row when it does not exist yet.
// An existing file is left untouched.
func (s *Store) Init(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("csvstore: stat %s: %w", s.path, err)
	}
	if err := s.writeAtomic(nil); err != nil {
		return fmt.Errorf("csvstore: init %s: %w", s.path, err)
	}
	return nil
}

// Load reads the whole catalog. A missing or empty file yields an empty
// result. Malformed rows are skipped and listed in LoadResult.Skipped;
// only I/O failures are returned as errors.
func (s *Store) Load(ctx context.Context) (domain.LoadResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.LoadResult{}, err
	}
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.LoadResult{Countries: []domain.Country{}}, nil
	}
	if err != nil {
		return domain.LoadResult{}, fmt.Errorf("csvstore: open %s: %w", s.path, err)
	}
	defer f.Close()

	res, err := Decode(f)
	if err != nil {
		return domain.LoadResult{}, fmt.Errorf("csvstore: read %s: %w", s.path, err)
	}
	return res, nil
}

// Save overwrites the file with the header and one row per record.
// The data is written to a temporary file in the same directory and renamed
// over the target, so a failed save leaves the previous file intact.
func (s *Store) Save(ctx context.Context, countries []domain.Country) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.writeAtomic(countries); err != nil {
		return fmt.Errorf("csvstore: save %s: %w", s.path, err)
	}
	return nil
}

func (s *Store) writeAtomic(countries []domain.Country) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".tmp-*.csv")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := Encode(tmp, countries); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// Encode writes the header followed by one row per country.
func Encode(w io.Writer, countries []domain.Country) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, c := range countries {
		row := []string{
			c.Name,
			strconv.FormatInt(c.Population, 10),
			strconv.FormatInt(c.Area, 10),
			c.Continent,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %q: %w", c.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
