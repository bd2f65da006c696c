package csvstore

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marvenarg/countrycatalog/internal/domain"
)

func testdataPath(t *testing.T, name string) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine test file path")
	}
	return filepath.Join(filepath.Dir(file), "testdata", name)
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "countries.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// --- Init ---

func TestInit_CreatesHeaderOnly(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "countries.csv")
	s := New(path)
	require.NoError(t, s.Init(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "name,population,area,continent\n", string(data))
}

func TestInit_Idempotent(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "name,population,area,continent\nChile,1,2,South America\n")
	s := New(path)
	require.NoError(t, s.Init(context.Background()))
	require.NoError(t, s.Init(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Chile,1,2,South America")
}

// --- Load ---

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	s := New(filepath.Join(t.TempDir(), "absent.csv"))
	res, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res.Countries)
	assert.Empty(t, res.Skipped)
}

func TestLoad_EmptyFile(t *testing.T) {
	t.Parallel()

	res, err := New(writeFile(t, "")).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res.Countries)
}

func TestLoad_HeaderOnly(t *testing.T) {
	t.Parallel()

	res, err := New(writeFile(t, "name,population,area,continent\n")).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res.Countries)
	assert.Empty(t, res.Skipped)
}

func TestLoad_MixedRows(t *testing.T) {
	t.Parallel()

	res, err := New(testdataPath(t, "mixed.csv")).Load(context.Background())
	require.NoError(t, err)

	want := []domain.Country{
		{Name: "Chile", Population: 19000000, Area: 756102, Continent: "South America"},
		// Duplicate-looking names are accepted at load time.
		{Name: "chile", Population: 1, Area: 1, Continent: "x"},
		{Name: "Costa Rica", Population: 5100000, Area: 51100, Continent: "North America"},
		{Name: "Zero", Population: 0, Area: 0, Continent: "Nowhere"},
	}
	if diff := cmp.Diff(want, res.Countries); diff != "" {
		t.Errorf("countries mismatch (-want +got):\n%s", diff)
	}

	// Peru (non-integer population), Atlantis (negative), blank name,
	// short row, blank continent.
	require.Len(t, res.Skipped, 5)
	assert.Equal(t, 4, res.Skipped[0].Line)
	assert.Contains(t, res.Skipped[0].Reason, "population")
	assert.Equal(t, "missing area", res.Skipped[3].Reason)
	assert.Equal(t, "empty continent", res.Skipped[4].Reason)
}

func TestLoad_NonIntegerPopulationDropsRow(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "name,population,area,continent\n\"Peru\",\"abc\",\"1285216\",\"South America\"\n")
	res, err := New(path).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res.Countries)
	assert.Len(t, res.Skipped, 1)
}

func TestLoad_RejectsNonDecimalLiterals(t *testing.T) {
	t.Parallel()

	content := strings.Join([]string{
		"name,population,area,continent",
		"Plus,+5,1,x",
		"Sep,1.000,1,x",
		"Float,1.5,1,x",
		"Hex,0x10,1,x",
		"Space,1 000,1,x",
		"Huge,99999999999999999999,1,x",
		"Ok,007,1,x",
	}, "\n")
	res, err := New(writeFile(t, content)).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Countries, 1)
	assert.Equal(t, int64(7), res.Countries[0].Population)
	assert.Len(t, res.Skipped, 6)
}

func TestLoad_UnterminatedQuoteDropsOnlyItsRow(t *testing.T) {
	t.Parallel()

	content := "name,population,area,continent\n" +
		"Chile,1,1,\"Sou\n" +
		"Peru,2,2,South America\n" +
		"Spain,3,3,Europe\n"
	res, err := New(writeFile(t, content)).Load(context.Background())
	require.NoError(t, err)

	want := []domain.Country{
		{Name: "Peru", Population: 2, Area: 2, Continent: "South America"},
		{Name: "Spain", Population: 3, Area: 3, Continent: "Europe"},
	}
	if diff := cmp.Diff(want, res.Countries); diff != "" {
		t.Errorf("countries mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, 2, res.Skipped[0].Line)
	assert.Contains(t, res.Skipped[0].Reason, "quote")
}

func TestLoad_BareQuoteDropsRow(t *testing.T) {
	t.Parallel()

	content := "name,population,area,continent\nCote d\"Ivoire,1,1,Africa\nGhana,2,2,Africa\n"
	res, err := New(writeFile(t, content)).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Countries, 1)
	assert.Equal(t, "Ghana", res.Countries[0].Name)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, 2, res.Skipped[0].Line)
}

func TestLoad_LineBreakInFieldDropsRow(t *testing.T) {
	t.Parallel()

	content := "name,population,area,continent\r\n" +
		"\"Chi\rle\",1,1,South America\r\n" +
		"Peru,2,2,\"South\rAmerica\"\r\n" +
		"Spain,3,3,Europe\r\n"
	res, err := New(writeFile(t, content)).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Countries, 1)
	assert.Equal(t, "Spain", res.Countries[0].Name)
	require.Len(t, res.Skipped, 2)
	assert.Equal(t, domain.SkippedRow{Line: 2, Reason: "line break in field"}, res.Skipped[0])
	assert.Equal(t, domain.SkippedRow{Line: 3, Reason: "line break in field"}, res.Skipped[1])
}

func TestLoad_BlankLinesCountTowardLineNumbers(t *testing.T) {
	t.Parallel()

	content := "name,population,area,continent\n\nChile,1,1,x\n\nPeru,abc,1,x"
	res, err := New(writeFile(t, content)).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Countries, 1)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, 5, res.Skipped[0].Line)
}

func TestLoad_LegacyHeader(t *testing.T) {
	t.Parallel()

	res, err := New(testdataPath(t, "legacy.csv")).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Countries, 1)
	assert.Equal(t, domain.Country{
		Name: "Argentina", Population: 45000000, Area: 2780400, Continent: "América del Sur",
	}, res.Countries[0])
}

func TestLoad_HeaderColumnsInAnyOrder(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "\ufeffContinent, Area ,name,population\nEurope,505990,Spain,47000000\n")
	res, err := New(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Countries, 1)
	assert.Equal(t, domain.Country{
		Name: "Spain", Population: 47000000, Area: 505990, Continent: "Europe",
	}, res.Countries[0])
}

func TestLoad_UnknownHeaderSkipsAllRows(t *testing.T) {
	t.Parallel()

	res, err := New(writeFile(t, "a,b,c,d\nChile,1,1,x\n")).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res.Countries)
	assert.Len(t, res.Skipped, 1)
}

func TestLoad_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(testdataPath(t, "mixed.csv")).Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

// --- Save ---

func TestSave_RoundTrip(t *testing.T) {
	t.Parallel()

	countries := []domain.Country{
		{Name: "Chile", Population: 19000000, Area: 756102, Continent: "South America"},
		{Name: "Côte d'Ivoire", Population: 27000000, Area: 322463, Continent: "Africa"},
		{Name: "Bonaire, Sint Eustatius and Saba", Population: 27000, Area: 328, Continent: "North America"},
		{Name: `The "Quoted" Land`, Population: 0, Area: 0, Continent: "Nowhere"},
		{Name: "chile", Population: 1, Area: 1, Continent: "x"},
	}

	s := New(filepath.Join(t.TempDir(), "countries.csv"))
	require.NoError(t, s.Save(context.Background(), countries))

	res, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res.Skipped)
	if diff := cmp.Diff(countries, res.Countries); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSave_OverwritesWholeFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "name,population,area,continent\nOld,1,1,x\nOlder,2,2,y\n")
	s := New(path)
	require.NoError(t, s.Save(context.Background(), []domain.Country{
		{Name: "New", Population: 3, Area: 3, Continent: "z"},
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "name,population,area,continent\nNew,3,3,z\n", string(data))
}

func TestSave_EmptyCollectionWritesHeader(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "countries.csv")
	require.NoError(t, New(path).Save(context.Background(), nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "name,population,area,continent\n", string(data))
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := New(filepath.Join(dir, "countries.csv"))
	require.NoError(t, s.Save(context.Background(), []domain.Country{{Name: "a", Population: 1, Area: 1, Continent: "b"}}))
	require.NoError(t, s.Save(context.Background(), []domain.Country{{Name: "c", Population: 1, Area: 1, Continent: "d"}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "countries.csv", entries[0].Name())
}

func TestSave_UnwritableDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	// A regular file used as a directory cannot hold the catalog.
	s := New(filepath.Join(blocker, "countries.csv"))
	err := s.Save(context.Background(), []domain.Country{{Name: "a", Population: 1, Area: 1, Continent: "b"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "csvstore: save")
}
