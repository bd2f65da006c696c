package domain

// Country is a single catalog record.
type Country struct {
	Name       string
	Population int64
	Area       int64 // km²
	Continent  string
}

// Key returns the normalized comparison key of the country name.
// It is the de-facto unique identifier inside a catalog.
func (c Country) Key() string {
	return NormalizeKey(c.Name)
}

// Field returns the numeric value of the given range field.
func (c Country) Field(f RangeField) int64 {
	if f == RangeFieldArea {
		return c.Area
	}
	return c.Population
}

// SkippedRow describes a stored row that was dropped while loading.
type SkippedRow struct {
	Line   int
	Reason string
}

// LoadResult is the outcome of reading a whole catalog from storage.
// Malformed rows never fail a load; they are reported in Skipped.
type LoadResult struct {
	Countries []Country
	Skipped   []SkippedRow
}

// FromStorage builds a Country from values read back from storage,
// normalizing the text fields. Zero population and area are accepted here,
// unlike on creation. A non-empty reason means the values must be dropped.
func FromStorage(name string, population, area int64, continent string) (Country, string) {
	c := Country{
		Name:       Normalize(name),
		Population: population,
		Area:       area,
		Continent:  Normalize(continent),
	}
	switch {
	case c.Name == "":
		return Country{}, "empty name"
	case c.Continent == "":
		return Country{}, "empty continent"
	case c.Population < 0:
		return Country{}, "negative population"
	case c.Area < 0:
		return Country{}, "negative area"
	}
	return c, ""
}
