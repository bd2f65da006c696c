package domain

// SortField selects the key used to order the catalog.
type SortField string

const (
	SortFieldName       SortField = "name"
	SortFieldPopulation SortField = "population"
	SortFieldArea       SortField = "area"
)

func (f SortField) String() string { return string(f) }

func (f SortField) IsValid() bool {
	switch f {
	case SortFieldName, SortFieldPopulation, SortFieldArea:
		return true
	}
	return false
}

// RangeField selects the numeric field used by range filters.
type RangeField string

const (
	RangeFieldPopulation RangeField = "population"
	RangeFieldArea       RangeField = "area"
)

func (f RangeField) String() string { return string(f) }

func (f RangeField) IsValid() bool {
	switch f {
	case RangeFieldPopulation, RangeFieldArea:
		return true
	}
	return false
}
