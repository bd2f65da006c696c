package country

import (
	"fmt"
	"unicode/utf8"

	"github.com/marvenarg/countrycatalog/internal/domain"
)

// AddCountryInput holds the parameters for adding a country.
type AddCountryInput struct {
	Name       string
	Population int64
	Area       int64
	Continent  string
}

// Validate checks all fields and collects all errors. Text lengths are
// measured in characters after normalization.
func (i AddCountryInput) Validate(nameMax, continentMax int) error {
	var errs []domain.FieldError

	name := domain.Normalize(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > nameMax {
		errs = append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("max %d characters", nameMax)})
	}

	if i.Population < 1 {
		errs = append(errs, domain.FieldError{Field: "population", Message: "must be at least 1"})
	}
	if i.Area < 1 {
		errs = append(errs, domain.FieldError{Field: "area", Message: "must be at least 1"})
	}

	continent := domain.Normalize(i.Continent)
	if continent == "" {
		errs = append(errs, domain.FieldError{Field: "continent", Message: "required"})
	}
	if utf8.RuneCountInString(continent) > continentMax {
		errs = append(errs, domain.FieldError{Field: "continent", Message: fmt.Sprintf("max %d characters", continentMax)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
