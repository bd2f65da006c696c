package csvstore

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/marvenarg/countrycatalog/internal/domain"
)

// columnAliases maps accepted header names to the canonical column.
// The Spanish names are the layout of files written by earlier versions.
var columnAliases = map[string]string{
	"name":       "name",
	"population": "population",
	"area":       "area",
	"continent":  "continent",
	"nombre":     "name",
	"poblacion":  "population",
	"población":  "population",
	"superficie": "area",
	"continente": "continent",
}

type columns struct {
	name, population, area, continent int
}

// Decode parses a catalog from r. Rows failing validation are reported in
// Skipped and never abort decoding. The returned error is non-nil only when
// the underlying reader fails.
//
// Every physical line is one record. A quoting error is confined to its own
// line, so an unterminated quote cannot swallow the rows after it.
func Decode(r io.Reader) (domain.LoadResult, error) {
	res := domain.LoadResult{Countries: []domain.Country{}}

	var (
		br        = bufio.NewReader(r)
		cols      columns
		hasHeader bool
		lineNo    int
	)
	for {
		raw, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return domain.LoadResult{}, fmt.Errorf("read line %d: %w", lineNo+1, readErr)
		}
		if raw == "" && readErr != nil {
			break
		}
		lineNo++

		line := strings.TrimRight(raw, "\r\n")
		if line != "" {
			record, err := splitLine(line)
			switch {
			case !hasHeader:
				hasHeader = true
				// Unreadable header: no column can be located, every row is skipped.
				cols = mapColumns(record)
			case err != nil:
				res.Skipped = append(res.Skipped, domain.SkippedRow{Line: lineNo, Reason: err.Error()})
			default:
				country, reason := parseRow(record, cols)
				if reason != "" {
					res.Skipped = append(res.Skipped, domain.SkippedRow{Line: lineNo, Reason: reason})
				} else {
					res.Countries = append(res.Countries, country)
				}
			}
		}

		if readErr != nil {
			break
		}
	}

	return res, nil
}

// splitLine parses a single CSV line into its fields.
func splitLine(line string) ([]string, error) {
	reader := csv.NewReader(strings.NewReader(line))
	reader.FieldsPerRecord = -1 // allow variable column count

	record, err := reader.Read()
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, parseErr.Err
		}
		return nil, err
	}
	return record, nil
}

func mapColumns(header []string) columns {
	cols := columns{name: -1, population: -1, area: -1, continent: -1}
	for i, h := range header {
		key := domain.NormalizeKey(strings.TrimPrefix(h, "\ufeff"))
		switch columnAliases[key] {
		case "name":
			if cols.name < 0 {
				cols.name = i
			}
		case "population":
			if cols.population < 0 {
				cols.population = i
			}
		case "area":
			if cols.area < 0 {
				cols.area = i
			}
		case "continent":
			if cols.continent < 0 {
				cols.continent = i
			}
		}
	}
	return cols
}

// parseRow validates one data row. It returns a non-empty reason when the row
// must be dropped.
func parseRow(record []string, cols columns) (domain.Country, string) {
	name, ok := field(record, cols.name)
	if !ok {
		return domain.Country{}, "missing name"
	}
	populationRaw, ok := field(record, cols.population)
	if !ok {
		return domain.Country{}, "missing population"
	}
	areaRaw, ok := field(record, cols.area)
	if !ok {
		return domain.Country{}, "missing area"
	}
	continent, ok := field(record, cols.continent)
	if !ok {
		return domain.Country{}, "missing continent"
	}
	if hasLineBreak(name) || hasLineBreak(continent) {
		return domain.Country{}, "line break in field"
	}
	population, ok := parseCount(populationRaw)
	if !ok {
		return domain.Country{}, fmt.Sprintf("population %q is not a non-negative integer", populationRaw)
	}
	area, ok := parseCount(areaRaw)
	if !ok {
		return domain.Country{}, fmt.Sprintf("area %q is not a non-negative integer", areaRaw)
	}
	return domain.FromStorage(name, population, area, continent)
}

func hasLineBreak(s string) bool {
	return strings.ContainsAny(s, "\r\n")
}

func field(record []string, idx int) (string, bool) {
	if idx < 0 || idx >= len(record) {
		return "", false
	}
	return record[idx], true
}

// parseCount parses a non-negative decimal literal made of ASCII digits only.
// Signs, separators, and blanks inside the number are rejected.
func parseCount(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
