package catalog

import (
	"fmt"

	"github.com/marvenarg/countrycatalog/internal/domain"
)

// Outcome is the result state of a name lookup.
type Outcome int

const (
	NoMatch Outcome = iota
	Selected
	MultipleMatches
	InvalidSelection
)

func (o Outcome) String() string {
	switch o {
	case NoMatch:
		return "no_match"
	case Selected:
		return "selected"
	case MultipleMatches:
		return "multiple_matches"
	case InvalidSelection:
		return "invalid_selection"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Selection is the state of the disambiguation protocol.
// Index is meaningful only when Outcome is Selected.
type Selection struct {
	Outcome    Outcome
	Index      int
	Candidates []int
}

// Lookup runs the substring search and classifies the result: no match,
// a single automatically selected record, or several candidates that the
// caller must choose from.
func Lookup(records []domain.Country, query string) Selection {
	indices := FindIndicesByName(records, query)
	switch len(indices) {
	case 0:
		return Selection{Outcome: NoMatch, Index: -1}
	case 1:
		return Selection{Outcome: Selected, Index: indices[0], Candidates: indices}
	default:
		return Selection{Outcome: MultipleMatches, Index: -1, Candidates: indices}
	}
}

// Choose resolves a MultipleMatches selection with a 1-based choice.
// Out-of-range choices yield InvalidSelection; the candidate list is kept
// so the caller may ask again.
func (s Selection) Choose(n int) Selection {
	if n < 1 || n > len(s.Candidates) {
		return Selection{Outcome: InvalidSelection, Index: -1, Candidates: s.Candidates}
	}
	return Selection{Outcome: Selected, Index: s.Candidates[n-1], Candidates: s.Candidates}
}

// Chooser presents numbered candidates to a user and returns the 1-based
// number picked.
type Chooser interface {
	Choose(candidates []domain.Country) (int, error)
}

// SelectOne runs the full disambiguation protocol. With several matches the
// chooser is asked for a number up to attempts times (minimum 1); the last
// invalid answer is returned as InvalidSelection. Chooser errors are returned
// as-is.
func SelectOne(records []domain.Country, query string, chooser Chooser, attempts int) (Selection, error) {
	sel := Lookup(records, query)
	if sel.Outcome != MultipleMatches {
		return sel, nil
	}
	if attempts < 1 {
		attempts = 1
	}

	candidates := Pick(records, sel.Candidates)
	for i := 0; i < attempts; i++ {
		n, err := chooser.Choose(candidates)
		if err != nil {
			return sel, err
		}
		chosen := sel.Choose(n)
		if chosen.Outcome == Selected {
			return chosen, nil
		}
		sel = chosen
	}
	return sel, nil
}
