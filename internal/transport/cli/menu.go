package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/marvenarg/countrycatalog/internal/catalog"
	"github.com/marvenarg/countrycatalog/internal/config"
	"github.com/marvenarg/countrycatalog/internal/domain"
	"github.com/marvenarg/countrycatalog/internal/service/country"
	"github.com/marvenarg/countrycatalog/pkg/ctxutil"
)

const menuTitle = "Menu - Country Catalog"

type countryService interface {
	Len() int
	List() []domain.Country
	At(index int) (domain.Country, error)
	Exists(name string) bool
	Add(ctx context.Context, input country.AddCountryInput) (domain.Country, error)
	UpdatePopulation(ctx context.Context, index int, population int64) (domain.Country, error)
	UpdateArea(ctx context.Context, index int, area int64) (domain.Country, error)
	Search(query string) []domain.Country
	Resolve(query string, chooser catalog.Chooser) (int, error)
	FilterByContinent(continent string) []domain.Country
	FilterByRange(field domain.RangeField, min, max int64) []domain.Country
	Sort(field domain.SortField, ascending bool) error
	Stats() (catalog.Stats, error)
}

// Menu runs the interactive session on top of the country service.
type Menu struct {
	svc    countryService
	prompt *Prompter
	view   *Renderer
	limits config.CatalogConfig
	log    *slog.Logger
}

// NewMenu creates a Menu reading answers from in and writing to out.
func NewMenu(
	log *slog.Logger,
	svc countryService,
	in io.Reader,
	out io.Writer,
	limits config.CatalogConfig,
	ui config.UIConfig,
) *Menu {
	return &Menu{
		svc:    svc,
		prompt: NewPrompter(in, out),
		view:   NewRenderer(out, ui.MenuWidth, ui.ClearScreen),
		limits: limits,
		log:    log.With("transport", "cli"),
	}
}

// Run shows the main menu until Exit is chosen or the input ends.
// Failed actions are reported and the menu is shown again; only input
// errors other than EOF are returned.
func (m *Menu) Run(ctx context.Context) error {
	labels := make([]string, 0, len(Commands))
	for _, c := range Commands {
		labels = append(labels, c.Label())
	}

	for {
		m.view.Clear()
		m.view.Menu(menuTitle, labels)

		n, err := m.prompt.Option(1, len(Commands))
		if err != nil {
			return endOfInput(err)
		}
		cmd, _ := ParseCommand(n)

		m.view.Clear()
		if cmd == CommandExit {
			m.view.Plain("Exiting...")
			return nil
		}

		cmdCtx := ctxutil.WithCommand(ctx, cmd.String())
		m.log.DebugContext(cmdCtx, "command selected",
			slog.String("session_id", ctxutil.SessionIDString(ctx)),
			slog.String("command", cmd.String()),
		)

		if err := m.Execute(cmdCtx, cmd); err != nil {
			return endOfInput(err)
		}
		if err := m.prompt.Pause(); err != nil {
			return endOfInput(err)
		}
	}
}

// Execute runs a single command. Domain failures are printed, not returned.
func (m *Menu) Execute(ctx context.Context, cmd Command) error {
	switch cmd {
	case CommandAdd:
		return m.add(ctx)
	case CommandUpdatePopulation:
		return m.update(ctx, domain.RangeFieldPopulation)
	case CommandUpdateArea:
		return m.update(ctx, domain.RangeFieldArea)
	case CommandSearch:
		return m.search()
	case CommandFilter:
		return m.filter()
	case CommandSort:
		return m.sort()
	case CommandStats:
		m.stats()
		return nil
	case CommandList:
		m.view.Heading(fmt.Sprintf("%d) %s", int(CommandList), CommandList.Label()))
		m.list(m.svc.List())
		return nil
	case CommandExit:
		return nil
	default:
		m.view.Error(fmt.Sprintf("Invalid option. Please enter a number between 1 and %d.", len(Commands)))
		return nil
	}
}

// Choose asks the user to pick one of several matching records.
func (m *Menu) Choose(candidates []domain.Country) (int, error) {
	m.view.Heading("Several countries match:")
	m.view.Candidates(candidates)
	n, err := m.prompt.Int("Select the country number: ", false)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (m *Menu) add(ctx context.Context) error {
	m.view.Heading("1) " + CommandAdd.Label())

	name, err := m.prompt.Text("Country name: ", m.limits.NameMaxLength)
	if err != nil {
		return err
	}
	if m.svc.Exists(name) {
		m.view.Error("A country with that name already exists. Duplicates are not allowed.")
		return nil
	}
	population, err := m.prompt.Int("Population (integer > 0): ", false)
	if err != nil {
		return err
	}
	area, err := m.prompt.Int("Area in km² (integer > 0): ", false)
	if err != nil {
		return err
	}
	continent, err := m.prompt.Text("Continent: ", m.limits.ContinentMaxLength)
	if err != nil {
		return err
	}

	_, err = m.svc.Add(ctx, country.AddCountryInput{
		Name:       name,
		Population: population,
		Area:       area,
		Continent:  continent,
	})
	if err != nil {
		m.reportError(ctx, err)
		return nil
	}
	m.view.Notice("Country added and saved.")
	return nil
}

func (m *Menu) update(ctx context.Context, field domain.RangeField) error {
	cmd, what := CommandUpdatePopulation, "Population"
	if field == domain.RangeFieldArea {
		cmd, what = CommandUpdateArea, "Area"
	}
	m.view.Heading(fmt.Sprintf("%d) %s", int(cmd), cmd.Label()))

	idx, ok, err := m.selectCountry()
	if err != nil || !ok {
		return err
	}
	selected, err := m.svc.At(idx)
	if err != nil {
		m.reportError(ctx, err)
		return nil
	}
	m.view.Plain("\nSelected country: " + selected.Name)

	value, err := m.prompt.Int(fmt.Sprintf("New %s (integer > 0): ", field), false)
	if err != nil {
		return err
	}

	if field == domain.RangeFieldArea {
		_, err = m.svc.UpdateArea(ctx, idx, value)
	} else {
		_, err = m.svc.UpdatePopulation(ctx, idx, value)
	}
	if err != nil {
		m.reportError(ctx, err)
		return nil
	}
	m.view.Notice(what + " updated and saved.")
	return nil
}

// selectCountry asks for a name and resolves it to an index. ok is false
// when the user was already told why nothing was selected.
func (m *Menu) selectCountry() (int, bool, error) {
	if m.svc.Len() == 0 {
		m.view.Notice("No countries loaded.")
		return -1, false, nil
	}
	query, err := m.prompt.Text("Enter the country name (or part of it): ", m.limits.NameMaxLength)
	if err != nil {
		return -1, false, err
	}

	idx, err := m.svc.Resolve(query, m)
	switch {
	case err == nil:
		return idx, true, nil
	case errors.Is(err, domain.ErrNotFound):
		m.view.Notice("No countries match the search.")
	case errors.Is(err, domain.ErrInvalidSelection):
		m.view.Error("Invalid selection.")
	default:
		return -1, false, err
	}
	return -1, false, nil
}

func (m *Menu) search() error {
	m.view.Heading("4) " + CommandSearch.Label())
	if m.svc.Len() == 0 {
		m.view.Notice("No countries loaded.")
		return nil
	}
	query, err := m.prompt.Text("Enter the country name (or part of it): ", m.limits.NameMaxLength)
	if err != nil {
		return err
	}
	found := m.svc.Search(query)
	if len(found) == 0 {
		m.view.Notice("No countries match the search.")
		return nil
	}
	m.view.Heading("Search results:")
	m.view.Countries(found)
	return nil
}

func (m *Menu) filter() error {
	m.view.Heading("5) " + CommandFilter.Label())
	if m.svc.Len() == 0 {
		m.view.Notice("No countries loaded.")
		return nil
	}
	m.view.Plain("1) By continent\n2) By population range\n3) By area range")
	op, err := m.prompt.Option(1, 3)
	if err != nil {
		return err
	}

	var result []domain.Country
	switch op {
	case 1:
		continent, err := m.prompt.Text("Continent: ", m.limits.ContinentMaxLength)
		if err != nil {
			return err
		}
		result = m.svc.FilterByContinent(continent)
	case 2, 3:
		field := domain.RangeFieldPopulation
		if op == 3 {
			field = domain.RangeFieldArea
		}
		m.view.Plain(fmt.Sprintf("\n%s range:", field))
		lo, err := m.prompt.Int("Minimum (>= 0): ", true)
		if err != nil {
			return err
		}
		hi, err := m.prompt.Int("Maximum (>= 0): ", true)
		if err != nil {
			return err
		}
		if hi < lo {
			lo, hi = hi, lo
		}
		result = m.svc.FilterByRange(field, lo, hi)
	default:
		m.view.Error("Invalid option.")
		return nil
	}

	if len(result) == 0 {
		m.view.Notice("\nNo countries match that criterion.")
		return nil
	}
	m.list(result)
	return nil
}

func (m *Menu) sort() error {
	m.view.Heading("6) " + CommandSort.Label())
	if m.svc.Len() == 0 {
		m.view.Notice("No countries loaded.")
		return nil
	}
	m.view.Plain("1) By name\n2) By population\n3) By area")
	op, err := m.prompt.Option(1, 3)
	if err != nil {
		return err
	}
	m.view.Plain("\nOrder:\n1) Ascending\n2) Descending")
	order, err := m.prompt.Option(1, 2)
	if err != nil {
		return err
	}

	var field domain.SortField
	switch op {
	case 1:
		field = domain.SortFieldName
	case 2:
		field = domain.SortFieldPopulation
	case 3:
		field = domain.SortFieldArea
	default:
		m.view.Error("Invalid option.")
		return nil
	}

	if err := m.svc.Sort(field, order == 1); err != nil {
		m.view.Error(err.Error())
		return nil
	}
	m.view.Heading("Sorted countries:")
	m.list(m.svc.List())
	return nil
}

func (m *Menu) stats() {
	st, err := m.svc.Stats()
	if errors.Is(err, domain.ErrNoData) {
		m.view.Notice("\nNo countries loaded, statistics are unavailable.")
		return
	}
	if err != nil {
		m.view.Error(err.Error())
		return
	}
	m.view.Stats(st)
}

func (m *Menu) list(countries []domain.Country) {
	if len(countries) == 0 {
		m.view.Notice("\nNo countries loaded.")
		return
	}
	m.view.Heading("Countries:")
	m.view.Countries(countries)
}

func (m *Menu) reportError(ctx context.Context, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		for _, fe := range verr.Errors {
			m.view.Error(fmt.Sprintf("%s: %s", fe.Field, fe.Message))
		}
	case errors.Is(err, domain.ErrAlreadyExists):
		m.view.Error("A country with that name already exists. Duplicates are not allowed.")
	case errors.Is(err, domain.ErrNotFound):
		m.view.Error("Country not found.")
	default:
		m.log.ErrorContext(ctx, "command failed",
			slog.String("session_id", ctxutil.SessionIDString(ctx)),
			slog.String("command", ctxutil.CommandFromCtx(ctx)),
			slog.String("error", err.Error()),
		)
		m.view.Error("Error: " + err.Error())
	}
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
