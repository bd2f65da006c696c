package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/marvenarg/countrycatalog/internal/catalog"
	"github.com/marvenarg/countrycatalog/internal/domain"
)

const clearSequence = "\033[H\033[2J"

// Styles groups the lipgloss styles used by the console output.
type Styles struct {
	Box     lipgloss.Style
	Title   lipgloss.Style
	Heading lipgloss.Style
	Notice  lipgloss.Style
	Error   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Box: r.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#2196F3")).
			Padding(1, 2),
		Title:   r.NewStyle().Bold(true).Align(lipgloss.Center),
		Heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A")),
		Notice:  r.NewStyle().Foreground(lipgloss.Color("#FFC107")),
		Error:   r.NewStyle().Foreground(lipgloss.Color("#e53935")),
	}
}

// Renderer writes catalog data to the console. Colors are only emitted when
// the output supports them.
type Renderer struct {
	out         io.Writer
	width       int
	clearScreen bool
	styles      Styles
}

// NewRenderer creates a Renderer. width is the total menu box width;
// clearScreen enables ANSI screen clearing on terminals.
func NewRenderer(out io.Writer, width int, clearScreen bool) *Renderer {
	return &Renderer{
		out:         out,
		width:       width,
		clearScreen: clearScreen,
		styles:      newStyles(lipgloss.NewRenderer(out)),
	}
}

// Clear clears the screen when enabled and the output is a terminal.
func (r *Renderer) Clear() {
	if !r.clearScreen || !isTerminal(r.out) {
		return
	}
	fmt.Fprint(r.out, clearSequence)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Menu draws the boxed main menu.
func (r *Renderer) Menu(title string, options []string) {
	inner := r.width - 6
	lines := []string{r.styles.Title.Width(inner).Render(title), ""}
	for i, opt := range options {
		lines = append(lines, "", fmt.Sprintf("%d. %s", i+1, opt))
	}
	fmt.Fprintln(r.out, r.styles.Box.Width(r.width-2).Render(strings.Join(lines, "\n")))
}

// Heading prints a section title preceded by a blank line.
func (r *Renderer) Heading(text string) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.styles.Heading.Render(text))
}

// Notice prints an informational message.
func (r *Renderer) Notice(text string) {
	fmt.Fprintln(r.out, r.styles.Notice.Render(text))
}

// Error prints an error message.
func (r *Renderer) Error(text string) {
	fmt.Fprintln(r.out, r.styles.Error.Render(text))
}

// Plain prints text as is.
func (r *Renderer) Plain(text string) {
	fmt.Fprintln(r.out, text)
}

// Countries prints one bulleted line per record.
func (r *Renderer) Countries(countries []domain.Country) {
	for _, c := range countries {
		fmt.Fprintln(r.out, "- "+CountryLine(c))
	}
}

// Candidates prints records numbered from 1.
func (r *Renderer) Candidates(countries []domain.Country) {
	for i, c := range countries {
		fmt.Fprintf(r.out, "%d. %s\n", i+1, CountryLine(c))
	}
}

// Stats prints the aggregate figures of the catalog.
func (r *Renderer) Stats(st catalog.Stats) {
	r.Heading("--- Statistics ---")
	fmt.Fprintf(r.out, "Countries: %s\n", humanize.Comma(int64(st.Total)))
	fmt.Fprintf(r.out, "Most populous: %s (%s)\n", st.MostPopulous.Name, humanize.Comma(st.MostPopulous.Population))
	fmt.Fprintf(r.out, "Least populous: %s (%s)\n", st.LeastPopulous.Name, humanize.Comma(st.LeastPopulous.Population))
	fmt.Fprintf(r.out, "Average population: %s\n", formatAverage(st.AvgPopulation))
	fmt.Fprintf(r.out, "Average area: %s km²\n", formatAverage(st.AvgArea))
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "Countries per continent:")
	for _, cc := range st.ByContinent {
		fmt.Fprintf(r.out, " - %s: %d\n", cc.Continent, cc.Count)
	}
}

// CountryLine formats a record on a single line.
func CountryLine(c domain.Country) string {
	return fmt.Sprintf("%s | Population: %s | Area: %s km² | Continent: %s",
		c.Name, humanize.Comma(c.Population), humanize.Comma(c.Area), c.Continent)
}

func formatAverage(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}
