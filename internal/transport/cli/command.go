package cli

import "fmt"

// Command is a main menu entry.
type Command int

const (
	CommandInvalid Command = iota
	CommandAdd
	CommandUpdatePopulation
	CommandUpdateArea
	CommandSearch
	CommandFilter
	CommandSort
	CommandStats
	CommandList
	CommandExit
)

// Commands lists the menu entries in display order. Entry i is shown as
// number i+1.
var Commands = []Command{
	CommandAdd,
	CommandUpdatePopulation,
	CommandUpdateArea,
	CommandSearch,
	CommandFilter,
	CommandSort,
	CommandStats,
	CommandList,
	CommandExit,
}

// ParseCommand maps a menu number to its command. Unknown numbers yield
// CommandInvalid and false.
func ParseCommand(n int) (Command, bool) {
	if n < 1 || n > len(Commands) {
		return CommandInvalid, false
	}
	return Commands[n-1], true
}

// Label is the text shown in the main menu.
func (c Command) Label() string {
	switch c {
	case CommandAdd:
		return "Add country"
	case CommandUpdatePopulation:
		return "Update a country's population"
	case CommandUpdateArea:
		return "Update a country's area"
	case CommandSearch:
		return "Search country by name"
	case CommandFilter:
		return "Filter countries (continent / population / area)"
	case CommandSort:
		return "Sort countries (name / population / area)"
	case CommandStats:
		return "Show statistics"
	case CommandList:
		return "Show all countries"
	case CommandExit:
		return "Exit"
	}
	return "Invalid option"
}

func (c Command) String() string {
	switch c {
	case CommandAdd:
		return "add"
	case CommandUpdatePopulation:
		return "update_population"
	case CommandUpdateArea:
		return "update_area"
	case CommandSearch:
		return "search"
	case CommandFilter:
		return "filter"
	case CommandSort:
		return "sort"
	case CommandStats:
		return "stats"
	case CommandList:
		return "list"
	case CommandExit:
		return "exit"
	}
	return fmt.Sprintf("command(%d)", int(c))
}
