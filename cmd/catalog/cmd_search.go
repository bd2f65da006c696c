package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/marvenarg/countrycatalog/internal/transport/cli"
)

func newSearchCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "search QUERY",
		Short: "Print countries whose name contains QUERY",
		Long: `Case-insensitive partial name search. Extra spaces are ignored.

Example:
  catalog search "costa  RICA"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := openCatalog(cmd, flags)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			found := a.Countries.Search(strings.Join(args, " "))
			view := cli.NewRenderer(cmd.OutOrStdout(), a.Config.UI.MenuWidth, false)
			if len(found) == 0 {
				view.Notice("No countries match the search.")
				return nil
			}
			view.Countries(found)
			return nil
		},
	}
}
