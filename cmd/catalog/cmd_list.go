package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marvenarg/countrycatalog/internal/domain"
	"github.com/marvenarg/countrycatalog/internal/transport/cli"
)

func newListCmd(flags *rootFlags) *cobra.Command {
	var (
		sortBy    string
		desc      bool
		continent string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the catalog",
		Long: `Prints every country, optionally restricted to one continent and
ordered by name, population or area. Sorting here is never saved.

Examples:
  catalog list
  catalog list --sort population --desc
  catalog list --continent "south america"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := openCatalog(cmd, flags)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			if sortBy != "" {
				if err := a.Countries.Sort(domain.SortField(sortBy), !desc); err != nil {
					return fmt.Errorf("--sort %q: %w", sortBy, err)
				}
			}

			countries := a.Countries.List()
			if continent != "" {
				countries = a.Countries.FilterByContinent(continent)
			}

			view := cli.NewRenderer(cmd.OutOrStdout(), a.Config.UI.MenuWidth, false)
			if len(countries) == 0 {
				view.Notice("No countries found.")
				return nil
			}
			view.Countries(countries)
			return nil
		},
	}

	cmd.Flags().StringVar(&sortBy, "sort", "", "sort by name, population or area")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort in descending order")
	cmd.Flags().StringVar(&continent, "continent", "", "only countries on this continent")
	return cmd
}
