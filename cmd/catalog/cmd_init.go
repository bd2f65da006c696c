package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInitCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the catalog file if it does not exist",
		Long: `Creates an empty catalog (CSV header only, or an empty SQLite table).
An existing catalog is left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := openCatalog(cmd, flags)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			fmt.Fprintf(cmd.OutOrStdout(), "catalog ready at %s (%d countries)\n",
				a.Config.Storage.Path, a.Countries.Len())
			return nil
		},
	}
}
