package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/marvenarg/countrycatalog/internal/domain"
	"github.com/marvenarg/countrycatalog/internal/transport/cli"
)

func newStatsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print catalog statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := openCatalog(cmd, flags)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			view := cli.NewRenderer(cmd.OutOrStdout(), a.Config.UI.MenuWidth, false)
			st, err := a.Countries.Stats()
			if errors.Is(err, domain.ErrNoData) {
				view.Notice("No countries loaded, statistics are unavailable.")
				return nil
			}
			if err != nil {
				return err
			}
			view.Stats(st)
			return nil
		},
	}
}
