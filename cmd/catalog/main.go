// Command catalog manages a small catalog of countries stored in a CSV file
// (or an SQLite database). Without a subcommand it starts the interactive
// menu.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/marvenarg/countrycatalog/internal/app"
	"github.com/marvenarg/countrycatalog/internal/config"
)

// rootFlags are the persistent flags shared by every subcommand.
type rootFlags struct {
	configPath string
	dataPath   string
}

func (f *rootFlags) options() app.Options {
	return app.Options{ConfigPath: f.configPath, DataPath: f.dataPath}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "catalog",
		Short: "Console catalog of countries",
		Long: `catalog keeps a list of countries (name, population, area, continent)
and persists it after every change.

Run without arguments to start the interactive menu.

Environment:
` + config.Usage(),
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), flags.options(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "YAML config file (overrides CONFIG_PATH)")
	root.PersistentFlags().StringVar(&flags.dataPath, "data", "", "catalog file (overrides storage.path)")

	root.AddCommand(
		newListCmd(flags),
		newSearchCmd(flags),
		newStatsCmd(flags),
		newInitCmd(flags),
		newImportCmd(flags),
		newExportCmd(flags),
	)
	return root
}

// openCatalog builds the application and loads the catalog for a one-shot
// subcommand. The caller must Close the returned App.
func openCatalog(cmd *cobra.Command, flags *rootFlags) (*app.App, context.Context, error) {
	a, err := app.New(flags.options())
	if err != nil {
		return nil, nil, err
	}
	ctx, res, err := a.Open(cmd.Context())
	if err != nil {
		_ = a.Close()
		return nil, nil, err
	}
	if n := len(res.Skipped); n > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %d malformed rows were skipped\n", n)
	}
	return a, ctx, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
