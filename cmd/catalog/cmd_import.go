package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marvenarg/countrycatalog/internal/adapter/csvstore"
)

func newImportCmd(flags *rootFlags) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Add the countries of another CSV file to the catalog",
		Long: `Reads FILE with the same rules as the catalog file and adds every
valid country whose name is not in the catalog yet. The catalog is saved once
at the end.

Example:
  catalog import extra.csv --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); err != nil {
				return fmt.Errorf("import source: %w", err)
			}

			a, ctx, err := openCatalog(cmd, flags)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			src, err := csvstore.New(args[0]).Load(ctx)
			if err != nil {
				return err
			}

			res, err := a.Countries.Import(ctx, src.Countries, dryRun)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, row := range src.Skipped {
				fmt.Fprintf(out, "line %d: %s\n", row.Line, row.Reason)
			}
			for _, e := range res.Errors {
				fmt.Fprintf(out, "item %d (%s): %s\n", e.LineNumber, e.Name, e.Reason)
			}
			verb := "imported"
			if dryRun {
				verb = "would import"
			}
			fmt.Fprintf(out, "%s %d countries, skipped %d\n", verb, res.Imported, res.Skipped+len(src.Skipped))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would be imported without saving")
	return cmd
}

func newExportCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Write the catalog to a CSV file",
		Long: `Writes the whole catalog to FILE in the CSV storage format. Useful to
move a catalog from the sqlite driver to csv.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ctx, err := openCatalog(cmd, flags)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			if err := csvstore.New(args[0]).Save(ctx, a.Countries.List()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d countries to %s\n", a.Countries.Len(), args[0])
			return nil
		},
	}
}
