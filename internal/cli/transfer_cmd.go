package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andretka/deskplan/internal/transfer"
)

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export NAME",
		Short: "Export all projects to an indented JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records := app.Tracker.Export()
			path, err := transfer.Save(args[0], records)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d projects to %s\n", len(records), path)
			return nil
		},
	}
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import projects from a JSON document, merging into the collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := transfer.Load(args[0])
			if err != nil {
				return err
			}
			stats := app.Tracker.Import(records)
			if err := app.saveSession(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported: %d new, %d merged, %d skipped\n",
				stats.Created, stats.Merged, stats.Skipped)
			return nil
		},
	}
}
