package cli

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/andretka/deskplan/internal/tracker"
	"github.com/andretka/deskplan/internal/transfer"
)

// App holds everything the CLI commands and the TUI share.
type App struct {
	Tracker *tracker.Tracker
	Log     zerolog.Logger

	// IsInteractive reports whether stdin is a terminal; the bare root
	// command launches the TUI only when it returns true.
	IsInteractive func() bool

	// File is the optional transfer document that seeds the session and
	// receives it back after changes. Without it the collection lives only
	// for the duration of the process.
	File string
}

// NewRootCmd creates the top-level "deskplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:          "deskplan",
		Short:        "Project and todo tracker with JSON export/import",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return cmd.Help()
			}
			return RunTUI(app)
		},
	}
	root.PersistentFlags().StringVarP(&app.File, "file", "f", "",
		"transfer document loaded on start and saved after changes")
	root.PersistentPreRunE = func(*cobra.Command, []string) error {
		return app.loadSession()
	}

	root.AddCommand(
		newProjectCmd(app),
		newTodoCmd(app),
		newExportCmd(app),
		newImportCmd(app),
	)
	return root
}

// loadSession seeds the collection from the session file, when one is set.
// A missing file is fine: the session starts empty and the file appears on
// first save.
func (a *App) loadSession() error {
	if a.File == "" {
		return nil
	}
	records, err := transfer.Load(a.File)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	a.Tracker.Import(records)
	return nil
}

// saveSession writes the collection back to the session file, when set.
func (a *App) saveSession() error {
	if a.File == "" {
		return nil
	}
	_, err := transfer.Save(a.File, a.Tracker.Export())
	return err
}
