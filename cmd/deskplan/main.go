package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/andretka/deskplan/internal/cli"
	"github.com/andretka/deskplan/internal/logging"
	"github.com/andretka/deskplan/internal/tracker"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger, closeLog, err := logging.Open(logging.DefaultPath())
	if err != nil {
		// Logging is best-effort; the tracker works fine without it.
		logger = zerolog.Nop()
		closeLog = func() {}
	}
	defer closeLog()

	app := &cli.App{
		Tracker: tracker.New(tracker.WithLogger(logger)),
		Log:     logger,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
