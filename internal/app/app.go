// Package app is the main entrypoint into the application, responsible for
// configuration, loading content and running the terminal UI.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/peterbourgon/ff/v4"

	"github.com/ComputelessComputer/johnjeong/internal/logging"
	"github.com/ComputelessComputer/johnjeong/internal/ui"
	"github.com/ComputelessComputer/johnjeong/internal/version"
)

// Run parses args, loads content and runs the browser until the user quits.
// Content errors are returned before the terminal is taken over.
func Run(stdout, stderr io.Writer, args []string) error {
	cfg, err := parse(stdout, stderr, args)
	if errors.Is(err, ff.ErrHelp) {
		return nil
	} else if err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Version {
		fmt.Fprintln(stdout, "johnjeong", version.Version)
		return nil
	}

	logger, closeLog, err := logging.New(cfg.loggingOptions)
	if err != nil {
		return err
	}
	defer closeLog()

	m, cleanup, err := newModel(context.Background(), cfg, logger, ui.Browser{})
	if err != nil {
		return err
	}
	defer cleanup()

	return runProgram(m)
}

func runProgram(m tea.Model) error {
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running terminal ui: %w", err)
	}
	return nil
}
