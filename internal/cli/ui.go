package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/tickr/internal/app"
	"github.com/sadopc/tickr/internal/logging"
	"github.com/sadopc/tickr/internal/tui"
)

func runUI(r *runtime) error {
	state, cleanup := startState(r)
	defer cleanup()
	return runProgram(tui.New(state, r.cfg.TickInterval))
}

// startState builds the engine for the interactive tracker. Neither an
// unusable log file nor a database that fails to open stops it: the user
// gets an empty, navigable tracker with the failure in the status line.
func startState(r *runtime) (*app.State, func()) {
	var closers []func() error
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	logger, closer, logErr := logging.Open(r.cfg.LogFile, r.cfg.LogLevel)
	if logErr != nil {
		logger = logging.Discard()
	} else {
		closers = append(closers, closer.Close)
	}
	opts := []app.Option{app.WithLogger(logger), app.WithClock(r.now)}

	var state *app.State
	s, err := r.openStore()
	if err != nil {
		logger.Error("open store", "path", r.cfg.DBPath, "err", err)
		state = app.New(nil, opts...)
	} else {
		closers = append(closers, s.Close)
		logger.Info("tickr started", "db", r.cfg.DBPath)
		state = app.New(s, opts...)
	}
	if logErr != nil {
		state.Notify(fmt.Sprintf("Logging disabled: %v", logErr))
	}
	return state, cleanup
}

func runProgram(m tui.App) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
