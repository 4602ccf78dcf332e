package cli

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rileyhilliard/ptop/internal/errors"
	"github.com/rileyhilliard/ptop/internal/logger"
	"github.com/rileyhilliard/ptop/internal/monitor"
)

// dashboardCommand starts the TUI dashboard.
func dashboardCommand(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New(errors.ErrTerminal,
			"ptop needs an interactive terminal",
			"Run it directly in a terminal, not through a pipe or redirect.")
	}

	// The TUI owns stdout, so debug output goes to a file.
	closer, err := logger.RedirectToFile(logger.DefaultLogFile)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrTerminal,
			"Failed to open debug log "+logger.DefaultLogFile,
			"Unset "+logger.DebugEnv+" or run from a writable directory.")
	}
	defer closer.Close()

	log := logger.Default()
	log.Debug("starting: source=%s interval=%s history=%d page=%d",
		cfg.Source, cfg.Interval, cfg.HistorySize, cfg.PageSize)

	collector := monitor.NewCollector(cfg, log)
	model := monitor.NewModel(collector, monitor.Options{
		Interval:    cfg.Interval,
		HistorySize: cfg.HistorySize,
		PageSize:    cfg.PageSize,
		GraphHeight: cfg.GraphHeight,
		Logger:      log,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrTerminal,
			"Dashboard stopped unexpectedly",
			"Check that your terminal supports full-screen applications.")
	}
	return nil
}
