package cli

import (
	"database/sql"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/pagenav/internal/actionlog"
	"github.com/jask/pagenav/internal/config"
	"github.com/jask/pagenav/internal/database"
	"github.com/jask/pagenav/internal/database/repository"
	"github.com/jask/pagenav/internal/logging"
	"github.com/jask/pagenav/internal/nav"
	"github.com/jask/pagenav/internal/tui"
)

// session is everything a running navigator holds open.
type session struct {
	logger *logging.Logger
	db     *sql.DB
	sink   nav.ActionSink
}

func (s *session) Close() error {
	var errs []error
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	if s.logger != nil {
		errs = append(errs, s.logger.Close())
	}
	return errors.Join(errs...)
}

// openSession opens the log file and, when auditing is on, the audit store.
func openSession(cmd *cobra.Command, cfg config.Config) (*session, error) {
	logger, err := logging.Open(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	s := &session{logger: logger}
	sinks := actionlog.Multi{actionlog.LogSink{Logger: logger.Logger}}

	if cfg.Audit.Enabled {
		db, err := database.OpenMigrated(cfg.Database.Path)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		s.db = db
		store := actionlog.NewStoreSink(cmd.Context(), repository.NewActionRepo(db), logger.Logger)
		logger.Info("audit enabled", "db", cfg.Database.Path, "session_id", store.SessionID())
		sinks = append(sinks, store)
	}
	s.sink = sinks
	return s, nil
}

func runNavigator(cmd *cobra.Command) error {
	cfg, ok := GetConfig(cmd.Context())
	if !ok {
		return errors.New("config not loaded")
	}
	s, err := openSession(cmd, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	opts := cfg.NavOptions()
	opts.Sink = s.sink
	app, err := tui.New(opts, s.logger.Logger)
	if err != nil {
		return fmt.Errorf("build navigator: %w", err)
	}
	defer app.Close()

	progOpts := []tea.ProgramOption{
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	}
	if cfg.UI.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if cfg.UI.Mouse {
		progOpts = append(progOpts, tea.WithMouseAllMotion())
	}

	s.logger.Info("navigator started", "pages", app.Navigator().Len())
	if _, err := tea.NewProgram(app, progOpts...).Run(); err != nil {
		return fmt.Errorf("run navigator: %w", err)
	}
	s.logger.Info("navigator stopped", "actions", len(app.Records()))
	return nil
}
