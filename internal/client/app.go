package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-deploy-config/internal/adapter"
	"github.com/MKhiriev/go-deploy-config/internal/logger"
	"github.com/MKhiriev/go-deploy-config/internal/tui"
	"github.com/MKhiriev/go-deploy-config/internal/workers"
)

type App struct {
	ui      *tui.TUI
	workers *workers.Workers

	logger *logger.Logger
}

func NewApp(ui *tui.TUI, serverAdapter adapter.ServerAdapter, logger *logger.Logger) (*App, error) {
	return &App{
		ui:      ui,
		workers: workers.NewWorkers(newServerVersionWorker(serverAdapter, logger)),
		logger:  logger,
	}, nil
}

// Run drives the interactive session until the operator quits. A quit via
// ctrl+c is a normal exit, not an error.
func (a *App) Run() error {
	ctx := context.Background()

	a.workers.Run()

	if err := a.ui.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			a.logger.Info().Msg("user quit the session")
			return nil
		}
		return err
	}

	return nil
}
