// Package tui implements the terminal client for the deployment
// configuration server: sign-in, config inspection, and config editing
// screens built on Bubble Tea.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-deploy-config/internal/adapter"
	"github.com/MKhiriev/go-deploy-config/internal/logger"
	"github.com/MKhiriev/go-deploy-config/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	adapter   adapter.ServerAdapter
	buildInfo models.AppBuildInfo
}

func New(serverAdapter adapter.ServerAdapter, buildInfo models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	return &TUI{adapter: serverAdapter, buildInfo: buildInfo}, nil
}

// Run launches the interactive session and blocks until the operator quits.
// Returns [ErrUserQuit] when the session was ended with ctrl+c.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		"menu":  NewMenuModel(t.adapter),
		"login": NewLoginModel(ctx, t.adapter),
		"view":  NewViewConfigModel(ctx, t.adapter),
		"edit":  NewEditConfigModel(ctx, t.adapter),
	}

	root := NewRootModel(pages, "menu", t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
