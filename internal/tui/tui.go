package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-accounts-keeper/internal/logger"
	"github.com/MKhiriev/go-accounts-keeper/internal/service"
	"github.com/MKhiriev/go-accounts-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrNoServices = errors.New("tui: account service is required")

// TUI runs the interactive account editor.
type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, info models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil || services.AccountService == nil {
		return nil, ErrNoServices
	}
	return &TUI{services: services, buildInfo: info, logger: log}, nil
}

// Run blocks until the user quits or ctx is cancelled. The account store
// must already be loaded.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services.AccountService, t.services.Validator, t.buildInfo, t.logger)

	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		t.logger.Err(err).Str("func", "TUI.Run").Msg("tui program failed")
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
