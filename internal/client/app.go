package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-accounts-keeper/internal/logger"
)

var ErrMissingDependency = errors.New("client: missing dependency")

// App runs one interactive session over a single storage.
type App struct {
	loader  Loader
	ui      UI
	storage io.Closer
	logger  *logger.Logger
}

func NewApp(loader Loader, ui UI, storage io.Closer, log *logger.Logger) (*App, error) {
	if loader == nil || ui == nil || storage == nil {
		return nil, ErrMissingDependency
	}
	return &App{loader: loader, ui: ui, storage: storage, logger: log}, nil
}

// Run loads the accounts, blocks in the UI and closes the storage on every
// exit path.
func (a *App) Run(ctx context.Context) (err error) {
	defer func() {
		if closeErr := a.storage.Close(); closeErr != nil {
			a.logger.Err(closeErr).Str("func", "App.Run").Msg("failed to close storage")
			err = errors.Join(err, fmt.Errorf("close storage: %w", closeErr))
		}
	}()

	if err = a.loader.Load(ctx); err != nil {
		return fmt.Errorf("load accounts: %w", err)
	}

	a.logger.Info().Msg("starting ui")
	if err = a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	a.logger.Info().Msg("ui closed")
	return nil
}
