package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-accounts-keeper/internal/client"
	"github.com/MKhiriev/go-accounts-keeper/internal/config"
	"github.com/MKhiriev/go-accounts-keeper/internal/logger"
	"github.com/MKhiriev/go-accounts-keeper/internal/service"
	"github.com/MKhiriev/go-accounts-keeper/internal/store"
	"github.com/MKhiriev/go-accounts-keeper/internal/tui"
	"github.com/MKhiriev/go-accounts-keeper/internal/validators"
	"github.com/MKhiriev/go-accounts-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log, closeLog := logger.NewClientLogger("accounts-keeper", cfg.Log.File, cfg.Log.Level)
	defer closeLog()

	if err = run(cfg, buildInfo, log); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

func run(cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	mode, err := validators.ParseMode(cfg.App.ValidationMode)
	if err != nil {
		return fmt.Errorf("parse validation mode: %w", err)
	}

	storage, err := store.NewAccountStorage(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create account storage: %w", err)
	}

	services := service.NewClientServices(storage, mode, log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		_ = storage.Close()
		return fmt.Errorf("create ui: %w", err)
	}

	app, err := client.NewApp(services.Store, ui, storage, log)
	if err != nil {
		_ = storage.Close()
		return fmt.Errorf("init client app: %w", err)
	}

	return app.Run(ctx)
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
