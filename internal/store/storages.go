package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-accounts-keeper/internal/config"
	"github.com/MKhiriev/go-accounts-keeper/internal/logger"
)

// NewAccountStorage opens the backend selected by cfg.Driver:
//   - "sqlite": a key_value table in an SQLite database at cfg.DSN, created
//     by the embedded migrations;
//   - "bolt": a bbolt database file at cfg.DSN;
//   - "file": a JSON file at cfg.DSN replaced atomically on every save;
//   - "memory": an in-process slot that is lost on exit.
//
// Returns ErrUnknownDriver for anything else.
func NewAccountStorage(ctx context.Context, cfg config.Storage, log *logger.Logger) (AccountStorage, error) {
	log.Info().Str("driver", cfg.Driver).Str("key", cfg.Key).Msg("creating account storage...")

	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DSN, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return NewSQLiteAccountStorage(db, cfg.Key, log), nil

	case config.DriverBolt:
		s, err := NewBoltAccountStorage(cfg.DSN, cfg.Key, log)
		if err != nil {
			return nil, fmt.Errorf("bolt storage error: %w", err)
		}
		return s, nil

	case config.DriverFile:
		return NewFileAccountStorage(cfg.DSN, log), nil

	case config.DriverMemory:
		return NewMemoryAccountStorage(), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
