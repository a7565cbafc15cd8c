package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-accounts-keeper/internal/config"
	"github.com/MKhiriev/go-accounts-keeper/internal/logger"
	"github.com/MKhiriev/go-accounts-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig(dsn string) config.Storage {
	return config.Storage{Driver: config.DriverSQLite, DSN: dsn, Key: "accounts"}
}

func testAccounts() models.AccountList {
	return models.AccountList{
		{ID: "a-1", Label: "Mail", Type: models.Local, Login: "jane", Password: "s3cret"},
		{ID: "a-2", Label: "SSO", Type: models.External, Login: "jane@corp", ShowPwd: true},
	}
}

// roundTripStorage checks the backend-independent contract: an absent slot
// loads empty, a save is read back unchanged and a second save overwrites
// the first in full.
func roundTripStorage(t *testing.T, s AccountStorage) {
	t.Helper()
	ctx := context.Background()

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)

	list := testAccounts()
	require.NoError(t, s.Save(ctx, list))

	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, list, got)

	shorter := list[1:]
	require.NoError(t, s.Save(ctx, shorter))

	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, shorter, got)

	require.NoError(t, s.Save(ctx, models.AccountList{}))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNewAccountStorage_Drivers(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		name string
		cfg  config.Storage
	}{
		{name: "sqlite file", cfg: sqliteConfig(filepath.Join(dir, "nested", "accounts.db"))},
		{name: "bolt", cfg: config.Storage{Driver: config.DriverBolt, DSN: filepath.Join(dir, "accounts.bolt"), Key: "accounts"}},
		{name: "file", cfg: config.Storage{Driver: config.DriverFile, DSN: filepath.Join(dir, "accounts.json"), Key: "accounts"}},
		{name: "memory", cfg: config.Storage{Driver: config.DriverMemory, Key: "accounts"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewAccountStorage(ctx, tt.cfg, logger.Nop())
			require.NoError(t, err)
			t.Cleanup(func() { _ = s.Close() })

			roundTripStorage(t, s)
		})
	}
}

func TestNewAccountStorage_UnknownDriver(t *testing.T) {
	_, err := NewAccountStorage(context.Background(), config.Storage{Driver: "postgres"}, logger.Nop())
	require.ErrorIs(t, err, ErrUnknownDriver)
}

// TestSQLiteStorage_SurvivesReopen verifies that a file-backed sqlite slot is
// persisted across connections.
func TestSQLiteStorage_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	cfg := sqliteConfig(filepath.Join(t.TempDir(), "accounts.db"))

	s, err := NewAccountStorage(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, testAccounts()))
	require.NoError(t, s.Close())

	s, err = NewAccountStorage(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, testAccounts(), got)
}
