package store

import (
	"database/sql"

	"github.com/MKhiriev/go-accounts-keeper/internal/logger"
	"github.com/MKhiriev/go-accounts-keeper/migrations"
)

// DB wraps the SQL connection shared by SQL-backed storages.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate brings the schema up to date using the embedded migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
