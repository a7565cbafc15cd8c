package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-accounts-keeper/internal/logger"
	"github.com/MKhiriev/go-accounts-keeper/models"
)

// sqliteAccountStorage keeps the slot as one row of the key_value table.
type sqliteAccountStorage struct {
	*DB
	key    string
	now    func() time.Time
	logger *logger.Logger
}

// NewSQLiteAccountStorage returns an [AccountStorage] storing the list under
// key in db. The schema must already be migrated.
func NewSQLiteAccountStorage(db *DB, key string, logger *logger.Logger) AccountStorage {
	return &sqliteAccountStorage{
		DB:     db,
		key:    key,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

func (s *sqliteAccountStorage) Load(ctx context.Context) (models.AccountList, error) {
	query, args, err := selectSlotQuery(s.key)
	if err != nil {
		return nil, err
	}

	var raw string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		s.logger.Debug().Str("func", "sqliteAccountStorage.Load").Str("key", s.key).Msg("slot not found, starting empty")
		return models.AccountList{}, nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "sqliteAccountStorage.Load").Str("key", s.key).Msg("failed to read slot")
		return nil, fmt.Errorf("%w: %w", ErrReadingSlot, err)
	}

	return decodeSlot([]byte(raw))
}

func (s *sqliteAccountStorage) Save(ctx context.Context, accounts models.AccountList) error {
	raw, err := encodeSlot(accounts)
	if err != nil {
		return err
	}

	query, args, err := upsertSlotQuery(s.key, raw, s.now())
	if err != nil {
		return err
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteAccountStorage.Save").
			Str("key", s.key).
			Int("accounts", len(accounts)).
			Msg("failed to overwrite slot")
		return fmt.Errorf("%w: %w", ErrWritingSlot, err)
	}

	return nil
}

func (s *sqliteAccountStorage) Close() error {
	return s.DB.Close()
}
