package store

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/MKhiriev/go-accounts-keeper/internal/logger"
	"github.com/MKhiriev/go-accounts-keeper/models"
)

var accountsBucket = []byte("accounts")

// boltAccountStorage keeps the slot as one key of a bbolt bucket.
type boltAccountStorage struct {
	db     *bbolt.DB
	key    []byte
	logger *logger.Logger
}

// NewBoltAccountStorage opens (or creates) the bbolt database at path and
// makes sure the accounts bucket exists.
func NewBoltAccountStorage(path, key string, logger *logger.Logger) (AccountStorage, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpeningDatabase, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(accountsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: create bucket: %w", ErrOpeningDatabase, err)
	}

	return &boltAccountStorage{db: db, key: []byte(key), logger: logger}, nil
}

func (s *boltAccountStorage) Load(_ context.Context) (models.AccountList, error) {
	var raw []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket(accountsBucket).Get(s.key); v != nil {
			// v is only valid inside the transaction
			raw = append([]byte{}, v...)
		}
		return nil
	})
	if err != nil {
		s.logger.Err(err).Str("func", "boltAccountStorage.Load").Msg("failed to read slot")
		return nil, fmt.Errorf("%w: %w", ErrReadingSlot, err)
	}

	return decodeSlot(raw)
}

func (s *boltAccountStorage) Save(_ context.Context, accounts models.AccountList) error {
	raw, err := encodeSlot(accounts)
	if err != nil {
		return err
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(accountsBucket).Put(s.key, raw)
	})
	if err != nil {
		s.logger.Err(err).Str("func", "boltAccountStorage.Save").Int("accounts", len(accounts)).Msg("failed to overwrite slot")
		return fmt.Errorf("%w: %w", ErrWritingSlot, err)
	}

	return nil
}

func (s *boltAccountStorage) Close() error {
	return s.db.Close()
}
