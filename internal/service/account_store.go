package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-accounts-keeper/internal/logger"
	"github.com/MKhiriev/go-accounts-keeper/internal/store"
	"github.com/MKhiriev/go-accounts-keeper/models"
)

// AccountStore is the single source of truth for the account list. The
// in-memory value only changes after storage accepted the new list, so the
// two never drift apart.
type AccountStore struct {
	mu       sync.RWMutex
	accounts models.AccountList
	storage  store.AccountStorage
	ids      IDGenerator
	logger   *logger.Logger
}

func NewAccountStore(storage store.AccountStorage, ids IDGenerator, logger *logger.Logger) *AccountStore {
	return &AccountStore{
		accounts: models.AccountList{},
		storage:  storage,
		ids:      ids,
		logger:   logger,
	}
}

// Load reads the persisted list once at startup. Records written without an
// id, or sharing one with an earlier record, are given a fresh id; the next
// save persists it.
func (s *AccountStore) Load(ctx context.Context) error {
	list, err := s.storage.Load(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "AccountStore.Load").Msg("failed to load accounts")
		return fmt.Errorf("%w: %w", ErrLoadAccounts, err)
	}

	seen := make(map[string]struct{}, len(list))
	for i := range list {
		if _, dup := seen[list[i].ID]; list[i].ID == "" || dup {
			list[i].ID = s.ids.Generate()
		}
		seen[list[i].ID] = struct{}{}
	}

	s.mu.Lock()
	s.accounts = list.Clone()
	s.mu.Unlock()

	s.logger.Info().Int("accounts", len(list)).Msg("accounts loaded")
	return nil
}

// Get returns a copy of the current list.
func (s *AccountStore) Get() models.AccountList {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accounts.Clone()
}

// Replace persists list and, on success, makes it the current value.
func (s *AccountStore) Replace(ctx context.Context, list models.AccountList) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replaceLocked(ctx, list)
}

// Mutate applies fn to a copy of the current list and replaces the list with
// the result. Reading and writing happen under one lock, so concurrent
// mutations never lose each other's changes. An error from fn aborts the
// mutation without a write.
func (s *AccountStore) Mutate(ctx context.Context, fn func(models.AccountList) (models.AccountList, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.accounts.Clone())
	if err != nil {
		return err
	}
	return s.replaceLocked(ctx, next)
}

func (s *AccountStore) replaceLocked(ctx context.Context, list models.AccountList) error {
	if list == nil {
		list = models.AccountList{}
	}

	if err := s.storage.Save(ctx, list); err != nil {
		s.logger.Err(err).
			Str("func", "AccountStore.replaceLocked").
			Int("accounts", len(list)).
			Msg("storage rejected the new list, keeping the previous one")
		return fmt.Errorf("%w: %w", ErrPersistAccounts, err)
	}

	s.accounts = list.Clone()
	return nil
}
