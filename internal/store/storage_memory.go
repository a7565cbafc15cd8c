package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-accounts-keeper/models"
)

// MemoryAccountStorage keeps the serialized slot in process memory. It goes
// through the same encoding as the persistent backends, so a Load after a
// Save returns what a real backend would.
type MemoryAccountStorage struct {
	mu     sync.RWMutex
	raw    []byte
	saves  int
	closed bool
}

// NewMemoryAccountStorage returns an empty in-memory slot.
func NewMemoryAccountStorage() *MemoryAccountStorage {
	return &MemoryAccountStorage{}
}

func (s *MemoryAccountStorage) Load(_ context.Context) (models.AccountList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, fmt.Errorf("%w: %w", ErrReadingSlot, ErrStorageClosed)
	}
	return decodeSlot(s.raw)
}

func (s *MemoryAccountStorage) Save(_ context.Context, accounts models.AccountList) error {
	raw, err := encodeSlot(accounts)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return fmt.Errorf("%w: %w", ErrWritingSlot, ErrStorageClosed)
	}
	s.raw = raw
	s.saves++
	return nil
}

func (s *MemoryAccountStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Raw returns a copy of the serialized slot, nil if it was never written.
func (s *MemoryAccountStorage) Raw() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.raw == nil {
		return nil
	}
	return append([]byte{}, s.raw...)
}

// Saves reports how many times the slot has been written.
func (s *MemoryAccountStorage) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}
