package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"github.com/MKhiriev/go-accounts-keeper/internal/logger"
	"github.com/MKhiriev/go-accounts-keeper/models"
)

// fileAccountStorage keeps the slot as a JSON file. Every save writes a
// temporary file and renames it over the old one, so a crash never leaves a
// half-written list behind.
type fileAccountStorage struct {
	path   string
	logger *logger.Logger
}

// NewFileAccountStorage returns an [AccountStorage] backed by the file at
// path. The file is created on the first save.
func NewFileAccountStorage(path string, logger *logger.Logger) AccountStorage {
	return &fileAccountStorage{path: path, logger: logger}
}

func (s *fileAccountStorage) Load(_ context.Context) (models.AccountList, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.AccountList{}, nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "fileAccountStorage.Load").Str("path", s.path).Msg("failed to read slot file")
		return nil, fmt.Errorf("%w: %w", ErrReadingSlot, err)
	}

	return decodeSlot(data)
}

func (s *fileAccountStorage) Save(_ context.Context, accounts models.AccountList) error {
	raw, err := encodeSlot(accounts)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create dir: %w", ErrWritingSlot, err)
		}
	}

	if err = atomic.WriteFile(s.path, bytes.NewReader(raw)); err != nil {
		s.logger.Err(err).Str("func", "fileAccountStorage.Save").Str("path", s.path).Msg("failed to write slot file")
		return fmt.Errorf("%w: %w", ErrWritingSlot, err)
	}

	return nil
}

func (s *fileAccountStorage) Close() error {
	return nil
}
