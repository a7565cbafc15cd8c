// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-accounts-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/account_storage_mock.go -package=mock

// AccountStorage is the persisted slot holding the whole account list.
//
// The slot is read once at startup and overwritten in full after every
// mutation; there is no incremental update.
type AccountStorage interface {
	// Load returns the persisted list. An absent slot yields an empty list and
	// a nil error.
	Load(ctx context.Context) (models.AccountList, error)

	// Save overwrites the slot with the serialized list.
	Save(ctx context.Context, accounts models.AccountList) error

	// Close releases the underlying resources.
	Close() error
}
