// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	kvTable        = "key_value"
	kvKeyColumn    = "key"
	kvValueColumn  = "value"
	kvUpdatedAtCol = "updated_at"

	upsertSlotSuffix = "ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at"
)

// selectSlotQuery builds the read of a single slot value.
func selectSlotQuery(key string) (string, []any, error) {
	query, args, err := sq.Select(kvValueColumn).
		From(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// upsertSlotQuery builds the whole-value overwrite of a slot.
func upsertSlotQuery(key string, value []byte, now time.Time) (string, []any, error) {
	query, args, err := sq.Insert(kvTable).
		Columns(kvKeyColumn, kvValueColumn, kvUpdatedAtCol).
		Values(key, string(value), now).
		Suffix(upsertSlotSuffix).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
