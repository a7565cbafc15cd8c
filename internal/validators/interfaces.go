// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the validation rules of the account list.
//
// Two contracts are exposed:
//   - Validator checks a single value and returns the first sentinel error,
//     optionally scoped to named fields.
//   - AddGate decides whether a new record may be appended to the list and
//     reports every violation as a field-keyed models.ErrorMap.
package validators

import (
	"context"

	"github.com/MKhiriev/go-accounts-keeper/models"
)

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// AddGate guards the "add new record" operation.
type AddGate interface {
	// ValidateAdd inspects the current list and the pending draft and returns
	// every violation found. An empty map means the add may proceed.
	ValidateAdd(ctx context.Context, list models.AccountList, draft models.Draft) models.ErrorMap
}
