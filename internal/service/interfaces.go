// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-accounts-keeper/models"
)

// AccountService is the set of user-triggered operations on the account
// list. Every mutating call persists the whole list before it becomes
// visible through List.
type AccountService interface {
	// List returns a copy of the current accounts in display order.
	List() models.AccountList

	// Add runs the validation gate and appends the draft as a new account.
	// It reports false with a nil error when the gate rejected the add; the
	// violations are then available from Errors and the draft is kept.
	Add(ctx context.Context) (bool, error)

	// Update sets one field of the account with the given id.
	Update(ctx context.Context, id string, field models.Field, value string) error
	SetLabel(ctx context.Context, id, label string) error
	SetType(ctx context.Context, id string, accountType models.AccountType) error
	SetLogin(ctx context.Context, id, login string) error
	SetPassword(ctx context.Context, id, password string) error

	// TogglePassword flips the password visibility of one account.
	TogglePassword(ctx context.Context, id string) error

	// Delete removes the account after confirm agreed. A declined
	// confirmation reports false and leaves storage untouched.
	Delete(ctx context.Context, id string, confirm Confirmer) (bool, error)

	Draft() models.Draft
	SetDraftLabel(label string)
	SetDraftLogin(login string)
	SetDraftPassword(password string)
	SetDraftType(accountType models.AccountType) error
	ToggleDraftPassword()
	ResetDraft()

	// Errors returns the result of the last gate run.
	Errors() models.ErrorMap
}

// IDGenerator produces identifiers for new accounts.
type IDGenerator interface {
	Generate() string
}

// Confirmer is asked before an account is deleted.
type Confirmer func(ctx context.Context, account models.Account) bool

// Confirmed approves every deletion.
func Confirmed(context.Context, models.Account) bool { return true }

// Cancelled declines every deletion.
func Cancelled(context.Context, models.Account) bool { return false }
