// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-accounts-keeper/internal/service"
	"github.com/MKhiriev/go-accounts-keeper/internal/store"
	"github.com/MKhiriev/go-accounts-keeper/models"
)

// humanizeError turns service and storage errors into a line for the error
// overlay. The in-memory list is never changed by a failed write, which the
// storage messages tell the user.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, store.ErrWritingSlot), errors.Is(err, service.ErrPersistAccounts):
		return "Could not save accounts, your last change was not applied.\n" + err.Error()
	case errors.Is(err, service.ErrAccountNotFound):
		return "The account no longer exists."
	case errors.Is(err, models.ErrInvalidAccountType):
		return "Unknown account type."
	}

	return err.Error()
}
