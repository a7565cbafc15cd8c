// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// AccountType classifies an account and decides whether the password field
// applies to it.
type AccountType string

const (
	// Local accounts keep their own password, which is required and shown.
	Local AccountType = "Local"

	// External accounts authenticate elsewhere; the password field is neither
	// required nor rendered.
	External AccountType = "External"
)

// ErrInvalidAccountType is returned when a string does not name a known
// [AccountType].
var ErrInvalidAccountType = errors.New("invalid account type")

// AccountTypes lists every supported type in display order.
var AccountTypes = []AccountType{Local, External}

// ParseAccountType converts s into an [AccountType].
// An empty string maps to [Local], the type new records are created with.
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(s) {
	case Local, "":
		return Local, nil
	case External:
		return External, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidAccountType, s)
	}
}

// String implements fmt.Stringer.
func (t AccountType) String() string {
	if t == "" {
		return string(Local)
	}
	return string(t)
}

// Next returns the type that follows t in [AccountTypes], wrapping around.
func (t AccountType) Next() AccountType {
	if t == External {
		return Local
	}
	return External
}

// MarshalText implements encoding.TextMarshaler. An unset type is written
// as "" so that it reads back unchanged.
func (t AccountType) MarshalText() ([]byte, error) {
	return []byte(t), nil
}

// UnmarshalText implements encoding.TextUnmarshaler and rejects unknown
// type names.
func (t *AccountType) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*t = ""
		return nil
	}
	parsed, err := ParseAccountType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
