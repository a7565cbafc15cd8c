// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Account is one credential entry of the editable list.
type Account struct {
	// ID is a stable generated identifier. It survives reordering and
	// deletion of other records, unlike the record's position in the list.
	ID string `json:"id"`

	// Label is the user-facing name of the account.
	Label string `json:"label"`

	// Type selects whether the password field applies.
	Type AccountType `json:"type"`

	// Login is the account's user name.
	Login string `json:"login"`

	// Password is only meaningful when Type is [Local].
	Password string `json:"password"`

	// ShowPwd is a presentation flag: render the password in clear text.
	ShowPwd bool `json:"showPwd"`
}

// RequiresPassword reports whether the account must carry a password.
func (a Account) RequiresPassword() bool {
	return a.Type != External
}

// AccountList is the ordered collection of accounts. Insertion order is
// display order.
type AccountList []Account

// Clone returns a shallow copy of l. Mutating an element of the copy never
// affects l. A nil list clones into an empty one.
func (l AccountList) Clone() AccountList {
	out := make(AccountList, len(l))
	copy(out, l)
	return out
}

// IndexOf returns the position of the account with the given id, or -1.
func (l AccountList) IndexOf(id string) int {
	return slices.IndexFunc(l, func(a Account) bool { return a.ID == id })
}

// Equal reports whether l and other hold the same accounts in the same
// order. A nil list equals an empty one.
func (l AccountList) Equal(other AccountList) bool {
	return slices.Equal(l, other)
}

// MarshalAccounts serializes the list to the persisted JSON form. A nil list
// is written as an empty array.
func MarshalAccounts(l AccountList) ([]byte, error) {
	if l == nil {
		l = AccountList{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("encode accounts: %w", err)
	}
	return data, nil
}

// UnmarshalAccounts parses the persisted JSON form. Empty input and a JSON
// null both decode to an empty, non-nil list.
func UnmarshalAccounts(data []byte) (AccountList, error) {
	if len(data) == 0 {
		return AccountList{}, nil
	}

	var l AccountList
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("decode accounts: %w", err)
	}
	if l == nil {
		l = AccountList{}
	}
	return l, nil
}
