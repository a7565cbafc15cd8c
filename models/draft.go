// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Draft holds the pending "new record" fields before they are added to the
// list.
type Draft struct {
	Label    string
	Type     AccountType
	Login    string
	Password string
	ShowPwd  bool
}

// NewDraft returns an empty draft of type [Local].
func NewDraft() Draft {
	return Draft{Type: Local}
}

// ToAccount builds the account the draft describes under the given id.
func (d Draft) ToAccount(id string) Account {
	t := d.Type
	if t == "" {
		t = Local
	}
	return Account{
		ID:       id,
		Label:    d.Label,
		Type:     t,
		Login:    d.Login,
		Password: d.Password,
		ShowPwd:  d.ShowPwd,
	}
}
