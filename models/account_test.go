// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAccounts() AccountList {
	return AccountList{
		{ID: "a-1", Label: "Mail", Type: Local, Login: "jane", Password: "s3cret", ShowPwd: true},
		{ID: "a-2", Label: "SSO", Type: External, Login: "jane@corp"},
		{ID: "a-3", Label: "", Type: Local, Login: "", Password: ""},
	}
}

func TestMarshalAccounts_RoundTrip(t *testing.T) {
	list := sampleAccounts()

	data, err := MarshalAccounts(list)
	require.NoError(t, err)

	got, err := UnmarshalAccounts(data)
	require.NoError(t, err)
	assert.Equal(t, list, got)
	assert.True(t, list.Equal(got))
}

func TestMarshalAccounts_WireFormat(t *testing.T) {
	data, err := MarshalAccounts(AccountList{{ID: "x", Label: "L", Type: External, Login: "u"}})
	require.NoError(t, err)

	assert.JSONEq(t,
		`[{"id":"x","label":"L","type":"External","login":"u","password":"","showPwd":false}]`,
		string(data))
}

func TestMarshalAccounts_NilIsEmptyArray(t *testing.T) {
	data, err := MarshalAccounts(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestUnmarshalAccounts_EmptyInputs(t *testing.T) {
	for _, in := range []string{"", "null", "[]"} {
		t.Run("input "+in, func(t *testing.T) {
			got, err := UnmarshalAccounts([]byte(in))
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestUnmarshalAccounts_LegacyRecordWithoutID(t *testing.T) {
	got, err := UnmarshalAccounts([]byte(`[{"label":"A","type":"Local","login":"l","password":"p","showPwd":false}]`))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Empty(t, got[0].ID)
	assert.Equal(t, "A", got[0].Label)
}

func TestUnmarshalAccounts_InvalidType(t *testing.T) {
	_, err := UnmarshalAccounts([]byte(`[{"label":"A","type":"Remote"}]`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAccountType)
}

func TestUnmarshalAccounts_Garbage(t *testing.T) {
	_, err := UnmarshalAccounts([]byte(`{not json`))
	require.Error(t, err)
}

func TestAccountList_CloneIsIndependent(t *testing.T) {
	list := sampleAccounts()
	clone := list.Clone()

	clone[0].ShowPwd = false
	clone[1].Label = "changed"

	assert.True(t, list[0].ShowPwd)
	assert.Equal(t, "SSO", list[1].Label)
}

func TestAccountList_CloneNil(t *testing.T) {
	var list AccountList
	clone := list.Clone()
	require.NotNil(t, clone)
	assert.Empty(t, clone)
	assert.True(t, list.Equal(clone))
}

func TestAccountList_IndexOf(t *testing.T) {
	list := sampleAccounts()
	assert.Equal(t, 1, list.IndexOf("a-2"))
	assert.Equal(t, -1, list.IndexOf("missing"))
}

func TestAccount_RequiresPassword(t *testing.T) {
	assert.True(t, Account{Type: Local}.RequiresPassword())
	assert.False(t, Account{Type: External}.RequiresPassword())
}

func TestDraft_ToAccount(t *testing.T) {
	d := Draft{Label: "L", Login: "u", Password: "p", ShowPwd: true}
	a := d.ToAccount("id-1")

	assert.Equal(t, Account{ID: "id-1", Label: "L", Type: Local, Login: "u", Password: "p", ShowPwd: true}, a)
	assert.Equal(t, Local, NewDraft().Type)
}

func TestAccountType_Parse(t *testing.T) {
	tests := []struct {
		in      string
		want    AccountType
		wantErr bool
	}{
		{in: "Local", want: Local},
		{in: "External", want: External},
		{in: "", want: Local},
		{in: "local", wantErr: true},
		{in: "Other", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAccountType(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidAccountType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAccountType_NextAndJSON(t *testing.T) {
	assert.Equal(t, External, Local.Next())
	assert.Equal(t, Local, External.Next())

	data, err := json.Marshal(External)
	require.NoError(t, err)
	assert.Equal(t, `"External"`, string(data))
}

func TestErrorMap_KeysOrderAndString(t *testing.T) {
	m := ErrorMap{
		{Field: FieldPassword, Index: 1}: "Password is required",
		{Field: FieldLogin, Index: 0}:    "Login is required",
		{Field: FieldLabel, Index: 1}:    "Label is required",
	}

	keys := m.Keys()
	require.Len(t, keys, 3)
	assert.Equal(t, "login-0", keys[0].String())
	assert.Equal(t, "label-1", keys[1].String())
	assert.Equal(t, "password-1", keys[2].String())

	assert.True(t, m.Has(FieldPassword, 1))
	assert.False(t, m.Has(FieldPassword, 0))
	assert.Equal(t, "Login is required", m.Message(FieldLogin, 0))
}

func TestErrorMap_Clone(t *testing.T) {
	var nilMap ErrorMap
	assert.NotNil(t, nilMap.Clone())

	m := ErrorMap{{Field: FieldLogin, Index: 0}: "x"}
	c := m.Clone()
	delete(c, ErrorKey{Field: FieldLogin, Index: 0})
	assert.Len(t, m, 1)
}

func TestMarshalAccounts_UnsetTypeRoundTrip(t *testing.T) {
	list := AccountList{{ID: "z", Label: "zero", Login: "u", Password: "p"}}

	data, err := MarshalAccounts(list)
	require.NoError(t, err)

	got, err := UnmarshalAccounts(data)
	require.NoError(t, err)
	assert.True(t, list.Equal(got))
	assert.True(t, got[0].RequiresPassword(), "an unset type behaves as Local")
	assert.Equal(t, "Local", got[0].Type.String())
}

func TestErrorMap_WithoutIndex(t *testing.T) {
	m := ErrorMap{
		{Field: FieldLogin, Index: 0}:    "Login is required",
		{Field: FieldPassword, Index: 1}: "Password is required",
		{Field: FieldLabel, Index: 2}:    "Label is required",
	}

	assert.Equal(t, ErrorMap{
		{Field: FieldLogin, Index: 0}: "Login is required",
		{Field: FieldLabel, Index: 1}: "Label is required",
	}, m.WithoutIndex(1))

	assert.Equal(t, ErrorMap{
		{Field: FieldPassword, Index: 0}: "Password is required",
		{Field: FieldLabel, Index: 1}:    "Label is required",
	}, m.WithoutIndex(0))

	assert.Len(t, m, 3, "the receiver is not modified")
	assert.Empty(t, ErrorMap(nil).WithoutIndex(0))
}
