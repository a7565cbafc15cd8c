// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"maps"
	"slices"
)

// Field names an editable attribute of an [Account].
type Field string

const (
	FieldLabel    Field = "label"
	FieldType     Field = "type"
	FieldLogin    Field = "login"
	FieldPassword Field = "password"
)

// fieldOrder is the column order used when sorting error keys.
var fieldOrder = map[Field]int{
	FieldLabel:    0,
	FieldType:     1,
	FieldLogin:    2,
	FieldPassword: 3,
}

// ErrorKey identifies one field of one record in an [ErrorMap].
type ErrorKey struct {
	Field Field
	Index int
}

// String renders the key as "<field>-<index>", e.g. "password-1".
func (k ErrorKey) String() string {
	return fmt.Sprintf("%s-%d", k.Field, k.Index)
}

// ErrorMap maps a field of a record to a human-readable validation message.
// It is recomputed wholesale on every validation attempt.
type ErrorMap map[ErrorKey]string

// Has reports whether the map holds a message for field of record index.
func (m ErrorMap) Has(field Field, index int) bool {
	_, ok := m[ErrorKey{Field: field, Index: index}]
	return ok
}

// Message returns the message stored for field of record index.
func (m ErrorMap) Message(field Field, index int) string {
	return m[ErrorKey{Field: field, Index: index}]
}

// Clone returns an independent copy. A nil map clones into an empty one.
func (m ErrorMap) Clone() ErrorMap {
	out := make(ErrorMap, len(m))
	maps.Copy(out, m)
	return out
}

// WithoutIndex returns the map as it applies after record index was removed
// from the list: entries of that record are dropped and entries of later
// records move down by one.
func (m ErrorMap) WithoutIndex(index int) ErrorMap {
	out := make(ErrorMap, len(m))
	for k, msg := range m {
		switch {
		case k.Index < index:
			out[k] = msg
		case k.Index > index:
			out[ErrorKey{Field: k.Field, Index: k.Index - 1}] = msg
		}
	}
	return out
}

// Keys returns the keys ordered by record index, then by column.
func (m ErrorMap) Keys() []ErrorKey {
	keys := slices.Collect(maps.Keys(m))
	slices.SortFunc(keys, func(a, b ErrorKey) int {
		if a.Index != b.Index {
			return a.Index - b.Index
		}
		return fieldOrder[a.Field] - fieldOrder[b.Field]
	})
	return keys
}
