package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-accounts-keeper/models"
)

// Field name constants used to restrict Validate to a subset of fields.
const (
	// FieldLabel targets the user-facing account name.
	FieldLabel = string(models.FieldLabel)

	// FieldType targets the Local/External classification.
	FieldType = string(models.FieldType)

	// FieldLogin targets the account's user name.
	FieldLogin = string(models.FieldLogin)

	// FieldPassword targets the password, which is only checked for
	// accounts whose type is not External.
	FieldPassword = string(models.FieldPassword)
)

var defaultFields = []string{FieldLabel, FieldType, FieldLogin, FieldPassword}

// AccountValidator implements both [Validator] and [AddGate] for account
// records.
type AccountValidator struct {
	mode Mode
}

// NewAccountValidator constructs an AccountValidator operating in mode.
func NewAccountValidator(mode Mode) *AccountValidator {
	if mode == "" {
		mode = ModeExisting
	}
	return &AccountValidator{mode: mode}
}

// Mode returns the mode the validator was built with.
func (v *AccountValidator) Mode() Mode {
	return v.mode
}

// Validate dispatches on the dynamic type of obj. models.Account,
// *models.Account, models.Draft and *models.Draft are supported.
//
// Returns ErrUnsupportedType for anything else.
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Account:
		return v.validateAccount(ctx, value, fields...)
	case *models.Account:
		return v.validateAccount(ctx, *value, fields...)
	case models.Draft:
		return v.validateAccount(ctx, value.ToAccount(""), fields...)
	case *models.Draft:
		return v.validateAccount(ctx, value.ToAccount(""), fields...)
	default:
		return ErrUnsupportedType
	}
}

// validateAccount returns the first violation among fields, checked in the
// given order. All fields are checked when none are named.
func (v *AccountValidator) validateAccount(_ context.Context, a models.Account, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultFields
	}

	for _, f := range fields {
		switch f {
		case FieldLabel:
			if isBlank(a.Label) {
				return ErrEmptyLabel
			}
		case FieldType:
			if _, err := models.ParseAccountType(string(a.Type)); err != nil {
				return err
			}
		case FieldLogin:
			if isBlank(a.Login) {
				return ErrEmptyLogin
			}
		case FieldPassword:
			if a.RequiresPassword() && isBlank(a.Password) {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// ValidateAdd implements [AddGate].
//
// With an empty list in ModeExisting the add is always allowed. Otherwise
// every existing record is checked for label, login and (unless External)
// password. In ModeStrict the draft is checked too, keyed by the index the
// new record would take.
func (v *AccountValidator) ValidateAdd(_ context.Context, list models.AccountList, draft models.Draft) models.ErrorMap {
	errs := make(models.ErrorMap)

	for i, a := range list {
		collect(errs, a, i)
	}

	if v.mode == ModeStrict {
		collect(errs, draft.ToAccount(""), len(list))
	}

	return errs
}

func collect(errs models.ErrorMap, a models.Account, index int) {
	if isBlank(a.Label) {
		errs[models.ErrorKey{Field: models.FieldLabel, Index: index}] = MsgLabelRequired
	}
	if isBlank(a.Login) {
		errs[models.ErrorKey{Field: models.FieldLogin, Index: index}] = MsgLoginRequired
	}
	if a.RequiresPassword() && isBlank(a.Password) {
		errs[models.ErrorKey{Field: models.FieldPassword, Index: index}] = MsgPasswordRequired
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
