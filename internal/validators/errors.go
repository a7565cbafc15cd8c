package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
	ErrUnknownMode     = errors.New("unknown validation mode")

	ErrEmptyLabel    = errors.New("label is required")
	ErrEmptyLogin    = errors.New("login is required")
	ErrEmptyPassword = errors.New("password is required")
)

// Messages stored in models.ErrorMap for each violated field.
const (
	MsgLabelRequired    = "Label is required"
	MsgLoginRequired    = "Login is required"
	MsgPasswordRequired = "Password is required"
)
