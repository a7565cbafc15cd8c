package service

import "errors"

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrUnknownField    = errors.New("unknown account field")
	ErrPersistAccounts = errors.New("failed to persist accounts")
	ErrLoadAccounts    = errors.New("failed to load accounts")
)
