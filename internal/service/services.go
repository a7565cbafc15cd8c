package service

import (
	"github.com/MKhiriev/go-accounts-keeper/internal/logger"
	"github.com/MKhiriev/go-accounts-keeper/internal/store"
	"github.com/MKhiriev/go-accounts-keeper/internal/utils"
	"github.com/MKhiriev/go-accounts-keeper/internal/validators"
)

// ClientServices groups the services used by the interactive client.
type ClientServices struct {
	Store          *AccountStore
	AccountService AccountService
	Validator      *validators.AccountValidator
}

// NewClientServices wires the account store over storage and the account
// service gated by a validator running in mode.
func NewClientServices(storage store.AccountStorage, mode validators.Mode, log *logger.Logger) *ClientServices {
	ids := utils.NewUUIDGenerator()
	accountStore := NewAccountStore(storage, ids, log)
	validator := validators.NewAccountValidator(mode)

	return &ClientServices{
		Store:          accountStore,
		AccountService: NewAccountService(accountStore, validator, ids, log),
		Validator:      validator,
	}
}
