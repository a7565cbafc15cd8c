package store

import (
	"fmt"

	"github.com/MKhiriev/go-accounts-keeper/models"
)

// decodeSlot turns the raw slot value into a list. A nil value means the key
// was never written.
func decodeSlot(raw []byte) (models.AccountList, error) {
	if raw == nil {
		return models.AccountList{}, nil
	}

	accounts, err := models.UnmarshalAccounts(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingSlot, err)
	}
	return accounts, nil
}

func encodeSlot(accounts models.AccountList) ([]byte, error) {
	raw, err := models.MarshalAccounts(accounts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWritingSlot, err)
	}
	return raw, nil
}
