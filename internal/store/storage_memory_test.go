package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorage_RoundTrip(t *testing.T) {
	roundTripStorage(t, NewMemoryAccountStorage())
}

func TestMemoryStorage_RawAndSaves(t *testing.T) {
	s := NewMemoryAccountStorage()
	assert.Nil(t, s.Raw())
	assert.Zero(t, s.Saves())

	require.NoError(t, s.Save(context.Background(), testAccounts()))
	assert.Equal(t, 1, s.Saves())

	raw := s.Raw()
	raw[0] = 'X'
	assert.Equal(t, byte('['), s.Raw()[0], "Raw returns a copy")
}

func TestMemoryStorage_Closed(t *testing.T) {
	s := NewMemoryAccountStorage()
	require.NoError(t, s.Close())

	_, err := s.Load(context.Background())
	require.ErrorIs(t, err, ErrReadingSlot)
	require.ErrorIs(t, err, ErrStorageClosed)

	err = s.Save(context.Background(), testAccounts())
	require.ErrorIs(t, err, ErrWritingSlot)
}
