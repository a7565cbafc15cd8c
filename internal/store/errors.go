package store

import "errors"

// Sentinel errors returned by storage backends. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrUnknownDriver is returned when the configured storage driver is not
	// one of the supported backends.
	ErrUnknownDriver = errors.New("unknown storage driver")

	// ErrReadingSlot is returned when the persisted slot cannot be read.
	ErrReadingSlot = errors.New("failed to read account slot")

	// ErrWritingSlot is returned when overwriting the persisted slot fails.
	ErrWritingSlot = errors.New("failed to write account slot")

	// ErrDecodingSlot is returned when the slot holds a value that is not a
	// valid serialized account list.
	ErrDecodingSlot = errors.New("failed to decode account slot")

	// ErrStorageClosed is returned by the memory backend after Close.
	ErrStorageClosed = errors.New("storage is closed")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrOpeningDatabase is returned when the database file cannot be opened
	// or does not answer a ping.
	ErrOpeningDatabase = errors.New("error opening database")
)
