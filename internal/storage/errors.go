package storage

import "errors"

// Common shared-state store errors
var (
	// ErrNotFound indicates that no value is stored under the requested key
	ErrNotFound = errors.New("value not found")

	// ErrStorageClosed indicates that the store is closed
	ErrStorageClosed = errors.New("storage is closed")

	// ErrDecodeFailed indicates that a stored value could not be decoded
	ErrDecodeFailed = errors.New("failed to decode stored value")
)
