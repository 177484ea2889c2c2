package storage

import "errors"

// Storage errors returned by System implementations.
var (
	// ErrNotFound indicates the requested key does not exist in storage.
	ErrNotFound = errors.New("storage: key not found")

	// ErrPermissionDenied indicates insufficient permissions to access the key.
	ErrPermissionDenied = errors.New("storage: permission denied")

	// ErrInvalidKey indicates the key is empty or escapes the store root.
	ErrInvalidKey = errors.New("storage: invalid key")

	// ErrForeignAddress indicates an address that was not issued by this store.
	ErrForeignAddress = errors.New("storage: address not issued by this store")
)
