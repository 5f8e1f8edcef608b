package flagkit

import "errors"

var (
	// ErrNoDecryptionKey is returned when an encrypted payload arrives
	// and no decryption key was configured.
	ErrNoDecryptionKey = errors.New("no decryption key provided")

	// ErrInvalidResponseValueType is returned by the typed feature
	// accessors when the evaluated value does not have the requested
	// type. The accessor still returns the caller-supplied default.
	ErrInvalidResponseValueType = errors.New("invalid response value type")
)
