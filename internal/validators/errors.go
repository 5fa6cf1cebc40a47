package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidClientID     = errors.New("invalid client id")
	ErrInvalidFingerprint  = errors.New("invalid request fingerprint")
	ErrEmptyItems          = errors.New("items list cannot be empty")
	ErrMissingSyncID       = errors.New("sync id is required for updates and deletes")
	ErrInvalidAction       = errors.New("invalid sync action")
	ErrMissingResourceName = errors.New("resource name is required")
	ErrMissingPayload      = errors.New("payload is required")
	ErrUnexpectedPayload   = errors.New("deletes must not carry a payload")
	ErrNegativeTimestamp   = errors.New("last modified time cannot be negative")
	ErrNoQueries           = errors.New("at least one resource query is required")
)
