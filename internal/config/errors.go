package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidSyncConfigs indicates invalid synchronization tunables
	// (for example, a negative download skew).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
)
