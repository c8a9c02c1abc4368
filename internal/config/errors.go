package config

import "errors"

// Validation errors returned by [Config.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database path or data directory).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidCacheConfigs indicates invalid cache settings
	// (for example, a non-positive TTL or entry cap).
	ErrInvalidCacheConfigs = errors.New("invalid cache configuration")
	// ErrInvalidNotifyConfigs indicates invalid scheduler timing settings
	// (for example, an anchor hour outside 0-23).
	ErrInvalidNotifyConfigs = errors.New("invalid notification configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative reschedule interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
