package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (empty DSN or an unsupported driver name).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidIdentityConfigs indicates invalid identity provider settings
	// (missing base URL or API key).
	ErrInvalidIdentityConfigs = errors.New("invalid identity provider configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (missing server address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
