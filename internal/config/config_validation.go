package config

import "time"

// Defaults applied after merging all configuration sources and before
// validation. Only zero fields are touched, so every source still wins over
// the default.
const (
	DefaultDriver          = "pgx"
	DefaultHTTPAddress     = "0.0.0.0:8080"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultIdentityTimeout = 10 * time.Second
)

func (cfg *StructuredConfig) setDefaults() {
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DefaultDriver
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Identity.RequestTimeout == 0 {
		cfg.Identity.RequestTimeout = DefaultIdentityTimeout
	}
	if cfg.Client.RequestTimeout == 0 {
		cfg.Client.RequestTimeout = DefaultRequestTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants the server needs at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.DB.Driver != "pgx" && cfg.Storage.DB.Driver != "sqlite3" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Identity.BaseURL == "" || cfg.Identity.APIKey == "" {
		return ErrInvalidIdentityConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.ServerAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
