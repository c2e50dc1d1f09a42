package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// ServerAddress is the base URL of the deployment configuration server.
	ServerAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientApp holds client-side application settings.
type ClientApp struct {
	// Version is the client build version shown in the TUI footer.
	Version string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig]. Server-only settings (database, identity provider)
// are deliberately not carried over and not validated here.
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error building client config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			ServerAddress:  cfg.Client.ServerAddress,
			RequestTimeout: cfg.Client.RequestTimeout,
		},
	}

	return clientCfg, clientCfg.validate()
}
