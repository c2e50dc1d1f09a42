// Package adapter provides transport-layer abstractions for communicating
// with the deployment configuration server.
//
// The primary abstraction is [ServerAdapter], which decouples the TUI client
// from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrBadGateway] for 502).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-deploy-config/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the deployment
// configuration server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful SignIn.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// SignIn authenticates the operator against POST /api/auth. On success
	// it stores the session's access token via SetToken and returns the
	// provider-issued identity and session. Returns [ErrUnauthorized]
	// (wrapped) if the server rejects the credentials.
	SignIn(ctx context.Context, creds models.Credentials) (models.Identity, models.Session, error)

	// GetConfig fetches the configuration of the deployment identified by
	// url via GET /api/config. The url is passed as the forwarded origin so
	// an operator can inspect any deployment's config from the terminal.
	GetConfig(ctx context.Context, url string) (models.ConfigDocument, error)

	// UpdateConfig writes a deployment's configuration via
	// POST /api/deployments/update-config. Requires a valid bearer token.
	// The returned response reports whether the write created the
	// deployment or replaced an existing config.
	UpdateConfig(ctx context.Context, req models.UpdateConfigRequest) (models.UpdateConfigResponse, error)

	// GetServerVersion fetches the server build version via
	// GET /api/version.
	GetServerVersion(ctx context.Context) (string, error)
}
