// Package identity integrates the external identity provider that performs
// sign-in and bearer-token verification for the service.
//
// The primary abstraction is [Provider], which decouples the service layer
// from the provider's REST protocol. The package ships an HTTP
// implementation ([NewHTTPProvider]) targeting a GoTrue-style auth API.
//
// This service never issues or validates credentials itself: both
// capabilities are delegated to the provider, and provider-side rejections
// are mapped to the sentinel errors in errors.go so that callers can use
// [errors.Is] for transport-agnostic handling.
package identity

import (
	"context"

	"github.com/MKhiriev/go-deploy-config/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/identity_provider_mock.go -package=mock

// Provider defines the two capabilities this service consumes from the
// external identity provider.
type Provider interface {
	// SignIn exchanges email/password credentials for an identity and a
	// token session. Returns [ErrInvalidCredentials] when the provider
	// rejects the credentials, [ErrProviderUnavailable] on transport or
	// provider-side failures.
	SignIn(ctx context.Context, creds models.Credentials) (models.Identity, models.Session, error)

	// Verify resolves a bearer token to the identity it was issued for.
	// Read-only; no side effects. Returns [ErrInvalidToken] when the
	// provider rejects the token, [ErrProviderUnavailable] on transport or
	// provider-side failures.
	Verify(ctx context.Context, token string) (models.Identity, error)
}
