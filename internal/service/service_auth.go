package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-deploy-config/internal/identity"
	"github.com/MKhiriev/go-deploy-config/internal/logger"
	"github.com/MKhiriev/go-deploy-config/models"
)

// authService is the concrete implementation of [AuthService]. It is a thin
// passthrough to the external identity provider: no tokens are issued,
// cached, or interpreted here beyond presence checks.
type authService struct {
	// provider is the external identity provider performing the actual
	// credential and token verification.
	provider identity.Provider

	// logger is the structured logger used for diagnostic output.
	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] delegating to the given
// identity provider.
func NewAuthService(provider identity.Provider, logger *logger.Logger) AuthService {
	return &authService{
		provider: provider,
		logger:   logger,
	}
}

// SignIn forwards the credentials to the identity provider.
//
// Returns the provider-issued identity and session or:
//   - ErrInvalidDataProvided if email or password is empty;
//   - identity.ErrInvalidCredentials if the provider rejects the pair;
//   - identity.ErrProviderUnavailable on transport or provider failure.
func (a *authService) SignIn(ctx context.Context, creds models.Credentials) (models.Identity, models.Session, error) {
	log := logger.FromContext(ctx)

	if creds.Email == "" || creds.Password == "" {
		log.Error().Str("email", creds.Email).Msg("sign-in request with missing fields")
		return models.Identity{}, models.Session{}, ErrInvalidDataProvided
	}

	who, session, err := a.provider.SignIn(ctx, creds)
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("provider sign-in failed")
		return models.Identity{}, models.Session{}, fmt.Errorf("provider sign-in failed: %w", err)
	}

	log.Debug().Str("email", who.Email).Str("id", who.ID).Msg("user signed in")

	return who, session, nil
}

// VerifyToken resolves a bearer token to the identity it belongs to via the
// provider. Read-only verification call; no side effects.
func (a *authService) VerifyToken(ctx context.Context, token string) (models.Identity, error) {
	who, err := a.provider.Verify(ctx, token)
	if err != nil {
		return models.Identity{}, fmt.Errorf("provider token verification failed: %w", err)
	}

	return who, nil
}
