package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-deploy-config/internal/identity"
	"github.com/MKhiriev/go-deploy-config/internal/logger"
	"github.com/MKhiriev/go-deploy-config/internal/utils"
)

// auth is an HTTP middleware that gates write endpoints behind the external
// identity provider.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// verifies it via [service.AuthService.VerifyToken], and — on success —
// stores the authenticated identity in the request context under
// [utils.IdentityCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the
// following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value is not a "Bearer <token>" pair
//     ([ErrInvalidAuthorizationHeader] or [ErrEmptyToken]).
//   - The identity provider rejects the token ([identity.ErrInvalidToken])
//     or cannot be reached. A provider outage is indistinguishable from a
//     revoked token for the caller; the difference shows up in the server
//     log only.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		who, err := h.services.AuthService.VerifyToken(ctx, tokenString)

		if err != nil {
			switch {
			case errors.Is(err, identity.ErrInvalidToken):
				log.Err(err).Msg("token rejected by identity provider")
				http.Error(w, identity.ErrInvalidToken.Error(), http.StatusUnauthorized)
				return
			case errors.Is(err, identity.ErrProviderUnavailable):
				log.Err(err).Msg("identity provider unavailable")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			default:
				log.Err(err).Msg("error occurred during token verification")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
		}

		// Store the verified identity in the context so that downstream
		// handlers can retrieve it without re-verifying the token.
		ctx = context.WithValue(ctx, utils.IdentityCtxKey, who)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: Bearer <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts or the scheme is not "Bearer".
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 || parts[0] != "Bearer" {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
