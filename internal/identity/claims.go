package identity

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-deploy-config/models"
)

// identityClaims is the subset of the provider's access-token claim set the
// service cares about. Standard registered claims are embedded for "sub".
type identityClaims struct {
	jwt.RegisteredClaims

	Email string `json:"email"`
	Role  string `json:"role"`
}

// decodeIdentityClaims extracts the identity carried inside a
// provider-issued access token without verifying its signature. The token
// was just handed to us by the provider over the authenticated channel, so
// cryptographic verification stays the provider's job; this is purely a
// decode of what the provider already vouched for.
func decodeIdentityClaims(accessToken string) (models.Identity, error) {
	var claims identityClaims

	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(accessToken, &claims); err != nil {
		return models.Identity{}, fmt.Errorf("error parsing access token claims: %w", err)
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return models.Identity{}, fmt.Errorf("error extracting subject from access token: %w", err)
	}

	return models.Identity{
		ID:    subject,
		Email: claims.Email,
		Role:  claims.Role,
	}, nil
}
