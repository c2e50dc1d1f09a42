package models

// Identity is the authenticated principal resolved by the external identity
// provider. The service never issues or verifies credentials itself; it only
// carries this record around after the provider has vouched for the token.
//
// Note: any valid identity may currently mutate any deployment's config.
// There is no ownership mapping between identities and deployment URLs —
// a known limitation of the design, not something this layer hides.
type Identity struct {
	// ID is the provider-side unique identifier of the principal
	// (the "sub" claim of the issued access token).
	ID string `json:"id"`

	// Email is the sign-in email address of the principal.
	Email string `json:"email"`

	// Role is the provider-assigned role string, if any
	// (e.g. "authenticated"). Informational only.
	Role string `json:"role,omitempty"`
}

// Session holds the token material issued by the identity provider after a
// successful sign-in. It is passed through to the caller verbatim; the
// server keeps no copy.
type Session struct {
	// AccessToken is the bearer token to present on subsequent
	// authenticated requests.
	AccessToken string `json:"access_token"`

	// TokenType is the token scheme, normally "bearer".
	TokenType string `json:"token_type"`

	// ExpiresIn is the access token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in"`

	// RefreshToken can be exchanged for a new access token once the
	// current one expires. Handled entirely by the provider.
	RefreshToken string `json:"refresh_token,omitempty"`
}
