package identity

import "errors"

// Sentinel errors returned by [Provider] implementations. Callers should
// match against them with [errors.Is].
var (
	// ErrInvalidCredentials is returned when the provider rejects the
	// email/password pair during sign-in.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken is returned when the provider rejects a bearer token
	// presented for verification.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrProviderUnavailable is returned on transport failures and
	// unexpected provider-side errors. The operation that triggered the
	// call fails as a whole; nothing is retried.
	ErrProviderUnavailable = errors.New("identity provider unavailable")
)
