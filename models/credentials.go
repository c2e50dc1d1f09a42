package models

// Credentials is the sign-in request body accepted by the passthrough
// endpoint and forwarded to the identity provider unchanged.
type Credentials struct {
	// Email is the account email address. Required.
	Email string `json:"email"`

	// Password is the account password. Required. Must never be logged;
	// handlers log only the email when tracing sign-in attempts.
	Password string `json:"password"`
}
