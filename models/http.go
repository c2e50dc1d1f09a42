package models

import "encoding/json"

// UpdateConfigRequest is the body of POST /api/deployments/update-config.
type UpdateConfigRequest struct {
	// URL identifies the deployment whose config is being written. Required.
	URL string `json:"url"`

	// Config is the new configuration payload. It may arrive either as a
	// structured JSON value or as a JSON string containing serialized JSON;
	// normalisation happens in [ParseConfigDocument], not here.
	Config json.RawMessage `json:"config"`
}

// SignInResponse is the success body of the sign-in passthrough endpoint.
// User and Session are returned exactly as the identity provider issued them.
type SignInResponse struct {
	Message string   `json:"message"`
	User    Identity `json:"user"`
	Session Session  `json:"session"`
}

// UpdateConfigResponse is the success body of the update-config endpoint.
// Data carries the post-write state of the deployment row so the caller can
// confirm what was actually persisted.
type UpdateConfigResponse struct {
	Message string     `json:"message"`
	Data    Deployment `json:"data"`
}
