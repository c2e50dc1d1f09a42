// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded as
	// JSON at all.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidDataProvided is returned when the request body decodes but
	// fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidEmailPassword is returned when the identity provider rejects
	// the supplied email/password combination.
	MsgInvalidEmailPassword = "invalid email/password"

	// MsgIdentityProviderUnavailable is returned when the external identity
	// provider cannot be reached or fails unexpectedly.
	MsgIdentityProviderUnavailable = "identity provider unavailable"

	// MsgDeploymentCreated is returned when an update-config write had to
	// register the deployment first.
	MsgDeploymentCreated = "deployment created"

	// MsgDeploymentConfigUpdated is returned when an update-config write
	// replaced the config of an existing deployment.
	MsgDeploymentConfigUpdated = "deployment config updated"

	// MsgSignInSuccessful is returned in the body of a successful sign-in
	// passthrough response.
	MsgSignInSuccessful = "sign-in successful"
)
