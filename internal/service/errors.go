package service

import "errors"

var (
	// ErrNoURLProvided is returned when a write request carries an empty
	// deployment URL.
	ErrNoURLProvided = errors.New("no deployment URL provided")

	// ErrInvalidDataProvided is returned when sign-in credentials are
	// missing required fields.
	ErrInvalidDataProvided = errors.New("invalid data provided")
)
