// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyURL         = errors.New("deployment URL cannot be empty")
	ErrUnparsableURL    = errors.New("deployment URL cannot be parsed")
	ErrInvalidURLScheme = errors.New("deployment URL scheme must be http or https")
	ErrMissingURLHost   = errors.New("deployment URL must include a host")
	ErrURLNotAnOrigin   = errors.New("deployment URL must not include path, query, or fragment")
)
