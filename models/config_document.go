package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors returned by [ParseConfigDocument]. Callers should match
// against them with [errors.Is].
var (
	// ErrEmptyConfig is returned when the config field is absent from the
	// request or decodes to zero bytes. Checked before any parsing happens.
	ErrEmptyConfig = errors.New("no config provided")

	// ErrInvalidConfigJSON is returned when the config field arrives as a
	// JSON string whose content does not itself parse as JSON.
	ErrInvalidConfigJSON = errors.New("invalid JSON in config")
)

// ConfigDocument is an opaque, syntactically valid JSON document associated
// with a deployment. The service validates the payload once at the boundary
// and from then on moves it around verbatim: no re-serialization, no key
// interpretation, byte-for-byte persistence.
//
// The zero value (nil) means "no document".
type ConfigDocument []byte

// DefaultConfigDocument returns the payload materialised for a deployment
// URL that has never been written to.
func DefaultConfigDocument() ConfigDocument {
	return ConfigDocument(`{"featureEnabled": false, "theme": "light"}`)
}

// ParseConfigDocument normalises the raw config field of an inbound request
// into a [ConfigDocument].
//
// Callers may send the config either as an already-structured JSON value or
// as a JSON string containing serialized JSON (the original web form posts
// the textarea content as a string). The two cases are handled as follows:
//   - empty input → [ErrEmptyConfig], before any parsing is attempted;
//   - JSON string → the content is unquoted and must itself parse as JSON,
//     otherwise [ErrInvalidConfigJSON]; no partial result is returned;
//   - anything else → accepted verbatim (it already passed the request-body
//     decoder, so it is structurally valid JSON).
func ParseConfigDocument(raw json.RawMessage) (ConfigDocument, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, ErrEmptyConfig
	}

	if trimmed[0] != '"' {
		return ConfigDocument(trimmed), nil
	}

	// config arrived as a string — unquote and parse the content
	var inner string
	if err := json.Unmarshal(trimmed, &inner); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfigJSON, err)
	}

	innerBytes := bytes.TrimSpace([]byte(inner))
	if !json.Valid(innerBytes) {
		return nil, ErrInvalidConfigJSON
	}

	return ConfigDocument(innerBytes), nil
}

// MarshalJSON implements [json.Marshaler]. The document is emitted verbatim;
// a nil document marshals as JSON null.
func (d ConfigDocument) MarshalJSON() ([]byte, error) {
	if len(d) == 0 {
		return []byte("null"), nil
	}
	return d, nil
}

// UnmarshalJSON implements [json.Unmarshaler]. The raw bytes are stored
// as-is, mirroring json.RawMessage.
func (d *ConfigDocument) UnmarshalJSON(data []byte) error {
	if d == nil {
		return errors.New("ConfigDocument: UnmarshalJSON on nil pointer")
	}
	*d = append((*d)[:0], data...)
	return nil
}

// Value implements [driver.Valuer] so the document can be bound directly as
// a query argument. The store never persists an unvalidated document, so an
// empty value here indicates a programming error.
func (d ConfigDocument) Value() (driver.Value, error) {
	if len(d) == 0 {
		return nil, errors.New("refusing to persist an empty config document")
	}
	return string(d), nil
}

// Scan implements [sql.Scanner] for reading the document back from either
// backend (postgres returns []byte for jsonb, sqlite returns string).
func (d *ConfigDocument) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		*d = append((*d)[:0], v...)
		return nil
	case string:
		*d = ConfigDocument(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into ConfigDocument", src)
	}
}

// String returns the document as a plain string. Implements [fmt.Stringer].
func (d ConfigDocument) String() string {
	return string(d)
}
