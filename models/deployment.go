package models

import "time"

// Deployment represents a single tenant instance identified by its public
// base URL. It is the only entity persisted by the configuration store.
//
// A deployment row is created lazily: either on the first configuration read
// for an unknown URL (with [DefaultConfigDocument] as payload) or on the
// first authenticated write, whichever happens first. Rows are never deleted
// by this service.
type Deployment struct {
	// URL is the canonical deployment identifier, derived as the lowercase
	// "scheme://host" of the calling request's origin. Unique key of the
	// deployments table; never empty.
	URL string `json:"url"`

	// Config is the tenant-defined configuration payload. The store treats
	// it as an opaque JSON document and never interprets keys inside it.
	Config ConfigDocument `json:"config"`

	// CreatedAt is the timestamp of the row's creation. Set once by the
	// application (not by a SQL default) and never touched afterwards.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed on every successful write. It is the only
	// ordering disambiguator exposed to concurrent writers.
	UpdatedAt time.Time `json:"updated_at"`

	// Revision counts writes to the row: 1 after the creating insert,
	// incremented by every later upsert. Revision == 1 therefore identifies
	// a row the last write created, independent of timestamp resolution.
	Revision int64 `json:"revision"`
}

// TableName returns the name of the database table
// associated with the Deployment model.
func (d Deployment) TableName() string {
	return "deployments"
}
