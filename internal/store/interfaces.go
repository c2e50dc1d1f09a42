package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-deploy-config/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/deployment_repository_mock.go -package=mock

// DeploymentRepository is the persistence collaborator of the configuration
// store: point lookups and atomic writes against the uniquely-keyed
// deployments table. It is the only shared mutable resource in the service —
// no in-process state is shared between requests.
type DeploymentRepository interface {
	// FindDeployment performs a point lookup by URL.
	// Returns [ErrDeploymentNotFound] when no row exists.
	FindDeployment(ctx context.Context, url string) (models.Deployment, error)

	// InsertDeployment persists a brand-new deployment row with both
	// timestamps set to now. Returns [ErrDeploymentAlreadyExists] when a
	// concurrent writer has already created a row for the same URL, so the
	// caller can fall back to re-reading the winner's record.
	InsertDeployment(ctx context.Context, url string, config models.ConfigDocument, now time.Time) (models.Deployment, error)

	// UpsertDeployment atomically creates the row if absent or updates its
	// config otherwise, in a single round-trip (insert-on-conflict-update),
	// leaving no check-then-act gap for concurrent writers to fall into.
	// A fresh row gets both timestamps set to now and revision 1; an
	// existing row keeps created_at, gets updated_at refreshed to now, and
	// its revision incremented.
	//
	// The returned flag reports whether the call created the row (true) or
	// updated an existing one (false), derived from the revision counter.
	UpsertDeployment(ctx context.Context, url string, config models.ConfigDocument, now time.Time) (models.Deployment, bool, error)
}
