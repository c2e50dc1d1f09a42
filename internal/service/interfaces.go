package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-deploy-config/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// ConfigService is the business layer of the deployment configuration
// store: idempotent read-or-default on the read path, validated atomic
// create-or-update on the write path.
type ConfigService interface {
	// GetOrCreate returns the stored config for url verbatim, lazily
	// materialising a row with the default payload when none exists.
	// Losing the creation race to a concurrent caller is not an error:
	// the winner's config is re-read and returned.
	GetOrCreate(ctx context.Context, url string) (models.ConfigDocument, error)

	// Upsert validates rawConfig and writes it for url, creating the row
	// if absent. Returns the post-write record and whether it was created
	// (true) or updated (false).
	Upsert(ctx context.Context, url string, rawConfig json.RawMessage) (models.Deployment, bool, error)
}

// AuthService fronts the external identity provider: sign-in passthrough
// and bearer-token verification. No credential material is interpreted or
// stored locally.
type AuthService interface {
	SignIn(ctx context.Context, creds models.Credentials) (models.Identity, models.Session, error)
	VerifyToken(ctx context.Context, token string) (models.Identity, error)
}

// AppInfoService exposes build/version information about the running
// application.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
