package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-deploy-config/internal/logger"
	"github.com/MKhiriev/go-deploy-config/internal/store"
	"github.com/MKhiriev/go-deploy-config/internal/validators"
	"github.com/MKhiriev/go-deploy-config/models"
)

// configService is the concrete implementation of [ConfigService].
//
// It holds no state of its own: every piece of shared mutable state lives in
// the repository, so the service is safe for concurrent use and the only
// suspension points are the repository calls.
type configService struct {
	// deploymentRepository is the data-access layer for deployment rows.
	deploymentRepository store.DeploymentRepository

	// urlValidator enforces the canonical origin form of client-supplied
	// deployment URLs on the write path.
	urlValidator validators.Validator

	// now is the clock used for created_at/updated_at stamps. Overridable
	// in tests; defaults to time.Now.
	now func() time.Time

	// logger is the structured logger used for diagnostic output.
	logger *logger.Logger
}

// NewConfigService constructs a [ConfigService] wired to the given
// repository.
func NewConfigService(deploymentRepository store.DeploymentRepository, logger *logger.Logger) ConfigService {
	return &configService{
		deploymentRepository: deploymentRepository,
		urlValidator:         validators.NewDeploymentValidator(),
		now:                  time.Now,
		logger:               logger,
	}
}

// GetOrCreate performs the read path of the configuration store.
//
// On a hit the stored config is returned verbatim. On a miss a row with
// [models.DefaultConfigDocument] is inserted and the default returned. The
// insert is best-effort idempotent: when a concurrent caller wins the
// creation race, the resulting unique violation is converted into a single
// re-read of the winning row — the caller never observes the conflict.
func (s *configService) GetOrCreate(ctx context.Context, url string) (models.ConfigDocument, error) {
	log := logger.FromContext(ctx)

	if url == "" {
		return nil, ErrNoURLProvided
	}

	found, err := s.deploymentRepository.FindDeployment(ctx, url)
	if err == nil {
		return found.Config, nil
	}
	if !errors.Is(err, store.ErrDeploymentNotFound) {
		log.Err(err).Str("url", url).Msg("deployment lookup failed")
		return nil, fmt.Errorf("deployment lookup failed: %w", err)
	}

	// first sighting of this deployment — register it with the defaults
	created, err := s.deploymentRepository.InsertDeployment(ctx, url, models.DefaultConfigDocument(), s.now())
	if err == nil {
		log.Info().Str("url", url).Msg("registered new deployment with default config")
		return created.Config, nil
	}
	if !errors.Is(err, store.ErrDeploymentAlreadyExists) {
		log.Err(err).Str("url", url).Msg("deployment registration failed")
		return nil, fmt.Errorf("deployment registration failed: %w", err)
	}

	// a concurrent request created the row first — return the winner's config
	winner, err := s.deploymentRepository.FindDeployment(ctx, url)
	if err != nil {
		log.Err(err).Str("url", url).Msg("re-read after lost create race failed")
		return nil, fmt.Errorf("re-read after lost create race failed: %w", err)
	}

	return winner.Config, nil
}

// Upsert performs the write path of the configuration store.
//
// The raw payload is validated first ([models.ParseConfigDocument]: missing
// and malformed input fail distinctly, nothing is persisted on failure).
// The write itself is a single atomic insert-or-update round-trip, so a
// record that "disappears between the existence check and the write" cannot
// occur — there is no separate existence check.
func (s *configService) Upsert(ctx context.Context, url string, rawConfig json.RawMessage) (models.Deployment, bool, error) {
	log := logger.FromContext(ctx)

	if url == "" {
		return models.Deployment{}, false, ErrNoURLProvided
	}
	if err := s.urlValidator.Validate(ctx, url); err != nil {
		log.Err(err).Str("url", url).Msg("deployment URL rejected")
		return models.Deployment{}, false, err
	}

	doc, err := models.ParseConfigDocument(rawConfig)
	if err != nil {
		log.Err(err).Str("url", url).Msg("config payload rejected")
		return models.Deployment{}, false, err
	}

	stored, created, err := s.deploymentRepository.UpsertDeployment(ctx, url, doc, s.now())
	if err != nil {
		log.Err(err).Str("url", url).Msg("deployment upsert failed")
		return models.Deployment{}, false, fmt.Errorf("deployment upsert failed: %w", err)
	}

	if created {
		log.Info().Str("url", url).Msg("deployment created on write")
	} else {
		log.Debug().Str("url", url).Msg("deployment config updated")
	}

	return stored, created, nil
}
