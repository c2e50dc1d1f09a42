package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-deploy-config/internal/logger"
	"github.com/MKhiriev/go-deploy-config/models"
)

// deploymentRepository is the SQL-backed implementation of
// [DeploymentRepository]. It runs all operations against the "deployments"
// table through the embedded [*DB], whose statement builder carries the
// placeholder format of the active backend.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type deploymentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDeploymentRepository constructs a [DeploymentRepository] backed by the
// provided database connection and logger.
func NewDeploymentRepository(db *DB, logger *logger.Logger) DeploymentRepository {
	logger.Debug().Msg("creating deployment repository")
	return &deploymentRepository{
		db:     db,
		logger: logger,
	}
}

// FindDeployment retrieves the deployment row whose URL matches url.
//
// Error handling:
//   - no matching row → [ErrDeploymentNotFound];
//   - query execution failure → wrapped [ErrExecutingQuery];
//   - scan failure → wrapped [ErrScanningRow].
func (r *deploymentRepository) FindDeployment(ctx context.Context, url string) (models.Deployment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindDeployment(r.db.builder, url)
	if err != nil {
		log.Err(err).Str("func", "*deploymentRepository.FindDeployment").Str("url", url).Msg("failed to build query")
		return models.Deployment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Deployment
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*deploymentRepository.FindDeployment").Str("url", url).Msg("error: query failed")
		return models.Deployment{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	// scan found deployment from db
	if err := row.Scan(&found.URL, &found.Config, &found.CreatedAt, &found.UpdatedAt, &found.Revision); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Deployment{}, ErrDeploymentNotFound
		}
		log.Err(err).Str("func", "*deploymentRepository.FindDeployment").Str("url", url).Msg("error: scanning error")
		return models.Deployment{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// InsertDeployment persists a brand-new deployment row and returns the
// canonical database representation of what was written.
//
// Error handling:
//   - unique violation (a concurrent writer created the row first) →
//     [ErrDeploymentAlreadyExists], so the caller can re-read the winner;
//   - any other driver-level error → wrapped "unexpected DB error";
//   - scan failure → wrapped [ErrScanningRow].
func (r *deploymentRepository) InsertDeployment(ctx context.Context, url string, config models.ConfigDocument, now time.Time) (models.Deployment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertDeployment(r.db.builder, url, config, now)
	if err != nil {
		log.Err(err).Str("func", "*deploymentRepository.InsertDeployment").Str("url", url).Msg("failed to build query")
		return models.Deployment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Deployment
	row := r.db.QueryRowContext(ctx, query, args...)

	// create deployment in db
	if err := row.Err(); err != nil {
		if isUniqueViolation(err) {
			log.Debug().Str("url", url).Msg("lost deployment create race")
			return models.Deployment{}, ErrDeploymentAlreadyExists
		}
		log.Err(err).Str("func", "*deploymentRepository.InsertDeployment").Str("url", url).Msg("error: insert failed")
		return models.Deployment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan saved deployment from db
	if err := row.Scan(&created.URL, &created.Config, &created.CreatedAt, &created.UpdatedAt, &created.Revision); err != nil {
		if isUniqueViolation(err) {
			log.Debug().Str("url", url).Msg("lost deployment create race")
			return models.Deployment{}, ErrDeploymentAlreadyExists
		}
		log.Err(err).Str("func", "*deploymentRepository.InsertDeployment").Str("url", url).Msg("error: scanning error")
		return models.Deployment{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// UpsertDeployment writes config for url in one atomic round-trip:
// INSERT ... ON CONFLICT (url) DO UPDATE ... RETURNING. There is no
// existence check preceding the write, so two concurrent calls for the same
// unseen URL cannot produce a duplicate row or a visible uniqueness error —
// the database serialises them into one insert and one update.
//
// The created flag is derived from the returned revision counter: an insert
// writes revision 1, a conflicting write increments it. Timestamps are not
// consulted, so an update landing in the same clock tick as the creation is
// still reported as an update.
func (r *deploymentRepository) UpsertDeployment(ctx context.Context, url string, config models.ConfigDocument, now time.Time) (models.Deployment, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertDeployment(r.db.builder, url, config, now)
	if err != nil {
		log.Err(err).Str("func", "*deploymentRepository.UpsertDeployment").Str("url", url).Msg("failed to build query")
		return models.Deployment{}, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var stored models.Deployment
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*deploymentRepository.UpsertDeployment").Str("url", url).Msg("error: upsert failed")
		return models.Deployment{}, false, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan post-write state from db
	if err := row.Scan(&stored.URL, &stored.Config, &stored.CreatedAt, &stored.UpdatedAt, &stored.Revision); err != nil {
		log.Err(err).Str("func", "*deploymentRepository.UpsertDeployment").Str("url", url).Msg("error: scanning error")
		return models.Deployment{}, false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	created := stored.Revision == 1

	return stored, created, nil
}
