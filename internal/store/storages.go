package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-deploy-config/internal/config"
	"github.com/MKhiriev/go-deploy-config/internal/logger"
)

// Storages is the container of all repositories, constructed once at process
// start and injected into the service layer.
type Storages struct {
	DeploymentRepository DeploymentRepository
}

// NewStorages opens the database backend selected by cfg.DB.Driver, applies
// pending migrations, and wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	switch cfg.DB.Driver {
	case "sqlite3":
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		DeploymentRepository: NewDeploymentRepository(db, log),
	}, nil
}
