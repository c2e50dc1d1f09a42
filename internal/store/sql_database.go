package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-deploy-config/internal/logger"
	"github.com/MKhiriev/go-deploy-config/migrations"
)

// DB wraps the shared *sql.DB handle together with the dialect-specific
// pieces the repositories need: the squirrel statement builder configured
// with the right placeholder format and the goose dialect name used when
// applying migrations.
type DB struct {
	*sql.DB
	builder sq.StatementBuilderType
	dialect string
	logger  *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
