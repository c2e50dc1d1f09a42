package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-deploy-config/models"
)

// deploymentColumns is the canonical column order shared by every query and
// every row scan in this package.
var deploymentColumns = []string{"url", "config", "created_at", "updated_at", "revision"}

// onConflictUpdate turns the insert into the atomic "insert if absent, else
// update" write required by the concurrent-create policy. Identical syntax
// on both backends (postgres and sqlite >= 3.24). RETURNING hands back the
// post-write row; revision stays 1 only when the write inserted the row, so
// the caller can tell a create from an update even when both land within
// the same timestamp tick.
const onConflictUpdate = `ON CONFLICT (url) DO UPDATE
	SET config = excluded.config, updated_at = excluded.updated_at, revision = deployments.revision + 1
	RETURNING url, config, created_at, updated_at, revision`

func buildFindDeployment(builder sq.StatementBuilderType, url string) (string, []any, error) {
	return builder.
		Select(deploymentColumns...).
		From("deployments").
		Where(sq.Eq{"url": url}).
		ToSql()
}

func buildInsertDeployment(builder sq.StatementBuilderType, url string, config models.ConfigDocument, now time.Time) (string, []any, error) {
	return builder.
		Insert("deployments").
		Columns(deploymentColumns...).
		Values(url, config, now, now, 1).
		Suffix("RETURNING url, config, created_at, updated_at, revision").
		ToSql()
}

func buildUpsertDeployment(builder sq.StatementBuilderType, url string, config models.ConfigDocument, now time.Time) (string, []any, error) {
	return builder.
		Insert("deployments").
		Columns(deploymentColumns...).
		Values(url, config, now, now, 1).
		Suffix(onConflictUpdate).
		ToSql()
}
