package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-deploy-config/internal/logger"
	"github.com/MKhiriev/go-deploy-config/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestDeploymentRepo(t *testing.T) (*deploymentRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &deploymentRepository{
		db:     &DB{DB: db, builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar), logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func deploymentRows(url string, config string, createdAt, updatedAt time.Time, revision int64) *sqlmock.Rows {
	return sqlmock.
		NewRows([]string{"url", "config", "created_at", "updated_at", "revision"}).
		AddRow(url, config, createdAt, updatedAt, revision)
}

func TestFindDeployment_Success(t *testing.T) {
	repo, mock, db := newTestDeploymentRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery("SELECT url, config, created_at, updated_at, revision FROM deployments").
		WithArgs("https://app.example.com").
		WillReturnRows(deploymentRows("https://app.example.com", `{"theme":"dark"}`, now, now, 1))

	found, err := repo.FindDeployment(ctx, "https://app.example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.URL != "https://app.example.com" {
		t.Errorf("expected url to round-trip, got %s", found.URL)
	}
	if string(found.Config) != `{"theme":"dark"}` {
		t.Errorf("expected config to round-trip, got %s", found.Config)
	}
}

func TestFindDeployment_NotFound(t *testing.T) {
	repo, mock, db := newTestDeploymentRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT url, config, created_at, updated_at, revision FROM deployments").
		WithArgs("https://unknown.example.com").
		WillReturnRows(sqlmock.NewRows([]string{"url", "config", "created_at", "updated_at", "revision"}))

	_, err := repo.FindDeployment(context.Background(), "https://unknown.example.com")
	if !errors.Is(err, ErrDeploymentNotFound) {
		t.Fatalf("expected ErrDeploymentNotFound, got %v", err)
	}
}

func TestFindDeployment_QueryError(t *testing.T) {
	repo, mock, db := newTestDeploymentRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT url, config, created_at, updated_at, revision FROM deployments").
		WillReturnError(errors.New("db network error"))

	_, err := repo.FindDeployment(context.Background(), "https://app.example.com")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestInsertDeployment_Success(t *testing.T) {
	repo, mock, db := newTestDeploymentRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	config := models.DefaultConfigDocument()

	mock.ExpectQuery("INSERT INTO deployments").
		WithArgs("https://app.example.com", string(config), now, now, int64(1)).
		WillReturnRows(deploymentRows("https://app.example.com", string(config), now, now, 1))

	created, err := repo.InsertDeployment(ctx, "https://app.example.com", config, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.URL != "https://app.example.com" {
		t.Errorf("expected url to round-trip, got %s", created.URL)
	}
}

func TestInsertDeployment_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestDeploymentRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO deployments").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.InsertDeployment(context.Background(), "https://app.example.com", models.DefaultConfigDocument(), time.Now())
	if !errors.Is(err, ErrDeploymentAlreadyExists) {
		t.Fatalf("expected ErrDeploymentAlreadyExists, got %v", err)
	}
}

func TestInsertDeployment_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestDeploymentRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO deployments").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.InsertDeployment(context.Background(), "https://app.example.com", models.DefaultConfigDocument(), time.Now())
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestUpsertDeployment_Created(t *testing.T) {
	repo, mock, db := newTestDeploymentRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	// fresh insert: the row comes back with revision 1
	mock.ExpectQuery("INSERT INTO deployments").
		WithArgs("https://app.example.com", `{"theme":"dark"}`, now, now, int64(1)).
		WillReturnRows(deploymentRows("https://app.example.com", `{"theme":"dark"}`, now, now, 1))

	_, created, err := repo.UpsertDeployment(ctx, "https://app.example.com", models.ConfigDocument(`{"theme":"dark"}`), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Error("expected created=true for a fresh row")
	}
}

func TestUpsertDeployment_Updated(t *testing.T) {
	repo, mock, db := newTestDeploymentRepo(t)
	defer db.Close()

	ctx := context.Background()
	createdAt := time.Now().Add(-time.Hour)
	now := time.Now()

	// conflict path: the counter moves past 1 even though created_at is kept
	mock.ExpectQuery("INSERT INTO deployments").
		WithArgs("https://app.example.com", `{"theme":"dark"}`, now, now, int64(1)).
		WillReturnRows(deploymentRows("https://app.example.com", `{"theme":"dark"}`, createdAt, now, 2))

	_, created, err := repo.UpsertDeployment(ctx, "https://app.example.com", models.ConfigDocument(`{"theme":"dark"}`), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Error("expected created=false for an existing row")
	}
}

func TestUpsertDeployment_UpdateInSameTickAsCreate(t *testing.T) {
	repo, mock, db := newTestDeploymentRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	// update lands in the same clock tick as the creating insert: the
	// timestamps are indistinguishable, the revision counter is not
	mock.ExpectQuery("INSERT INTO deployments").
		WithArgs("https://app.example.com", `{"theme":"dark"}`, now, now, int64(1)).
		WillReturnRows(deploymentRows("https://app.example.com", `{"theme":"dark"}`, now, now, 2))

	_, created, err := repo.UpsertDeployment(ctx, "https://app.example.com", models.ConfigDocument(`{"theme":"dark"}`), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Error("expected created=false when the update shares the creation timestamp")
	}
}

func TestUpsertDeployment_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestDeploymentRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO deployments").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, _, err := repo.UpsertDeployment(context.Background(), "https://app.example.com", models.ConfigDocument(`{}`), time.Now())
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestIsUniqueViolation_ForeignCode(t *testing.T) {
	if isUniqueViolation(pgError(pgerrcode.SerializationFailure)) {
		t.Error("serialization failure must not be treated as a unique violation")
	}
	if isUniqueViolation(errors.New("plain error")) {
		t.Error("plain errors must not be treated as unique violations")
	}
}
