package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDeploymentNotFound is returned when a point lookup by URL matches
	// no deployment row.
	ErrDeploymentNotFound = errors.New("deployment was not found")

	// ErrDeploymentAlreadyExists is returned when an INSERT loses a create
	// race: a row for the same URL was committed by a concurrent writer
	// between this caller's lookup and its insert. The read path converts
	// it into a re-read of the winning row rather than surfacing it.
	ErrDeploymentAlreadyExists = errors.New("deployment already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails for a reason other than a recognised constraint
	// violation.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan deployment row")
)
