package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known
// failure conditions. Callers should use [errors.Is] to match against them.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// producer fails because the database uniqueness constraint on the
	// email column was violated. The constraint, not an application-level
	// pre-check, is the authoritative duplicate guard.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrProducerNotFound is returned when a query expected to match a
	// producer record produces an empty result set.
	ErrProducerNotFound = errors.New("producer was not found")

	// ErrLotNotFound is returned when a query or update targets a lot that
	// does not exist in the database.
	ErrLotNotFound = errors.New("lot was not found")

	// ErrEventNotFound is returned when a query or update targets an event
	// that does not exist in the database.
	ErrEventNotFound = errors.New("event was not found")

	// ErrNotificationNotFound is returned when a query or update targets a
	// notification that does not exist in the database.
	ErrNotificationNotFound = errors.New("notification was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain
// logic can be applied. They all map to 500-class responses.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. an empty update set).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails for reasons other than the domain conditions above.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
