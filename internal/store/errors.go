package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrRecordNotFound is returned when a read, update or delete targets a
	// resource record that does not exist (or is outside the caller's
	// organization scope).
	ErrRecordNotFound = errors.New("record was not found")

	// ErrDuplicateRecord is returned when an INSERT or UPDATE violates a
	// unique constraint on a resource table.
	ErrDuplicateRecord = errors.New("record already exists")

	// ErrNoWritableFields is returned when a create or update payload contains
	// no keys from the resource's writable column allow-list.
	ErrNoWritableFields = errors.New("no writable fields in payload")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning column values from a result
	// set fails, typically mid-iteration.
	ErrScanningRows = errors.New("failed to scan result rows")
)
