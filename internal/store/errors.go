package store

import "errors"

// Sentinel errors returned by repository methods. Callers match them with
// [errors.Is].
var (
	// ErrLoginAlreadyExists is returned when registering a user whose login
	// is already taken.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrUserNotFound is returned when a lookup by login or id matches no
	// user record.
	ErrUserNotFound = errors.New("user not found")

	// ErrItemNotFound is returned when a query or mutation targets a vault
	// item (by client-side id and user id) that does not exist.
	ErrItemNotFound = errors.New("vault item not found")

	// ErrItemNotSaved is returned when an INSERT completes without a driver
	// error but affects zero rows, meaning nothing was persisted.
	ErrItemNotSaved = errors.New("vault item was not saved")
)

// Low-level database errors wrapped around driver failures.
var (
	// ErrBuildingQuery is returned when the query builder cannot produce SQL.
	ErrBuildingQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a query or statement fails at the
	// driver level.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when a result row cannot be scanned into
	// its destination.
	ErrScanningRow = errors.New("error scanning result row")
)
