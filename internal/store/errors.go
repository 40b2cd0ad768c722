package store

import "errors"

// Sentinel errors returned by the default loaders. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrInvalidDefault is returned when a defaults entry lacks its project,
	// key, type or value.
	ErrInvalidDefault = errors.New("invalid default entry")

	// ErrDuplicateDefault is returned when two entries of one source share a
	// composite key.
	ErrDuplicateDefault = errors.New("duplicate default entry")

	// ErrReadingDefaults is returned when a defaults file cannot be read or
	// decoded.
	ErrReadingDefaults = errors.New("error reading defaults file")
)

// Low-level database operation errors.
var (
	// ErrOpeningDatabase is returned when the SQLite file cannot be opened or
	// pinged.
	ErrOpeningDatabase = errors.New("error opening defaults database")

	// ErrBuildingSQLQuery is returned when constructing the SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when the SELECT against the defaults
	// table fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when a defaults row cannot be scanned.
	ErrScanningRow = errors.New("failed to scan default row")
)
