package schemalens

import "errors"

// Common errors used throughout the schemalens package
var (
	// ErrNoTables is returned when a schema document does not contain a tables array.
	// Schema document errors
	ErrNoTables = errors.New("schema document must contain a tables array")

	// ErrEmptyViewName is returned when a view name is empty after sanitization.
	// View specification errors
	ErrEmptyViewName = errors.New("view name is empty after sanitization")
	// ErrInvalidJoinType indicates a join type outside INNER/LEFT/RIGHT/FULL/CROSS.
	ErrInvalidJoinType = errors.New("invalid join type")
	// ErrNilQuery indicates a nil query specification was handed to the compiler.
	ErrNilQuery = errors.New("query specification is nil")

	// ErrConfigValidation is returned when configuration validation fails.
	// Configuration errors
	ErrConfigValidation = errors.New("configuration validation failed")

	// ErrUnsupportedDriver indicates a database driver outside sqlite3/pgx/mysql.
	// Schema source errors
	ErrUnsupportedDriver = errors.New("unsupported database driver")
	// ErrNoViewsFound indicates a views file contained no view definitions.
	ErrNoViewsFound = errors.New("no view definitions found")
	// ErrEnvironmentNotConfigured indicates a database environment is missing from config.
	ErrEnvironmentNotConfigured = errors.New("database environment not configured")
)
