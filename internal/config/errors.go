package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration is incomplete or invalid.
var (
	// ErrMissingDatabaseDSN indicates that production mode was enabled
	// without a database connection string.
	ErrMissingDatabaseDSN = errors.New("database DSN is required in production mode")

	// ErrMissingTokenSignKey indicates that production mode was enabled
	// without a JWT signing secret.
	ErrMissingTokenSignKey = errors.New("token sign key is required in production mode")

	// ErrMissingCORSOrigins indicates that production mode was enabled
	// without a CORS origin allow-list.
	ErrMissingCORSOrigins = errors.New("CORS origin allow-list is required in production mode")

	// ErrInvalidSchemaInitPolicy indicates an unrecognised schema
	// initializer failure policy value.
	ErrInvalidSchemaInitPolicy = errors.New(`schema init policy must be "continue" or "failfast"`)
)
