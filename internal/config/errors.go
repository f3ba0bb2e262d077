package config

import (
	"errors"
	"time"
)

// Validation errors returned by [StructuredConfig.validate] when
// required configuration values are missing or invalid.
var (
	// ErrNoTokenSignKey indicates that no token signing key was
	// provided by any configuration source.
	ErrNoTokenSignKey = errors.New("token sign key is required")

	// ErrNoDatabaseDSN indicates that no database connection string was
	// provided by any configuration source.
	ErrNoDatabaseDSN = errors.New("database DSN is required")

	// ErrUnknownDatabaseDriver indicates that the configured database
	// driver is not one of the supported values.
	ErrUnknownDatabaseDriver = errors.New("unknown database driver")
)

func mustParseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		panic(err)
	}
	return d
}
