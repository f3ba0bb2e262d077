package config

// Defaults applied by validate when the corresponding field was not set
// by any configuration source.
const (
	defaultHTTPAddress       = "localhost:8080"
	defaultTokenIssuer       = "go-jwt-auth"
	defaultTokenDuration     = "1h"
	defaultMinPasswordLength = 8
)

// validate checks that the final merged [StructuredConfig] satisfies
// all startup invariants and fills in defaults for optional fields.
//
// The token sign key and the database DSN have no safe defaults and
// must be provided by one of the configuration sources.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" {
		return ErrNoTokenSignKey
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrNoDatabaseDSN
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}

	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = defaultTokenIssuer
	}

	if cfg.Auth.TokenDuration <= 0 {
		cfg.Auth.TokenDuration = mustParseDuration(defaultTokenDuration)
	}

	if cfg.Auth.MinPasswordLength <= 0 {
		cfg.Auth.MinPasswordLength = defaultMinPasswordLength
	}

	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = "pgx"
	}

	switch cfg.Storage.DB.Driver {
	case "pgx", "sqlite3":
	default:
		return ErrUnknownDatabaseDriver
	}

	return nil
}
