package service

import (
	"fmt"

	"github.com/mkarev/go-jwt-auth/internal/config"
	"github.com/mkarev/go-jwt-auth/internal/logger"
	"github.com/mkarev/go-jwt-auth/internal/password"
	"github.com/mkarev/go-jwt-auth/internal/store"
	"github.com/mkarev/go-jwt-auth/internal/token"
)

// Services aggregates all application services the transport layer
// depends on.
type Services struct {
	AuthService AuthService
}

// NewServices constructs the service layer from the repositories and
// the auth configuration. The token codec and the password hasher are
// created here, once, and shared for the lifetime of the process.
func NewServices(storages *store.Storages, cfg config.Auth, logger *logger.Logger) (*Services, error) {
	codec, err := token.NewCodec(cfg.TokenSignKey, cfg.TokenIssuer, cfg.TokenDuration)
	if err != nil {
		return nil, fmt.Errorf("creating token codec: %w", err)
	}

	hasher := password.NewHasher(cfg.BcryptCost)

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, codec, hasher, cfg.MinPasswordLength, logger),
	}, nil
}
