package service

import (
	"context"

	"github.com/mkarev/go-jwt-auth/models"
)

// AuthService orchestrates the authentication lifecycle: registration,
// login, token issuance, and token validation.
type AuthService interface {
	// RegisterUser validates the registration request, hashes the
	// password, and persists the new account.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login verifies the credentials and issues a signed token bound to
	// the username. Unknown username and wrong password fail with the
	// same ErrInvalidCredentials.
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)

	// ParseToken validates a raw token string and returns its subject
	// (the username).
	ParseToken(ctx context.Context, raw string) (string, error)

	// UserInfo returns the account record for an authenticated
	// username.
	UserInfo(ctx context.Context, username string) (models.User, error)
}
