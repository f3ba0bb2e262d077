package store

import (
	"context"

	"github.com/mkarev/go-jwt-auth/models"
)

// UserRepository is the persistence contract for user accounts.
// Accounts are insert-only; there are no update or delete operations.
type UserRepository interface {
	// CreateUser persists a new account and returns it with
	// server-assigned fields populated. Returns ErrUserAlreadyExists
	// when the username or email is already taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername looks an account up by its unique username.
	// Returns ErrUserNotFound when no such account exists.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}
