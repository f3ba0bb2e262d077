package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/mkarev/go-jwt-auth/models"
)

// userColumns is the canonical column order shared by every user query;
// scan destinations must match it.
var userColumns = []string{"id", "username", "email", "password_hash", "created_at"}

// buildCreateUserQuery builds the INSERT for a new user record. The
// RETURNING clause hands back the server-assigned fields so the caller
// receives the canonical database representation (supported by both
// PostgreSQL and SQLite 3.35+).
func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(user.TableName()).
		Columns("username", "email", "password_hash").
		Values(user.Username, user.Email, user.PasswordHash).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
}

// buildFindUserByUsernameQuery builds the lookup by unique username.
func buildFindUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
}
