package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarev/go-jwt-auth/models"
)

func TestBuildCreateUserQuery_Postgres(t *testing.T) {
	b := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	user := models.User{
		Username:     "john",
		Email:        "john@example.com",
		PasswordHash: "hash",
	}

	query, args, err := buildCreateUserQuery(b, user)
	require.NoError(t, err)

	require.Len(t, args, 3)
	assert.Equal(t, "john", args[0])
	assert.Equal(t, "john@example.com", args[1])
	assert.Equal(t, "hash", args[2])

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into users")
	assert.Contains(t, q, "returning")
	for _, c := range userColumns {
		assert.Contains(t, q, c)
	}

	// placeholder format should be $N (Postgres)
	assert.Contains(t, query, "$1")
	assert.NotContains(t, query, "?")
}

func TestBuildCreateUserQuery_SQLitePlaceholders(t *testing.T) {
	b := sq.StatementBuilder.PlaceholderFormat(sq.Question)

	query, _, err := buildCreateUserQuery(b, models.User{Username: "john"})
	require.NoError(t, err)

	assert.Contains(t, query, "?")
	assert.NotContains(t, query, "$1")
}

func TestBuildFindUserByUsernameQuery(t *testing.T) {
	b := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query, args, err := buildFindUserByUsernameQuery(b, "john")
	require.NoError(t, err)

	require.Len(t, args, 1)
	assert.Equal(t, "john", args[0])

	q := strings.ToLower(query)
	assert.Contains(t, q, "select")
	assert.Contains(t, q, "from users")
	assert.Contains(t, q, "where username = $1")
	for _, c := range userColumns {
		assert.Contains(t, q, c)
	}
}
