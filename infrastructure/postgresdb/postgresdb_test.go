package postgresdb_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jrazmi/crudkit/infrastructure/postgresdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteIdentifier(t *testing.T) {
	q, err := postgresdb.QuoteIdentifier("created_at")
	require.NoError(t, err)
	assert.Equal(t, `"created_at"`, q)

	for _, bad := range []string{"", "id; DROP TABLE todos", `na"me`, "1abc", "a.b"} {
		_, err := postgresdb.QuoteIdentifier(bad)
		assert.Error(t, err, bad)
	}
}

func TestQueryClauses(t *testing.T) {
	var buf bytes.Buffer
	args := pgx.NamedArgs{}

	buf.WriteString("SELECT * FROM todos")
	postgresdb.AddWhereClause(&buf, []string{"completed = @completed", "title ILIKE @search"})
	require.NoError(t, postgresdb.AddOrderByClause(&buf, "id", postgresdb.ASC))
	postgresdb.AddOffsetLimitClause(5, 10, true, args, &buf)

	assert.Equal(t, `SELECT * FROM todos WHERE completed = @completed AND title ILIKE @search ORDER BY "id" ASC LIMIT @limit OFFSET @offset`, buf.String())
	assert.Equal(t, 10, args["limit"])
	assert.Equal(t, 5, args["offset"])
}

func TestUnboundedPage(t *testing.T) {
	var buf bytes.Buffer
	args := pgx.NamedArgs{}
	postgresdb.AddOffsetLimitClause(0, -1, false, args, &buf)
	assert.Empty(t, buf.String())
	assert.Empty(t, args)
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, `%docker%`, postgresdb.ContainsPattern("docker"))
	assert.Equal(t, `%50\%\_off%`, postgresdb.ContainsPattern("50%_off"))
}

func TestHandlePgError(t *testing.T) {
	assert.NoError(t, postgresdb.HandlePgError(nil))
	assert.ErrorIs(t, postgresdb.HandlePgError(pgx.ErrNoRows), postgresdb.ErrDBNotFound)
	assert.ErrorIs(t, postgresdb.HandlePgError(&pgconn.PgError{Code: "23505"}), postgresdb.ErrDBDuplicatedEntry)

	err := postgresdb.HandlePgError(&pgconn.PgError{Code: "23502", Message: `null value in column "title"`})
	assert.ErrorIs(t, err, postgresdb.ErrDBConstraint)
	assert.Contains(t, err.Error(), `"title"`)

	other := errors.New("boom")
	assert.Equal(t, other, postgresdb.HandlePgError(other))
}

func TestOpenRejectsBadURL(t *testing.T) {
	_, err := postgresdb.Open(postgresdb.Options{DatabaseURL: "postgres://localhost:99999999/crudkit"})
	assert.ErrorContains(t, err, "parsing connection string")
}
