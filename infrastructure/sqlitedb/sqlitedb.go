// Package sqlitedb opens and migrates SQLite databases through database/sql
// and the pure Go modernc.org/sqlite driver.
package sqlitedb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jrazmi/crudkit/sdk/environment"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Set of error variables for CRUD operations.
var (
	ErrDBNotFound        = sql.ErrNoRows
	ErrDBDuplicatedEntry = errors.New("duplicated entry")
	ErrDBConstraint      = errors.New("constraint violation")
)

// Options represents the exportable database configuration
type Options struct {
	Path        string        `env:"SQLITE_PATH" default:"crudkit.db"`
	BusyTimeout time.Duration `env:"SQLITE_BUSY_TIMEOUT" default:"5s"`
}

// NewFromEnv opens the database described by the environment.
func NewFromEnv(prefix string) (*sql.DB, error) {
	var cfg Options
	if err := environment.ParseEnvTags(prefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing sqlite config: %w", err)
	}
	return Open(cfg)
}

// Open opens the database file, creating its directory when needed. The pool
// is limited to one connection so writers never contend for the file lock.
func Open(cfg Options) (*sql.DB, error) {
	if cfg.Path != ":memory:" {
		if dir := filepath.Dir(cfg.Path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("creating database directory: %w", err)
			}
		}
	}

	pragmas := url.Values{}
	pragmas.Add("_pragma", "foreign_keys(1)")
	pragmas.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", cfg.BusyTimeout.Milliseconds()))

	db, err := sql.Open("sqlite", cfg.Path+"?"+pragmas.Encode())
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

// StatusCheck returns nil if it can successfully talk to the database
func StatusCheck(ctx context.Context, db *sql.DB) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Second)
		defer cancel()
	}
	return db.PingContext(ctx)
}

// HandleError converts driver errors to the package error set.
func HandleError(err error) error {
	if err == nil {
		return nil
	}

	var serr *sqlite.Error
	if errors.As(err, &serr) {
		switch serr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
			return ErrDBDuplicatedEntry
		case sqlite3.SQLITE_CONSTRAINT_NOTNULL, sqlite3.SQLITE_CONSTRAINT_CHECK:
			return fmt.Errorf("%w: %s", ErrDBConstraint, serr.Error())
		case sqlite3.SQLITE_CONSTRAINT:
			if strings.Contains(serr.Error(), "UNIQUE constraint failed") {
				return ErrDBDuplicatedEntry
			}
			return fmt.Errorf("%w: %s", ErrDBConstraint, serr.Error())
		}
	}

	if errors.Is(err, sql.ErrNoRows) {
		return ErrDBNotFound
	}

	return err
}

// AddWhereClause appends the AND of conditions, if any.
func AddWhereClause(buf *strings.Builder, conditions []string) {
	if len(conditions) == 0 {
		return
	}
	buf.WriteString(" WHERE ")
	buf.WriteString(strings.Join(conditions, " AND "))
}

// AddOffsetLimitClause appends LIMIT/OFFSET. SQLite needs a LIMIT before any
// OFFSET, so an unbounded page with a skip uses LIMIT -1.
func AddOffsetLimitClause(buf *strings.Builder, args []any, skip int, limit int, bounded bool) []any {
	switch {
	case bounded:
		buf.WriteString(" LIMIT ?")
		args = append(args, limit)
	case skip > 0:
		buf.WriteString(" LIMIT -1")
	}
	if skip > 0 {
		buf.WriteString(" OFFSET ?")
		args = append(args, skip)
	}
	return args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// CaseFold is a SQL function lower-casing text the way strings.ToLower does.
// The built-in lower() only folds ASCII.
const CaseFold = "casefold"

func init() {
	sqlite.MustRegisterDeterministicScalarFunction(CaseFold, 1, func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
		switch v := args[0].(type) {
		case string:
			return strings.ToLower(v), nil
		case []byte:
			return strings.ToLower(string(v)), nil
		}
		return args[0], nil
	})
}

// ContainsClause matches column against a ContainsPattern argument,
// ignoring case for any script.
func ContainsClause(column string) string {
	return CaseFold + "(" + column + `) LIKE ? ESCAPE '\'`
}

// ContainsPattern returns the LIKE pattern used with ContainsClause to match
// term anywhere in a value.
func ContainsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}
