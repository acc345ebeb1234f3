package postgresdb

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
)

// QueryLogger is a pgx.QueryTracer writing every statement to a logger at
// debug level, and failures at error level.
type QueryLogger struct {
	log *slog.Logger
}

func NewQueryLogger(log *slog.Logger) *QueryLogger {
	return &QueryLogger{log: log}
}

var (
	openParen     = regexp.MustCompile(`\s*\(\s*`)
	closeParen    = regexp.MustCompile(`\s+\)`)
	collapseSpace = regexp.MustCompile(`\s+`)
)

// compactSQL folds a multi-line statement onto one line.
func compactSQL(sql string) string {
	out := collapseSpace.ReplaceAllString(sql, " ")
	out = openParen.ReplaceAllString(out, "(")
	out = closeParen.ReplaceAllString(out, ")")
	return strings.TrimSpace(out)
}

type queryStartKey struct{}

type queryStart struct {
	at  time.Time
	sql string
}

func (q *QueryLogger) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	sql := compactSQL(data.SQL)
	q.log.DebugContext(ctx, "query start", "sql", sql, "args", data.Args)
	return context.WithValue(ctx, queryStartKey{}, queryStart{at: time.Now(), sql: sql})
}

func (q *QueryLogger) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	start, _ := ctx.Value(queryStartKey{}).(queryStart)

	var elapsed time.Duration
	if !start.at.IsZero() {
		elapsed = time.Since(start.at)
	}

	if data.Err != nil {
		q.log.ErrorContext(ctx, "query failed",
			"sql", start.sql,
			"err", data.Err,
			"elapsed", elapsed,
		)
		return
	}

	q.log.DebugContext(ctx, "query end",
		"command_tag", data.CommandTag.String(),
		"rows", data.CommandTag.RowsAffected(),
		"elapsed", elapsed,
	)
}
