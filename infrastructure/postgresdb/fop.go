package postgresdb

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// Set of directions for data ordering.
const (
	ASC  = "ASC"
	DESC = "DESC"
)

// AddWhereClause appends the AND of conditions, if any.
func AddWhereClause(buf *bytes.Buffer, conditions []string) {
	if len(conditions) == 0 {
		return
	}
	buf.WriteString(" WHERE ")
	buf.WriteString(strings.Join(conditions, " AND "))
}

// AddOrderByClause adds ORDER BY clause to the query buffer
func AddOrderByClause(buf *bytes.Buffer, orderField, direction string) error {
	quoted, err := QuoteIdentifier(orderField)
	if err != nil {
		return fmt.Errorf("invalid order field name: %w", err)
	}
	if direction != ASC && direction != DESC {
		return fmt.Errorf("invalid order direction: %s", direction)
	}

	buf.WriteString(fmt.Sprintf(" ORDER BY %s %s", quoted, direction))
	return nil
}

// AddOffsetLimitClause adds OFFSET and, when bounded, LIMIT.
func AddOffsetLimitClause(skip int, limit int, bounded bool, data pgx.NamedArgs, buf *bytes.Buffer) {
	if bounded {
		buf.WriteString(" LIMIT @limit")
		data["limit"] = limit
	}
	if skip > 0 {
		buf.WriteString(" OFFSET @offset")
		data["offset"] = skip
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern returns an ILIKE pattern matching term anywhere in a value.
func ContainsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
