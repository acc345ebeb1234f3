package fopbridge

import (
	"context"
	"net/http"
	"strconv"

	"github.com/jrazmi/crudkit/core/scaffolding/fop"
	"github.com/jrazmi/crudkit/infrastructure/web"
)

// TotalCountHeader carries the number of records matching a list filter.
const TotalCountHeader = "X-Total-Count"

// ParsePage reads the skip and limit query parameters.
func ParsePage(r *http.Request) (fop.Page, error) {
	return fop.ParsePage(web.QueryParam(r, "skip"), web.QueryParam(r, "limit"))
}

// SetTotalCount writes the total count header for the current request.
func SetTotalCount(ctx context.Context, n int) {
	if w := web.GetWriter(ctx); w != nil {
		w.Header().Set(TotalCountHeader, strconv.Itoa(n))
	}
}

// ParseBool reads an optional boolean query parameter.
func ParseBool(r *http.Request, key string) (*bool, error) {
	raw := web.QueryParam(r, key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, &QueryError{Key: key, Value: raw, Want: "a boolean"}
	}
	return &v, nil
}

// ParseString reads an optional string query parameter.
func ParseString(r *http.Request, key string) *string {
	raw := web.QueryParam(r, key)
	if raw == "" {
		return nil
	}
	return &raw
}

// QueryError reports a query parameter that failed to parse.
type QueryError struct {
	Key   string
	Value string
	Want  string
}

func (e *QueryError) Error() string {
	return e.Key + " must be " + e.Want + ", got " + strconv.Quote(e.Value)
}
