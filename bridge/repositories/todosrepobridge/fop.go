package todosrepobridge

import (
	"net/http"

	"github.com/jrazmi/crudkit/bridge/scaffolding/fopbridge"
	"github.com/jrazmi/crudkit/core/repositories/todosrepo"
)

func parseFilter(r *http.Request) (todosrepo.QueryFilter, error) {
	completed, err := fopbridge.ParseBool(r, "completed")
	if err != nil {
		return todosrepo.QueryFilter{}, err
	}

	return todosrepo.QueryFilter{
		Completed: completed,
		Search:    fopbridge.ParseString(r, "search"),
	}, nil
}
