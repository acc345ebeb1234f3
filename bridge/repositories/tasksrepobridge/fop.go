package tasksrepobridge

import (
	"net/http"

	"github.com/jrazmi/crudkit/bridge/scaffolding/fopbridge"
	"github.com/jrazmi/crudkit/core/repositories/tasksrepo"
)

func parseFilter(r *http.Request) (tasksrepo.QueryFilter, error) {
	completed, err := fopbridge.ParseBool(r, "completed")
	if err != nil {
		return tasksrepo.QueryFilter{}, err
	}

	return tasksrepo.QueryFilter{
		Completed: completed,
		Search:    fopbridge.ParseString(r, "search"),
	}, nil
}
