package recipesrepobridge

import (
	"net/http"

	"github.com/jrazmi/crudkit/bridge/scaffolding/fopbridge"
	"github.com/jrazmi/crudkit/core/repositories/recipesrepo"
)

func parseFilter(r *http.Request) (recipesrepo.QueryFilter, error) {
	vegetarian, err := fopbridge.ParseBool(r, "vegetarian")
	if err != nil {
		return recipesrepo.QueryFilter{}, err
	}

	return recipesrepo.QueryFilter{
		Vegetarian: vegetarian,
		Search:     fopbridge.ParseString(r, "search"),
	}, nil
}
