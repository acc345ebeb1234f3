package recipesrepo

import "strings"

// QueryFilter narrows a recipe listing. Search matches the name.
type QueryFilter struct {
	Vegetarian *bool
	Search     *string
}

func (f QueryFilter) Matches(r Recipe) bool {
	if f.Vegetarian != nil && r.Vegetarian != *f.Vegetarian {
		return false
	}
	if f.Search != nil && *f.Search != "" {
		return strings.Contains(strings.ToLower(r.Name), strings.ToLower(*f.Search))
	}
	return true
}
