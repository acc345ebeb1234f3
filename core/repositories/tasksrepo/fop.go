package tasksrepo

import "strings"

// QueryFilter narrows a task listing.
type QueryFilter struct {
	Completed *bool
	Search    *string
}

func (f QueryFilter) Matches(t Task) bool {
	if f.Completed != nil && t.Completed != *f.Completed {
		return false
	}
	if f.Search != nil && *f.Search != "" {
		return strings.Contains(strings.ToLower(t.Title), strings.ToLower(*f.Search))
	}
	return true
}
