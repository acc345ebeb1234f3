package todosrepo

import "strings"

// QueryFilter narrows a todo listing.
type QueryFilter struct {
	Completed *bool
	Search    *string
}

// Matches reports whether t passes the filter. Search is a case-insensitive
// substring match on the title.
func (f QueryFilter) Matches(t Todo) bool {
	if f.Completed != nil && t.Completed != *f.Completed {
		return false
	}
	if f.Search != nil && *f.Search != "" {
		return strings.Contains(strings.ToLower(t.Title), strings.ToLower(*f.Search))
	}
	return true
}
