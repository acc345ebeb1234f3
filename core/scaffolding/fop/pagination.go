// Package fop holds filter, order and pagination primitives shared by repositories.
package fop

import (
	"fmt"
	"strconv"
)

// NoLimit marks a page without an upper bound.
const NoLimit = -1

// MaxLimit caps any requested limit.
const MaxLimit = 1000

// Page is an offset window over an ordered result set.
type Page struct {
	Skip  int
	Limit int
}

// All is the page that returns every record.
var All = Page{Skip: 0, Limit: NoLimit}

// ParsePage reads skip and limit query values. Empty values fall back to
// skip 0 and no limit, negatives clamp to 0 and limit is capped at MaxLimit.
func ParsePage(skip string, limit string) (Page, error) {
	page := All

	if skip != "" {
		n, err := strconv.Atoi(skip)
		if err != nil {
			return Page{}, fmt.Errorf("skip must be an integer, got %q", skip)
		}
		page.Skip = max(n, 0)
	}

	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil {
			return Page{}, fmt.Errorf("limit must be an integer, got %q", limit)
		}
		page.Limit = min(max(n, 0), MaxLimit)
	}

	return page, nil
}

// Bounded reports whether the page has an upper limit.
func (p Page) Bounded() bool {
	return p.Limit != NoLimit
}

// Window returns the slice bounds of the page over n ordered records.
func (p Page) Window(n int) (start int, end int) {
	start = min(max(p.Skip, 0), n)
	end = n
	if p.Bounded() {
		end = min(start+max(p.Limit, 0), n)
	}
	return start, end
}
