package repositories

import "time"

// SetIfChanged copies *src into *dst when src is set and differs.
func SetIfChanged[T comparable](dst *T, src *T) bool {
	if src == nil || *dst == *src {
		return false
	}
	*dst = *src
	return true
}

// SetPtrIfChanged is SetIfChanged for nullable fields. The stored pointer is
// replaced, never written through.
func SetPtrIfChanged[T comparable](dst **T, src *T) bool {
	if src == nil || (*dst != nil && **dst == *src) {
		return false
	}
	v := *src
	*dst = &v
	return true
}

// SetTimeIfChanged is SetPtrIfChanged for timestamps, compared by instant.
func SetTimeIfChanged(dst **time.Time, src *time.Time) bool {
	if src == nil || (*dst != nil && (*dst).Equal(*src)) {
		return false
	}
	v := src.UTC()
	*dst = &v
	return true
}
