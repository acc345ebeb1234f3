package repositories_test

import (
	"testing"
	"time"

	"github.com/jrazmi/crudkit/core/repositories"
	"github.com/stretchr/testify/assert"
)

func TestSetIfChanged(t *testing.T) {
	v := "a"
	assert.False(t, repositories.SetIfChanged(&v, nil))
	same := "a"
	assert.False(t, repositories.SetIfChanged(&v, &same))
	other := "b"
	assert.True(t, repositories.SetIfChanged(&v, &other))
	assert.Equal(t, "b", v)
}

func TestSetPtrIfChanged(t *testing.T) {
	var n *int
	five := 5
	assert.True(t, repositories.SetPtrIfChanged(&n, &five))
	assert.Equal(t, 5, *n)

	five = 6
	assert.Equal(t, 5, *n, "stored value must not alias the source")
	assert.True(t, repositories.SetPtrIfChanged(&n, &five))
	assert.False(t, repositories.SetPtrIfChanged(&n, &five))
}

func TestSetTimeIfChanged(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	var ts *time.Time
	assert.True(t, repositories.SetTimeIfChanged(&ts, &at))

	sameInstant := at.In(time.FixedZone("plus2", 2*3600))
	assert.False(t, repositories.SetTimeIfChanged(&ts, &sameInstant))
}
