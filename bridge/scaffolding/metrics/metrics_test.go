package metrics_test

import (
	"context"
	"testing"

	"github.com/jrazmi/crudkit/bridge/scaffolding/metrics"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	ctx := metrics.Set(context.Background())
	before := metrics.Snapshot()

	assert.Equal(t, before["requests"]+1, metrics.AddRequests(ctx))
	assert.Equal(t, before["errors"]+1, metrics.AddErrors(ctx))
	assert.Equal(t, before["panics"]+1, metrics.AddPanics(ctx))
	assert.Positive(t, metrics.AddGoroutines(ctx))

	after := metrics.Snapshot()
	assert.Equal(t, before["requests"]+1, after["requests"])
}

func TestWithoutContextValue(t *testing.T) {
	assert.Zero(t, metrics.AddRequests(context.Background()))
	assert.Zero(t, metrics.AddErrors(context.Background()))
}

func TestStatusClass(t *testing.T) {
	assert.Equal(t, "2xx", metrics.StatusClass(204))
	assert.Equal(t, "4xx", metrics.StatusClass(412))
	assert.Equal(t, "5xx", metrics.StatusClass(500))
	assert.Equal(t, "other", metrics.StatusClass(0))

	ctx := metrics.Set(context.Background())
	before := metrics.Responses()["4xx"]
	metrics.AddStatus(ctx, 404)
	assert.Equal(t, before+1, metrics.Responses()["4xx"])
}
