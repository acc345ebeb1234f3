// Package metrics constructs the metrics the application will track.
package metrics

import (
	"context"
	"expvar"
	"runtime"
	"strconv"
	"sync"
)

type metrics struct {
	goroutines *expvar.Int
	requests   *expvar.Int
	errors     *expvar.Int
	panics     *expvar.Int
	statuses   *expvar.Map
}

var (
	once sync.Once
	m    *metrics
)

// get publishes the counters on first use. expvar panics on duplicate names,
// so the set is created exactly once per process.
func get() *metrics {
	once.Do(func() {
		m = &metrics{
			goroutines: expvar.NewInt("goroutines"),
			requests:   expvar.NewInt("requests"),
			errors:     expvar.NewInt("errors"),
			panics:     expvar.NewInt("panics"),
			statuses:   expvar.NewMap("responses"),
		}
	})
	return m
}

type ctxKey int

const key ctxKey = 1

// Set stores the metrics on the context.
func Set(ctx context.Context) context.Context {
	return context.WithValue(ctx, key, get())
}

func from(ctx context.Context) (*metrics, bool) {
	v, ok := ctx.Value(key).(*metrics)
	return v, ok
}

// AddGoroutines refreshes the goroutine gauge.
func AddGoroutines(ctx context.Context) int64 {
	if v, ok := from(ctx); ok {
		g := int64(runtime.NumGoroutine())
		v.goroutines.Set(g)
		return g
	}
	return 0
}

// AddRequests increments the request counter and returns the new total.
func AddRequests(ctx context.Context) int64 {
	if v, ok := from(ctx); ok {
		v.requests.Add(1)
		return v.requests.Value()
	}
	return 0
}

// AddErrors increments the error counter and returns the new total.
func AddErrors(ctx context.Context) int64 {
	if v, ok := from(ctx); ok {
		v.errors.Add(1)
		return v.errors.Value()
	}
	return 0
}

// AddPanics increments the panic counter and returns the new total.
func AddPanics(ctx context.Context) int64 {
	if v, ok := from(ctx); ok {
		v.panics.Add(1)
		return v.panics.Value()
	}
	return 0
}

// AddStatus counts a response under its status class, "2xx" through "5xx".
func AddStatus(ctx context.Context, status int) {
	if v, ok := from(ctx); ok {
		v.statuses.Add(StatusClass(status), 1)
	}
}

// StatusClass buckets an HTTP status code.
func StatusClass(status int) string {
	if status < 100 || status > 599 {
		return "other"
	}
	return strconv.Itoa(status/100) + "xx"
}

// Responses returns the per status class counts.
func Responses() map[string]int64 {
	out := map[string]int64{}
	get().statuses.Do(func(kv expvar.KeyValue) {
		if n, ok := kv.Value.(*expvar.Int); ok {
			out[kv.Key] = n.Value()
		}
	})
	return out
}

// Snapshot returns the current counter values keyed by name.
func Snapshot() map[string]int64 {
	v := get()
	return map[string]int64{
		"goroutines": v.goroutines.Value(),
		"requests":   v.requests.Value(),
		"errors":     v.errors.Value(),
		"panics":     v.panics.Value(),
	}
}
