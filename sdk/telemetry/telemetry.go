// Package telemetry provides per request trace identifiers.
package telemetry

import (
	"context"

	"github.com/google/uuid"
)

type telKey int

const (
	traceIDKey telKey = iota + 1
)

// NoTrace is returned when a context carries no trace id.
const NoTrace = "00000000-0000-0000-0000-000000000000"

type Telemetry struct{}

// NewTelemetry creates a new telemetry instance
func NewTelemetry() Telemetry {
	return Telemetry{}
}

// SetTraceID stores a fresh time ordered trace id on the context.
func (t Telemetry) SetTraceID(ctx context.Context) context.Context {
	id, err := uuid.NewV7()
	if err != nil {
		return context.WithValue(ctx, traceIDKey, uuid.NewString())
	}
	return context.WithValue(ctx, traceIDKey, id.String())
}

// WithTraceID stores a caller supplied trace id, ignoring values that are not uuids.
func (t Telemetry) WithTraceID(ctx context.Context, traceID string) context.Context {
	if _, err := uuid.Parse(traceID); err != nil {
		return t.SetTraceID(ctx)
	}
	return context.WithValue(ctx, traceIDKey, traceID)
}

func (t Telemetry) GetTraceID(ctx context.Context) string {
	v, ok := ctx.Value(traceIDKey).(string)
	if !ok {
		return NoTrace
	}
	return v
}
