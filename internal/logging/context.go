package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldCorrelationID is the standardized structured logging key for invocation correlation identifiers.
	FieldCorrelationID = "correlation_id"
	// FieldPath is the standardized structured logging key for local file paths.
	FieldPath = "path"
	// FieldDigest is the standardized structured logging key for content digests.
	FieldDigest = "digest"
	// FieldModelID is the standardized structured logging key for registry model identifiers.
	FieldModelID = "model_id"
	// FieldVersionID is the standardized structured logging key for registry model version identifiers.
	FieldVersionID = "version_id"
	// FieldSidecar is the standardized structured logging key for sidecar file paths.
	FieldSidecar = "sidecar"
	// FieldStatus is the standardized structured logging key for HTTP status codes.
	FieldStatus = "status"
)

type contextKey string

const correlationIDKey contextKey = "correlation_id"

// WithCorrelationID annotates context with an invocation correlation identifier.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, correlationIDKey, id)
}

// CorrelationIDFromContext extracts the correlation identifier if present.
func CorrelationIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(correlationIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 1)
	if id, ok := CorrelationIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldCorrelationID, id))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(attrsToArgs(fields)...)
}
