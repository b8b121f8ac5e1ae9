// Package logging assembles the structured slog loggers used across modelmeta.
//
// It owns the console and JSON handlers, centralizes level and output plumbing,
// and exposes context-aware helpers so pipeline code can automatically tag log
// lines with the per-invocation correlation ID. The package also provides a
// no-op logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits lines with the same shape and routing.
package logging
