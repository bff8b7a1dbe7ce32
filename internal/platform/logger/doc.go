// Package logger provides structured logging functionality for the application.
//
// It builds on the standard library log/slog package: JSON output, a
// configurable level, trace correlation for records logged with a context,
// and redaction of error attributes.
package logger
