// SPDX-License-Identifier: MIT

// Package logging wraps slog with the field names used across spmat tools.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// Logger wraps slog.Logger with spmat-specific helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler; nil means discard.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		return NoopLogger()
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger writing human-readable records to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger writing JSON records to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger discards everything.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))}
}

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("logging: unknown level %q", s)
	}
}

// WithOp tags every record with an operation name.
func (l *Logger) WithOp(op string) *Logger {
	return &Logger{Logger: l.Logger.With("op", op)}
}

// LogDecode logs loading one matrix.
func (l *Logger) LogDecode(ctx context.Context, uri string, rows, cols, nnz int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"uri", uri,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "matrix loaded",
		"uri", uri,
		"rows", rows,
		"cols", cols,
		"nnz", nnz,
		"elapsed", elapsed,
	)
}

// LogMultiply logs one finished product.
func (l *Logger) LogMultiply(ctx context.Context, label string, nnz int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "multiply failed",
			"product", label,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "multiply completed",
		"product", label,
		"nnz", nnz,
		"elapsed", elapsed,
	)
}

// LogVerify logs the outcome of an identity check.
func (l *Logger) LogVerify(ctx context.Context, equal bool, nnz int, elapsed time.Duration, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "verification failed",
			"error", err,
		)
	case !equal:
		l.WarnContext(ctx, "identity does not hold",
			"nnz", nnz,
			"elapsed", elapsed,
		)
	default:
		l.InfoContext(ctx, "identity holds",
			"nnz", nnz,
			"elapsed", elapsed,
		)
	}
}

// LogStore logs writing a matrix or snapshot.
func (l *Logger) LogStore(ctx context.Context, uri string, nnz int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "store failed",
			"uri", uri,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "matrix stored",
		"uri", uri,
		"nnz", nnz,
	)
}
