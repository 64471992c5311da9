package console

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/garyellow/sgpa-go/internal/logger"
	"github.com/garyellow/sgpa-go/internal/metrics"
	"github.com/garyellow/sgpa-go/internal/sentry"
)

// Next invokes the rest of the middleware chain.
type Next func(ctx context.Context, h Handler, args []string) ([]string, error)

// Middleware wraps handler execution.
type Middleware func(ctx context.Context, h Handler, args []string, next Next) ([]string, error)

// LoggingMiddleware logs handler execution with timing and result info.
func LoggingMiddleware(log *logger.Logger) Middleware {
	return func(ctx context.Context, h Handler, args []string, next Next) ([]string, error) {
		start := time.Now()

		lines, err := next(ctx, h, args)

		entry := log.WithField("command", h.Name()).
			WithField("args", len(args)).
			WithField("duration_ms", time.Since(start).Milliseconds()).
			WithField("line_count", len(lines))
		switch {
		case err == nil, errors.Is(err, ErrQuit):
			entry.DebugContext(ctx, "Command completed")
		case isUserError(err):
			entry.WithError(err).InfoContext(ctx, "Command rejected")
		default:
			entry.WithError(err).ErrorContext(ctx, "Command failed")
		}

		return lines, err
	}
}

// MetricsMiddleware records command outcomes.
func MetricsMiddleware(m *metrics.Metrics) Middleware {
	return func(ctx context.Context, h Handler, args []string, next Next) ([]string, error) {
		lines, err := next(ctx, h, args)

		status := "success"
		if err != nil && !errors.Is(err, ErrQuit) {
			status = "error"
		}
		m.RecordCommand(h.Name(), status)

		return lines, err
	}
}

// RecoveryMiddleware turns a handler panic into an error and reports it.
func RecoveryMiddleware(log *logger.Logger) Middleware {
	return func(ctx context.Context, h Handler, args []string, next Next) (lines []string, err error) {
		defer func() {
			if r := recover(); r != nil {
				log.WithField("command", h.Name()).
					WithField("panic", r).
					WithField("stack", string(debug.Stack())).
					ErrorContext(ctx, "Command panicked")
				lines, err = nil, fmt.Errorf("%w: %v", errPanic, r)
				sentry.CaptureExceptionWithContext(ctx, err)
			}
		}()

		return next(ctx, h, args)
	}
}
