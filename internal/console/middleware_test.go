package console

import (
	"bytes"
	"context"
	"testing"

	domerrors "github.com/garyellow/sgpa-go/internal/errors"
	"github.com/garyellow/sgpa-go/internal/logger"
	"github.com/garyellow/sgpa-go/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoveryMiddleware(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter("debug", &buf)
	panicky := NewCommand("calc", "calc", "", func(context.Context, []string) ([]string, error) {
		panic("test panic")
	})

	next := func(ctx context.Context, h Handler, args []string) ([]string, error) {
		return h.Handle(ctx, args)
	}

	lines, err := RecoveryMiddleware(log)(context.Background(), panicky, nil, next)
	require.ErrorIs(t, err, errPanic)
	assert.Nil(t, lines)
	assert.Contains(t, buf.String(), "Command panicked")
	assert.False(t, isUserError(err))
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	mw := MetricsMiddleware(m)
	h := echoCommand("grade")

	ok := func(context.Context, Handler, []string) ([]string, error) { return nil, nil }
	fail := func(context.Context, Handler, []string) ([]string, error) {
		return nil, domerrors.ErrUnknownGrade
	}
	quit := func(context.Context, Handler, []string) ([]string, error) { return nil, ErrQuit }

	_, _ = mw(context.Background(), h, nil, ok)
	_, _ = mw(context.Background(), h, nil, quit)
	_, _ = mw(context.Background(), h, nil, fail)

	assert.InDelta(t, 2, testutil.ToFloat64(m.CommandsTotal.WithLabelValues("grade", "success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.CommandsTotal.WithLabelValues("grade", "error")), 0)
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter("debug", &buf)
	mw := LoggingMiddleware(log)

	called := false
	next := func(ctx context.Context, h Handler, args []string) ([]string, error) {
		called = true
		return h.Handle(ctx, args)
	}

	lines, err := mw(context.Background(), echoCommand("depts"), []string{"x"}, next)
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, []string{"depts", "x"}, lines)
	assert.Contains(t, buf.String(), "Command completed")
	assert.Contains(t, buf.String(), `"command":"depts"`)
}

func TestRejectReason(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{domerrors.ErrUnknownDepartment, "unknown_department"},
		{domerrors.NewValidationErrorFor(domerrors.ErrUnknownGrade, "grade", "bad"), "unknown_grade"},
		{domerrors.NewValidationError("semester", "usage"), "invalid_input"},
		{domerrors.NewIncompleteError([]string{"IDEA Lab"}), "incomplete"},
		{ErrUnknownCommand, "unknown_command"},
		{errPanic, ""},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, rejectReason(tt.err))
		})
	}
}
