package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/garyellow/sgpa-go/internal/catalog"
	"github.com/garyellow/sgpa-go/internal/logger"
	"github.com/garyellow/sgpa-go/internal/metrics"
	"github.com/garyellow/sgpa-go/internal/session"
	"github.com/garyellow/sgpa-go/internal/sgpa"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConsole(t *testing.T, in io.Reader, policy sgpa.GatePolicy) (*Console, *bytes.Buffer, *metrics.Metrics) {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)

	var out bytes.Buffer
	m := metrics.New(prometheus.NewRegistry())
	c := New(Config{
		Session: session.New(cat, policy),
		In:      in,
		Out:     &out,
		Logger:  logger.NewWithWriter("error", io.Discard),
		Metrics: m,
	})
	return c, &out, m
}

// exec runs lines and returns the output of the last one.
func exec(t *testing.T, c *Console, out *bytes.Buffer, lines ...string) string {
	t.Helper()
	for _, line := range lines {
		out.Reset()
		_, err := c.Execute(context.Background(), line)
		require.NoError(t, err)
	}
	return out.String()
}

func TestConsole_FullCalculation(t *testing.T) {
	c, out, m := newTestConsole(t, nil, sgpa.GateAllCourses)

	got := exec(t, c, out, "dept cs")
	assert.Contains(t, got, "Selected Computer Science & Engineering.")
	assert.Contains(t, got, "Semester 1  coming soon")
	assert.Contains(t, got, "Semester 2  9 courses, 22 credits")

	got = exec(t, c, out, "sem 2")
	assert.Contains(t, got, "Computer Science & Engineering, semester 2 (22 credits):")
	assert.Contains(t, got, "IDEA Lab")
	assert.Contains(t, got, "P/F")

	for i := 1; i <= 7; i++ {
		exec(t, c, out, "grade "+string(rune('0'+i))+" a+")
	}
	got = exec(t, c, out, "grade idea p")
	assert.Contains(t, got, "IDEA Lab (P/F): P")
	assert.Contains(t, got, "1 course(s) left.")

	got = exec(t, c, out, "grade Professional Communication & Ethics F")
	assert.Contains(t, got, "All grades entered.")

	got = exec(t, c, out, "calc")
	assert.Contains(t, got, "SGPA: 9.00")
	assert.Contains(t, got, "Grade: Outstanding (green)")
	assert.Contains(t, got, "Total Credits: 22")
	assert.Contains(t, got, "Grade Summary:")

	assert.InDelta(t, 1, testutil.ToFloat64(m.CalculationsTotal.WithLabelValues("cs", "success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.BandTotal.WithLabelValues("outstanding")), 0)
	assert.InDelta(t, 7, testutil.ToFloat64(m.GradeEntriesTotal.WithLabelValues("A+")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.LookupsTotal.WithLabelValues("available")), 0)
}

func TestConsole_CreditedGate(t *testing.T) {
	c, out, _ := newTestConsole(t, nil, sgpa.GateCreditedCourses)

	exec(t, c, out, "dept cs", "sem 2")
	for i := 1; i <= 6; i++ {
		exec(t, c, out, "grade "+string(rune('0'+i))+" S")
	}
	got := exec(t, c, out, "grade 7 B")
	assert.Contains(t, got, "All grades entered.")

	got = exec(t, c, out, "calc")
	// (20*10 + 2*7.5) / 22
	assert.Contains(t, got, "SGPA: 9.77")
}

func TestConsole_Errors(t *testing.T) {
	tests := []struct {
		name   string
		setup  []string
		line   string
		want   []string
		reason string
	}{
		{
			name:   "unknown command",
			line:   "fly",
			want:   []string{`Unknown command "fly". Type help for a list of commands.`},
			reason: "unknown_command",
		},
		{
			name:   "unknown department",
			line:   "dept law",
			want:   []string{`No department "law"`},
			reason: "unknown_department",
		},
		{
			name:   "semester before department",
			line:   "sem 2",
			want:   []string{"Select a department first"},
			reason: "no_selection",
		},
		{
			name:   "unknown semester",
			setup:  []string{"dept cs"},
			line:   "sem 9",
			want:   []string{"Computer Science & Engineering has no semester 9"},
			reason: "unknown_semester",
		},
		{
			name:   "coming soon semester",
			setup:  []string{"dept mech"},
			line:   "sem 1",
			want:   []string{"Semester 1 of Mechanical Engineering is coming soon"},
			reason: "unavailable",
		},
		{
			name:   "non numeric semester",
			setup:  []string{"dept cs"},
			line:   "sem two",
			want:   []string{"Usage: sem <n>"},
			reason: "invalid_input",
		},
		{
			name:   "unknown grade symbol",
			setup:  []string{"dept cs", "sem 2"},
			line:   "grade 1 Z",
			want:   []string{`Unknown grade symbol "Z"`},
			reason: "unknown_grade",
		},
		{
			name:   "grade before selection",
			line:   "grade 1 A",
			want:   []string{"Select a department and semester first"},
			reason: "no_selection",
		},
		{
			name:   "incomplete",
			setup:  []string{"dept cs", "sem 2", "grade 1 A"},
			line:   "calc",
			want:   []string{"8 course(s) still need a grade", "  - IDEA Lab"},
			reason: "incomplete",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, out, m := newTestConsole(t, nil, sgpa.GateAllCourses)
			exec(t, c, out, tt.setup...)

			got := exec(t, c, out, tt.line)
			for _, want := range tt.want {
				assert.Contains(t, got, want)
			}
			assert.InDelta(t, 1, testutil.ToFloat64(m.RejectedInputsTotal.WithLabelValues(tt.reason)), 0)
		})
	}
}

func TestConsole_DepartmentChangeClearsGrades(t *testing.T) {
	c, out, _ := newTestConsole(t, nil, sgpa.GateAllCourses)

	exec(t, c, out, "dept cs", "sem 2", "grade 1 A")
	assert.Len(t, c.session.Grades(), 1)

	exec(t, c, out, "dept eee")
	assert.Empty(t, c.session.Grades())
	assert.Equal(t, 0, c.session.Semester())

	got := exec(t, c, out, "courses")
	assert.Contains(t, got, "Select a department and semester first")
}

func TestConsole_Help(t *testing.T) {
	c, out, _ := newTestConsole(t, nil, sgpa.GateAllCourses)

	got := exec(t, c, out, "help")
	for _, h := range c.Registry().Handlers() {
		assert.Contains(t, got, h.Usage())
	}

	got = exec(t, c, out, "help grade")
	assert.Contains(t, got, "grade <course> <symbol>")
}

func TestConsole_GradeTable(t *testing.T) {
	c, out, _ := newTestConsole(t, nil, sgpa.GateAllCourses)

	got := exec(t, c, out, "grades")
	assert.Contains(t, got, "S   10.0")
	assert.Contains(t, got, "A+   9.0")
	assert.Contains(t, got, "AB   0.0")
}

func TestConsole_Run(t *testing.T) {
	in := strings.NewReader("dept cs\nsem 2\nquit\nnever read\n")
	c, out, _ := newTestConsole(t, in, sgpa.GateAllCourses)

	require.NoError(t, c.Run(context.Background()))
	got := out.String()
	assert.Contains(t, got, "SGPA Calculator. Type help for commands.")
	assert.Contains(t, got, "sgpa[cs/2]> ")
	assert.Contains(t, got, "Bye.")
	assert.NotContains(t, got, "never read")
}

func TestConsole_RunEndOfInput(t *testing.T) {
	c, _, _ := newTestConsole(t, strings.NewReader("depts\n"), sgpa.GateAllCourses)
	assert.NoError(t, c.Run(context.Background()))
}

func TestConsole_RunCancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer func() { _ = pw.Close() }()

	c, _, _ := newTestConsole(t, pr, sgpa.GateAllCourses)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

func TestConsole_Color(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)
	var out bytes.Buffer
	c := New(Config{Session: session.New(cat, sgpa.GateAllCourses), Out: &out, Color: true})

	_, err = c.Execute(context.Background(), "dept nowhere")
	require.NoError(t, err)
	assert.Contains(t, out.String(), ansiRed)
}
