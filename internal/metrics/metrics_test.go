package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)

	require.NotNil(t, m)
	assert.Same(t, registry, m.Registry())
	assert.NotNil(t, m.CommandsTotal)
	assert.NotNil(t, m.LookupsTotal)
	assert.NotNil(t, m.GradeEntriesTotal)
	assert.NotNil(t, m.RejectedInputsTotal)
	assert.NotNil(t, m.CalculationsTotal)
	assert.NotNil(t, m.SGPAValue)
	assert.NotNil(t, m.BandTotal)
}

func TestRecorders(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordCommand("grade", "success")
	m.RecordCommand("grade", "success")
	m.RecordCommand("calc", "error")
	m.RecordLookup("available")
	m.RecordGradeEntry("A+")
	m.RecordRejectedInput("unknown_grade")
	m.RecordCalculation("cs", "incomplete")
	m.RecordResult("cs", 8.75, "excellent")

	assert.InDelta(t, 2, testutil.ToFloat64(m.CommandsTotal.WithLabelValues("grade", "success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.CommandsTotal.WithLabelValues("calc", "error")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.LookupsTotal.WithLabelValues("available")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.GradeEntriesTotal.WithLabelValues("A+")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.RejectedInputsTotal.WithLabelValues("unknown_grade")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.CalculationsTotal.WithLabelValues("cs", "incomplete")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.CalculationsTotal.WithLabelValues("cs", "success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.BandTotal.WithLabelValues("excellent")), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(m.SGPAValue))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordCommand("help", "success")
		m.RecordLookup("available")
		m.RecordGradeEntry("S")
		m.RecordRejectedInput("unknown_course")
		m.RecordCalculation("cs", "no_result")
		m.RecordResult("cs", 9, "outstanding")
	})
	assert.Nil(t, m.Registry())
	assert.NoError(t, m.WriteTextfile("ignored.prom"))
}

func TestWriteTextfile(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.RecordResult("eee", 9.5, "outstanding")

	path := filepath.Join(t.TempDir(), "sgpa.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.True(t, strings.Contains(out, `sgpa_calculations_total{department="eee",outcome="success"} 1`), out)
	assert.True(t, strings.Contains(out, `sgpa_band_total{band="outstanding"} 1`), out)
	assert.Contains(t, out, "sgpa_value_count 1")
}

func TestWriteTextfile_EmptyPath(t *testing.T) {
	m := New(prometheus.NewRegistry())
	assert.NoError(t, m.WriteTextfile(""))
}

func TestWriteTextfile_BadDirectory(t *testing.T) {
	m := New(prometheus.NewRegistry())
	err := m.WriteTextfile(filepath.Join(t.TempDir(), "missing", "sgpa.prom"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write metrics textfile")
}
