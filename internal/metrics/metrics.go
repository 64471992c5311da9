// Package metrics holds the Prometheus collectors for the calculator.
// There is no scrape endpoint: collectors are written to a node-exporter
// textfile instead (see WriteTextfile).
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	registry *prometheus.Registry

	// Command metrics
	CommandsTotal *prometheus.CounterVec

	// Catalog metrics
	LookupsTotal *prometheus.CounterVec

	// Grade entry metrics
	GradeEntriesTotal   *prometheus.CounterVec
	RejectedInputsTotal *prometheus.CounterVec

	// Calculation metrics
	CalculationsTotal *prometheus.CounterVec
	SGPAValue         prometheus.Histogram
	BandTotal         *prometheus.CounterVec
}

// New creates a new Metrics instance with all metrics registered
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: registry,

		// Command metrics
		CommandsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "sgpa_commands_total",
				Help: "Total number of console commands by command and status",
			},
			[]string{"command", "status"}, // status: success, error, unknown
		),

		// Catalog metrics
		LookupsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "sgpa_catalog_lookups_total",
				Help: "Total number of catalog lookups by outcome",
			},
			[]string{"outcome"}, // outcome: available, unavailable, unknown_department, unknown_semester
		),

		// Grade entry metrics
		GradeEntriesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "sgpa_grade_entries_total",
				Help: "Total number of accepted grade entries by symbol",
			},
			[]string{"symbol"},
		),

		RejectedInputsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "sgpa_rejected_inputs_total",
				Help: "Total number of rejected user inputs by reason",
			},
			[]string{"reason"}, // reason: unknown_course, ambiguous_course, unknown_grade, no_selection, invalid_input
		),

		// Calculation metrics
		CalculationsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "sgpa_calculations_total",
				Help: "Total number of SGPA calculations by department and outcome",
			},
			[]string{"department", "outcome"}, // outcome: success, incomplete, no_result
		),

		SGPAValue: promauto.With(registry).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sgpa_value",
				Help:    "Distribution of computed SGPA values",
				Buckets: []float64{4, 5, 6, 7, 8, 9, 10}, // Aligned with band thresholds
			},
		),

		BandTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "sgpa_band_total",
				Help: "Total number of computed results by performance band",
			},
			[]string{"band"},
		),
	}

	return m
}

// Registry returns the registry the collectors were registered with.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// RecordCommand records a dispatched console command
func (m *Metrics) RecordCommand(command, status string) {
	if m == nil {
		return
	}
	m.CommandsTotal.WithLabelValues(command, status).Inc()
}

// RecordLookup records a catalog lookup outcome
func (m *Metrics) RecordLookup(outcome string) {
	if m == nil {
		return
	}
	m.LookupsTotal.WithLabelValues(outcome).Inc()
}

// RecordGradeEntry records an accepted grade symbol
func (m *Metrics) RecordGradeEntry(symbol string) {
	if m == nil {
		return
	}
	m.GradeEntriesTotal.WithLabelValues(symbol).Inc()
}

// RecordRejectedInput records user input refused at the session boundary
func (m *Metrics) RecordRejectedInput(reason string) {
	if m == nil {
		return
	}
	m.RejectedInputsTotal.WithLabelValues(reason).Inc()
}

// RecordCalculation records a calculation attempt that produced no value
func (m *Metrics) RecordCalculation(department, outcome string) {
	if m == nil {
		return
	}
	m.CalculationsTotal.WithLabelValues(department, outcome).Inc()
}

// RecordResult records a successful calculation with its value and band
func (m *Metrics) RecordResult(department string, value float64, band string) {
	if m == nil {
		return
	}
	m.CalculationsTotal.WithLabelValues(department, "success").Inc()
	m.SGPAValue.Observe(value)
	m.BandTotal.WithLabelValues(band).Inc()
}

// WriteTextfile writes every registered collector to path in the text
// exposition format. The write goes through a temporary file and a rename,
// so the textfile collector never reads a partial file.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
