package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionsCreated *prometheus.CounterVec
	insufficientFunds   prometheus.Counter
	categoriesCreated   *prometheus.CounterVec
	importDuration      prometheus.Histogram
	importRows          *prometheus.CounterVec
	importsTotal        *prometheus.CounterVec
	balanceTotal        prometheus.Gauge
}

// NewPrometheusMetrics registers the ledger collectors on reg.
// A nil reg falls back to the default registerer.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		transactionsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_transactions_created_total",
				Help: "Total number of transactions persisted",
			},
			[]string{"type", "source"},
		),
		insufficientFunds: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_insufficient_funds_total",
				Help: "Total number of outcome transactions rejected by the balance guard",
			},
		),
		categoriesCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_categories_created_total",
				Help: "Total number of categories created",
			},
			[]string{"source"},
		),
		importDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_import_duration_milliseconds",
				Help:    "Bulk import duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		importRows: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_import_rows_total",
				Help: "Total number of CSV rows seen by the importer",
			},
			[]string{"outcome"},
		),
		importsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_imports_total",
				Help: "Total number of bulk imports by status",
			},
			[]string{"status"},
		),
		balanceTotal: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledger_balance_total",
				Help: "Ledger balance total observed at the last balance computation",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	m.AddCounter(name, 1, tags)
}

func (m *PrometheusMetrics) AddCounter(name string, value float64, tags map[string]string) {
	switch name {
	case "transaction.created":
		m.transactionsCreated.WithLabelValues(tags["type"], tags["source"]).Add(value)
	case "transaction.insufficient_funds":
		m.insufficientFunds.Add(value)
	case "category.created":
		m.categoriesCreated.WithLabelValues(tags["source"]).Add(value)
	case "import.rows":
		if outcome := tags["outcome"]; outcome != "" {
			m.importRows.WithLabelValues(outcome).Add(value)
		}
	case "import.finished":
		if status := tags["status"]; status != "" {
			m.importsTotal.WithLabelValues(status).Add(value)
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "import.duration":
		m.importDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "ledger.balance.total":
		m.balanceTotal.Set(value)
	}
}
