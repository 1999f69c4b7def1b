package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pipeline holds the prometheus instruments for statistics generation runs.
type Pipeline struct {
	runsTotal      *prometheus.CounterVec
	runDuration    prometheus.Histogram
	showsProcessed prometheus.Gauge
	ingestErrors   *prometheus.CounterVec
	calcFailures   *prometheus.CounterVec
}

// NewPipeline registers the pipeline instruments on the default registerer.
func NewPipeline() *Pipeline {
	return &Pipeline{
		runsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tourstats",
			Name:      "pipeline_runs_total",
			Help:      "Statistics generation runs, per tour.",
		}, []string{"tour"}),
		runDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: "tourstats",
			Name:      "pipeline_run_duration_seconds",
			Help:      "Duration of a full statistics generation run.",
			Buckets:   prometheus.DefBuckets,
		}),
		showsProcessed: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: "tourstats",
			Name:      "pipeline_shows_processed",
			Help:      "Shows folded in the most recent run.",
		}),
		ingestErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tourstats",
			Name:      "ingest_errors_total",
			Help:      "Provider errors during show ingestion, per source.",
		}, []string{"source"}),
		calcFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tourstats",
			Name:      "pipeline_calculator_failures_total",
			Help:      "Calculators that panicked and were isolated, per type.",
		}, []string{"calculator"}),
	}
}

// ObserveRun records one completed generation run.
func (p *Pipeline) ObserveRun(tourName string, shows int, duration time.Duration) {
	p.runsTotal.WithLabelValues(tourName).Inc()
	p.runDuration.Observe(duration.Seconds())
	p.showsProcessed.Set(float64(shows))
}

// IngestError records a provider failure during ingestion.
func (p *Pipeline) IngestError(source string) {
	p.ingestErrors.WithLabelValues(source).Inc()
}

// CalculatorFailure records an isolated calculator panic.
func (p *Pipeline) CalculatorFailure(calcType string) {
	p.calcFailures.WithLabelValues(calcType).Inc()
}
