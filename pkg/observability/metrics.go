package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "farm_sustainability"

// Metrics holds the Prometheus collectors of the scoring service.
type Metrics struct {
	ReadingsIngested *prometheus.CounterVec // labels: sensor_type
	ScoresComputed   *prometheus.CounterVec // labels: grade
	ScoreFailures    prometheus.Counter
	FireAssessments  *prometheus.CounterVec // labels: risk_level
	PublishErrors    prometheus.Counter
	RateLimited      prometheus.Counter

	BatchDuration  prometheus.Histogram
	BatchFarms     prometheus.Histogram
	SchedulerRuns  prometheus.Counter
	LastBatchFarms prometheus.Gauge
}

func newMetrics() *Metrics {
	return &Metrics{
		ReadingsIngested: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "readings_ingested_total",
			Help:      "Sensor readings stored, by sensor type.",
		}, []string{"sensor_type"}),
		ScoresComputed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scores_computed_total",
			Help:      "Sustainability scores stored, by grade.",
		}, []string{"grade"}),
		ScoreFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "score_failures_total",
			Help:      "Farms that produced no score in a batch.",
		}),
		FireAssessments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fire_assessments_total",
			Help:      "Fire-risk assessments stored, by risk level.",
		}, []string{"risk_level"}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "publish_errors_total",
			Help:      "Records that could not be published to Kafka.",
		}),
		RateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_requests_total",
			Help:      "HTTP requests rejected by the per-farm rate limiter.",
		}),
		BatchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_duration_seconds",
			Help:      "Duration of a batch scoring run over all farms.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		}),
		BatchFarms: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_farms",
			Help:      "Number of farms per batch scoring run.",
			Buckets:   []float64{1, 10, 50, 100, 500, 1000, 5000},
		}),
		SchedulerRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scheduler_runs_total",
			Help:      "Scheduled batch runs started.",
		}),
		LastBatchFarms: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_batch_scored_farms",
			Help:      "Farms scored by the most recent batch run.",
		}),
	}
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.ReadingsIngested,
		m.ScoresComputed,
		m.ScoreFailures,
		m.FireAssessments,
		m.PublishErrors,
		m.RateLimited,
		m.BatchDuration,
		m.BatchFarms,
		m.SchedulerRuns,
		m.LastBatchFarms,
	}
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(m.collectors()...)
	return m
}

// NewMetricsForTesting creates unregistered Metrics so tests can build as
// many as they like.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

// NewMetricsWithRegistry registers the metrics on reg.
func NewMetricsWithRegistry(reg prometheus.Registerer) *Metrics {
	m := newMetrics()
	reg.MustRegister(m.collectors()...)
	return m
}
