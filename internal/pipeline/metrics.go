package pipeline

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds Prometheus metrics for front-end passes. A nil *Metrics
// records nothing.
type Metrics struct {
	runsTotal        prometheus.Counter
	runDuration      prometheus.Histogram
	resolutionsTotal *prometheus.CounterVec
	diagnosticsTotal *prometheus.CounterVec
	blocksTotal      *prometheus.CounterVec
}

// NewMetrics creates and registers pass metrics. It returns nil when reg is
// nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return nil
	}

	m := &Metrics{
		runsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fclsem",
			Subsystem: "pipeline",
			Name:      "runs_total",
			Help:      "Front-end passes run",
		}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fclsem",
			Subsystem: "pipeline",
			Name:      "run_duration_seconds",
			Help:      "Time spent in a front-end pass",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
		resolutionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fclsem",
			Subsystem: "pipeline",
			Name:      "resolutions_total",
			Help:      "Dialect names resolved, by token type",
		}, []string{"token"}),
		diagnosticsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fclsem",
			Subsystem: "pipeline",
			Name:      "diagnostics_total",
			Help:      "Diagnostics reported, by error code",
		}, []string{"code"}),
		blocksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fclsem",
			Subsystem: "pipeline",
			Name:      "rule_blocks_total",
			Help:      "Rule blocks resolved, by AND/OR family pair",
		}, []string{"pair"}),
	}

	reg.MustRegister(
		m.runsTotal,
		m.runDuration,
		m.resolutionsTotal,
		m.diagnosticsTotal,
		m.blocksTotal,
	)
	return m
}

func (m *Metrics) observe(ctx *PipelineContext, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.runsTotal.Inc()
	m.runDuration.Observe(elapsed.Seconds())
	for _, r := range ctx.Resolutions {
		m.resolutionsTotal.WithLabelValues(string(r.Token.Type)).Inc()
	}
	for _, err := range ctx.Errors {
		m.diagnosticsTotal.WithLabelValues(string(err.Code)).Inc()
	}
	for _, name := range ctx.Blocks {
		m.blocksTotal.WithLabelValues(ctx.Aggregations[name].String()).Inc()
	}
}
