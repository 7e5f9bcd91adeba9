package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "accumcalc"

// Recorder receives events from the runners. Implementations must be safe
// for concurrent use.
type Recorder interface {
	// OperationApplied counts one operation folded into the accumulator.
	OperationApplied(strategy string)
	// LineFailed counts one skipped line; reason is a short classification
	// such as "wrong_arity" or "divide_by_zero".
	LineFailed(strategy, reason string)
	// FileFailed counts one file whose processing stopped early.
	FileFailed(strategy, reason string)
	// RunCompleted records the wall-clock duration of one full run.
	RunCompleted(strategy string, d time.Duration)
}

// NopRecorder discards all events.
type NopRecorder struct{}

func (NopRecorder) OperationApplied(string) {}
func (NopRecorder) LineFailed(string, string) {}
func (NopRecorder) FileFailed(string, string) {}
func (NopRecorder) RunCompleted(string, time.Duration) {}

// PrometheusRecorder implements Recorder with client_golang collectors
// registered on a private registry, so several instances can coexist.
type PrometheusRecorder struct {
	registry     *prometheus.Registry
	applied      *prometheus.CounterVec
	lineFailures *prometheus.CounterVec
	fileFailures *prometheus.CounterVec
	runDuration  *prometheus.HistogramVec
}

// NewPrometheusRecorder creates a recorder with its own registry.
func NewPrometheusRecorder() *PrometheusRecorder {
	r := &PrometheusRecorder{
		registry: prometheus.NewRegistry(),
		applied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_applied_total",
			Help:      "Operations applied to the accumulator.",
		}, []string{"strategy"}),
		lineFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "line_failures_total",
			Help:      "Lines skipped because they failed to parse or apply.",
		}, []string{"strategy", "reason"}),
		fileFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "file_failures_total",
			Help:      "Files whose processing stopped on an open or read error.",
		}, []string{"strategy", "reason"}),
		runDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of a complete run.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"strategy"}),
	}
	r.registry.MustRegister(r.applied, r.lineFailures, r.fileFailures, r.runDuration)
	return r
}

func (r *PrometheusRecorder) OperationApplied(strategy string) {
	r.applied.WithLabelValues(strategy).Inc()
}

func (r *PrometheusRecorder) LineFailed(strategy, reason string) {
	r.lineFailures.WithLabelValues(strategy, reason).Inc()
}

func (r *PrometheusRecorder) FileFailed(strategy, reason string) {
	r.fileFailures.WithLabelValues(strategy, reason).Inc()
}

func (r *PrometheusRecorder) RunCompleted(strategy string, d time.Duration) {
	r.runDuration.WithLabelValues(strategy).Observe(d.Seconds())
}

// Registry exposes the underlying registry, e.g. for an HTTP handler.
func (r *PrometheusRecorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteText writes every gathered metric family in the Prometheus text
// exposition format.
func (r *PrometheusRecorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
