// Package metrics records evaluation and import counters in Prometheus format.
//
// The commands are short-lived, so nothing is scraped: a Recorder owns its own
// registry and is flushed to a node_exporter textfile with WriteFile.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sprawlsheet"

// Recorder holds every collector the commands update.
type Recorder struct {
	registry *prometheus.Registry

	Evaluations        *prometheus.CounterVec
	Issues             *prometheus.CounterVec
	EvaluationDuration prometheus.Histogram
	ContentQualities   *prometheus.GaugeVec
	ValidatedQualities *prometheus.CounterVec
	ImportedQualities  *prometheus.CounterVec
}

// New returns a Recorder registered on a fresh registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Recorder{
		registry: reg,
		Evaluations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluations_total",
			Help:      "Character sheets evaluated, by validity",
		}, []string{"valid"}),
		Issues: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_issues_total",
			Help:      "Validation issues reported, by code and severity",
		}, []string{"code", "severity"}),
		EvaluationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "evaluation_duration_seconds",
			Help:      "Time to evaluate one character sheet",
			Buckets:   []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
		}),
		ContentQualities: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "content_qualities",
			Help:      "Quality definitions loaded, by content source",
		}, []string{"source"}),
		ValidatedQualities: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validated_qualities_total",
			Help:      "Quality definitions validated by the catalog importer, by locale",
		}, []string{"locale"}),
		ImportedQualities: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "imported_qualities_total",
			Help:      "Quality definitions written by the catalog importer, by locale",
		}, []string{"locale"}),
	}
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveEvaluation counts one evaluation and its duration.
func (r *Recorder) ObserveEvaluation(valid bool, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.Evaluations.WithLabelValues(strconv.FormatBool(valid)).Inc()
	r.EvaluationDuration.Observe(elapsed.Seconds())
}

// ObserveIssue counts one validation issue.
func (r *Recorder) ObserveIssue(code, severity string) {
	if r == nil {
		return
	}
	r.Issues.WithLabelValues(code, severity).Inc()
}

// SetContentQualities records how many definitions a content source supplied.
func (r *Recorder) SetContentQualities(source string, n int) {
	if r == nil {
		return
	}
	r.ContentQualities.WithLabelValues(source).Set(float64(n))
}

// AddValidated counts definitions validated for one locale.
func (r *Recorder) AddValidated(locale string, n int) {
	if r == nil {
		return
	}
	r.ValidatedQualities.WithLabelValues(locale).Add(float64(n))
}

// AddImported counts definitions imported for one locale.
func (r *Recorder) AddImported(locale string, n int) {
	if r == nil {
		return
	}
	r.ImportedQualities.WithLabelValues(locale).Add(float64(n))
}

// WriteFile writes every collected metric to path in the text exposition
// format. An empty path is a no-op.
func (r *Recorder) WriteFile(path string) error {
	if r == nil || path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, r.registry)
}
