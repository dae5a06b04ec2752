// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package metrics records conformance run results as Prometheus metrics.
package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ChainSafe/go-digest/pkg/digest/dev"
)

const namespace = "digest"

// Result label values of the vectors counter.
const (
	ResultPass = "pass"
	ResultFail = "fail"
)

// StrategyNone labels failures that did not come from a feeding strategy,
// such as a hasher that could not be constructed.
const StrategyNone = "none"

// Recorder owns a private registry, so that several recorders, e.g. one
// per test, do not collide on metric names.
type Recorder struct {
	registry   *prometheus.Registry
	vectors    *prometheus.CounterVec
	mismatches *prometheus.CounterVec
	duration   *prometheus.GaugeVec
}

// NewRecorder creates a recorder with all metrics registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		vectors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vectors_total",
			Help:      "Number of test vectors checked, by suite and result.",
		}, []string{"suite", "result"}),
		mismatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mismatches_total",
			Help:      "Number of failed test vectors, by suite and feeding strategy.",
		}, []string{"suite", "strategy"}),
		duration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "suite_duration_seconds",
			Help:      "Wall time spent checking a suite.",
		}, []string{"suite"}),
	}

	r.registry.MustRegister(r.vectors, r.mismatches, r.duration)
	return r
}

// RecordSuite records the report of a suite run that took elapsed.
func (r *Recorder) RecordSuite(suite string, report *dev.Report, elapsed time.Duration) {
	failed := len(report.Failures)
	r.vectors.WithLabelValues(suite, ResultPass).Add(float64(report.Vectors - failed))
	r.vectors.WithLabelValues(suite, ResultFail).Add(float64(failed))

	for _, failure := range report.Failures {
		strategy := StrategyNone
		var mismatchErr *dev.MismatchError
		if errors.As(failure, &mismatchErr) {
			strategy = string(mismatchErr.Strategy)
		}
		r.mismatches.WithLabelValues(suite, strategy).Inc()
	}

	r.duration.WithLabelValues(suite).Set(elapsed.Seconds())
}

// WriteTextfile writes all metrics to path in the text exposition format,
// for the node exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	err := prometheus.WriteToTextfile(path, r.registry)
	if err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}

// Handler serves the metrics of the recorder.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
