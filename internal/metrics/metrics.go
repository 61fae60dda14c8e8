// Presence Analyzer - Employee Presence Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/presence-analyzer

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Row outcome label values.
const (
	RowsImported     = "imported"
	RowsSkippedShape = "skipped_shape"
	RowsMalformed    = "malformed"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Number of requests currently being served",
		},
	)

	// Data Source Metrics
	DatasetLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "presence_dataset_load_duration_seconds",
			Help:    "Time spent reading and parsing the presence CSV",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)

	DatasetRows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "presence_dataset_rows_total",
			Help: "Presence CSV rows by parse outcome",
		},
		[]string{"outcome"},
	)

	CacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "presence_cache_requests_total",
			Help: "Dataset cache lookups by result",
		},
		[]string{"result"},
	)

	RosterUsers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "presence_roster_users",
			Help: "Users in the most recently read roster",
		},
	)

	SourceBreakerOpen = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "presence_source_breaker_open",
			Help: "1 while the circuit breaker of a source file is open, 0 otherwise",
		},
		[]string{"source"},
	)
)

// RecordAPIRequest records one served request.
func RecordAPIRequest(method, endpoint, status string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordDatasetLoad records how a CSV load went. Row counts are only
// added for loads that produced a dataset.
func RecordDatasetLoad(duration time.Duration, imported, skippedShape, malformed int64, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	DatasetLoadDuration.WithLabelValues(outcome).Observe(duration.Seconds())
	if err != nil {
		return
	}
	DatasetRows.WithLabelValues(RowsImported).Add(float64(imported))
	DatasetRows.WithLabelValues(RowsSkippedShape).Add(float64(skippedShape))
	DatasetRows.WithLabelValues(RowsMalformed).Add(float64(malformed))
}

// RecordCacheLookup counts a dataset cache hit or miss.
func RecordCacheLookup(hit bool) {
	if hit {
		CacheRequests.WithLabelValues("hit").Inc()
	} else {
		CacheRequests.WithLabelValues("miss").Inc()
	}
}

// SetRosterUsers records the size of the last roster read.
func SetRosterUsers(n int) {
	RosterUsers.Set(float64(n))
}

// SetBreakerOpen flips the breaker gauge of one source (csv or roster).
func SetBreakerOpen(source string, open bool) {
	if open {
		SourceBreakerOpen.WithLabelValues(source).Set(1)
	} else {
		SourceBreakerOpen.WithLabelValues(source).Set(0)
	}
}
