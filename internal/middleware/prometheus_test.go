// Presence Analyzer - Employee Presence Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/presence-analyzer

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/presence-analyzer/internal/metrics"
)

func newInstrumentedRouter(status int) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return PrometheusMetrics(next.ServeHTTP)
	})
	r.Get("/api/v1/mean_time_weekday/{user_id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	})
	return r
}

func TestPrometheusMetrics_UsesRoutePattern(t *testing.T) {
	pattern := "/api/v1/mean_time_weekday/{user_id}"
	counter := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, pattern, "404")
	before := testutil.ToFloat64(counter)

	router := newInstrumentedRouter(http.StatusNotFound)
	for _, id := range []string{"10", "11", "12"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/mean_time_weekday/"+id, nil))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d", rec.Code)
		}
	}

	if got := testutil.ToFloat64(counter) - before; got != 3 {
		t.Errorf("requests for the pattern = %v, want 3", got)
	}
}

func TestPrometheusMetrics_DefaultStatusOK(t *testing.T) {
	counter := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, unmatchedRoute, "200")
	before := testutil.ToFloat64(counter)

	handler := PrometheusMetrics(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/plain", nil))

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("unmatched 200 delta = %v, want 1", got)
	}
}

func TestMetricsResponseWriter_FirstStatusWins(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := &metricsResponseWriter{ResponseWriter: rec, statusCode: http.StatusOK}
	rw.WriteHeader(http.StatusServiceUnavailable)
	rw.WriteHeader(http.StatusOK)

	if rw.statusCode != http.StatusServiceUnavailable {
		t.Errorf("statusCode = %d, want 503", rw.statusCode)
	}
}
