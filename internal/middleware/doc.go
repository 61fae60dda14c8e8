// Presence Analyzer - Employee Presence Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/presence-analyzer

/*
Package middleware holds the HTTP middleware shared by every route.

  - RequestID: propagates or generates X-Request-ID and stores it in the
    request context for logging.Ctx
  - PrometheusMetrics: request counts, latency and in-flight gauge, labelled
    by chi route pattern

Both are written against http.HandlerFunc; the api package adapts them to
chi's func(http.Handler) http.Handler form.
*/
package middleware
