// Presence Analyzer - Employee Presence Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/presence-analyzer

/*
Package metrics declares the Prometheus collectors for the presence analyzer.

All collectors register with the default registry through promauto and are
served by promhttp on /metrics.

HTTP:
  - api_requests_total{method,endpoint,status}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests

The endpoint label is the chi route pattern (/api/v1/presence_weekday/{user_id}),
never the raw path, so user ids do not create new series.

Data source:
  - presence_dataset_load_duration_seconds{outcome}
  - presence_dataset_rows_total{outcome}: imported, skipped_shape, malformed
  - presence_cache_requests_total{result}: hit, miss
  - presence_roster_users
  - presence_source_breaker_open
*/
package metrics
