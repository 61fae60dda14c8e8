// Presence Analyzer - Employee Presence Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/presence-analyzer

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// Collectors are process-global, so tests compare deltas.

func TestRecordAPIRequest(t *testing.T) {
	endpoint := "/api/v1/presence_weekday/{user_id}"
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", endpoint, "200"))

	RecordAPIRequest("GET", endpoint, "200", 15*time.Millisecond)
	RecordAPIRequest("GET", endpoint, "200", 5*time.Millisecond)

	if got := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", endpoint, "200")) - before; got != 2 {
		t.Errorf("api_requests_total delta = %v, want 2", got)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests) - before; got != 1 {
		t.Errorf("active delta after inc = %v, want 1", got)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests) - before; got != 0 {
		t.Errorf("active delta after dec = %v, want 0", got)
	}
}

func TestRecordDatasetLoad(t *testing.T) {
	imported := testutil.ToFloat64(DatasetRows.WithLabelValues(RowsImported))
	malformed := testutil.ToFloat64(DatasetRows.WithLabelValues(RowsMalformed))
	shape := testutil.ToFloat64(DatasetRows.WithLabelValues(RowsSkippedShape))

	RecordDatasetLoad(time.Millisecond, 3, 1, 2, nil)
	RecordDatasetLoad(time.Millisecond, 100, 100, 100, errors.New("unreadable"))

	if got := testutil.ToFloat64(DatasetRows.WithLabelValues(RowsImported)) - imported; got != 3 {
		t.Errorf("imported delta = %v, want 3", got)
	}
	if got := testutil.ToFloat64(DatasetRows.WithLabelValues(RowsSkippedShape)) - shape; got != 1 {
		t.Errorf("skipped_shape delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(DatasetRows.WithLabelValues(RowsMalformed)) - malformed; got != 2 {
		t.Errorf("malformed delta = %v, want 2", got)
	}
	if n := testutil.CollectAndCount(DatasetLoadDuration); n < 2 {
		t.Errorf("expected success and error series, got %d", n)
	}
}

func TestRecordCacheLookup(t *testing.T) {
	hits := testutil.ToFloat64(CacheRequests.WithLabelValues("hit"))
	misses := testutil.ToFloat64(CacheRequests.WithLabelValues("miss"))

	RecordCacheLookup(true)
	RecordCacheLookup(true)
	RecordCacheLookup(false)

	if got := testutil.ToFloat64(CacheRequests.WithLabelValues("hit")) - hits; got != 2 {
		t.Errorf("hit delta = %v, want 2", got)
	}
	if got := testutil.ToFloat64(CacheRequests.WithLabelValues("miss")) - misses; got != 1 {
		t.Errorf("miss delta = %v, want 1", got)
	}
}

func TestGauges(t *testing.T) {
	SetRosterUsers(42)
	if got := testutil.ToFloat64(RosterUsers); got != 42 {
		t.Errorf("presence_roster_users = %v, want 42", got)
	}

	SetBreakerOpen("csv", true)
	SetBreakerOpen("roster", false)
	if got := testutil.ToFloat64(SourceBreakerOpen.WithLabelValues("csv")); got != 1 {
		t.Errorf("csv breaker gauge = %v, want 1", got)
	}
	if got := testutil.ToFloat64(SourceBreakerOpen.WithLabelValues("roster")); got != 0 {
		t.Errorf("roster breaker gauge = %v, want 0", got)
	}
	SetBreakerOpen("csv", false)
	if got := testutil.ToFloat64(SourceBreakerOpen.WithLabelValues("csv")); got != 0 {
		t.Errorf("csv breaker gauge = %v, want 0", got)
	}
}
