// Presence Analyzer - Employee Presence Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/presence-analyzer

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/tomtom215/presence-analyzer/internal/logging"
)

func TestRequestID_GeneratesNewID(t *testing.T) {
	t.Parallel()

	var captured string
	handler := RequestID(func(w http.ResponseWriter, r *http.Request) {
		captured = logging.RequestIDFromContext(r.Context())
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/api/v1/users", nil))

	header := rec.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(header); err != nil {
		t.Errorf("generated id %q is not a UUID: %v", header, err)
	}
	if captured != header {
		t.Errorf("context id %q does not match header %q", captured, header)
	}
}

func TestRequestID_PreservesUpstreamID(t *testing.T) {
	t.Parallel()

	var captured string
	handler := RequestID(func(w http.ResponseWriter, r *http.Request) {
		captured = logging.RequestIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	req.Header.Set(RequestIDHeader, "proxy-123")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if captured != "proxy-123" || rec.Header().Get(RequestIDHeader) != "proxy-123" {
		t.Errorf("upstream id not preserved: ctx=%q header=%q", captured, rec.Header().Get(RequestIDHeader))
	}
}

func TestRequestID_RejectsOversizedID(t *testing.T) {
	t.Parallel()

	handler := RequestID(func(w http.ResponseWriter, r *http.Request) {})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("x", maxRequestIDLength+1))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if got := rec.Header().Get(RequestIDHeader); len(got) != 36 {
		t.Errorf("oversized id should be replaced by a UUID, got %q", got)
	}
}
