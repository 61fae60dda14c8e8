// Presence Analyzer - Employee Presence Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/presence-analyzer

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/presence-analyzer/internal/models"
	"github.com/tomtom215/presence-analyzer/internal/presence"
)

// fakeSource is an in-memory DataSource.
type fakeSource struct {
	mu          sync.Mutex
	dataset     presence.Dataset
	roster      presence.Roster
	datasetErr  error
	rosterErr   error
	invalidated int
}

func (f *fakeSource) Dataset(context.Context) (presence.Dataset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.dataset, f.datasetErr
}

func (f *fakeSource) Roster(context.Context) (presence.Roster, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.roster, f.rosterErr
}

func (f *fakeSource) Invalidate() {
	f.mu.Lock()
	f.invalidated++
	f.mu.Unlock()
}

func (f *fakeSource) BreakerState() string  { return "closed" }
func (f *fakeSource) CacheHitRate() float64 { return 50 }

func day(year int, month time.Month, d, startHour, endHour int) (presence.Date, presence.Interval) {
	return presence.Date{Year: year, Month: month, Day: d},
		presence.Interval{Start: presence.Clock{Hour: startHour}, End: presence.Clock{Hour: endHour}}
}

func presenceOf(days ...func() (presence.Date, presence.Interval)) presence.UserPresence {
	out := make(presence.UserPresence)
	for _, d := range days {
		date, interval := d()
		out[date] = interval
	}
	return out
}

func on(year int, month time.Month, d, startHour, endHour int) func() (presence.Date, presence.Interval) {
	return func() (presence.Date, presence.Interval) { return day(year, month, d, startHour, endHour) }
}

// newFakeSource returns three users: 10 and 11 in the roster, 12 only in
// the CSV.
func newFakeSource() *fakeSource {
	return &fakeSource{
		dataset: presence.Dataset{
			10: presenceOf(
				on(2013, time.September, 9, 9, 17),  // Mon, 8h
				on(2013, time.September, 16, 10, 18), // Mon, 8h
				on(2013, time.September, 10, 9, 12),  // Tue, 3h
			),
			11: presenceOf(on(2013, time.September, 9, 9, 17)),
			12: presenceOf(on(2013, time.September, 9, 6, 23)),
		},
		roster: presence.Roster{
			10: {UserID: 10, Name: "Adam P.", AvatarURL: "https://intranet.example.com/api/images/users/10"},
			11: {UserID: 11, Name: "Adrian K.", AvatarURL: "https://intranet.example.com/api/images/users/11"},
		},
	}
}

func newTestRouter(t *testing.T, src DataSource) (*Handler, http.Handler) {
	t.Helper()
	h := NewHandler(src, "test")
	mw := NewChiMiddleware(&ChiMiddlewareConfig{
		CORSAllowedOrigins: []string{"*"},
		CORSAllowedMethods: []string{"GET", "POST"},
		RateLimitDisabled:  true,
	})
	return h, NewRouter(h, mw).SetupChi()
}

func doRequest(t *testing.T, handler http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) models.APIResponse {
	t.Helper()
	var resp models.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid envelope %q: %v", rec.Body.String(), err)
	}
	return resp
}
