// Presence Analyzer - Employee Presence Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/presence-analyzer

package supervisor

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/presence-analyzer/internal/logging"
)

// stubService fails a configured number of times, then runs until canceled
// or returns a fixed result.
type stubService struct {
	name     string
	fails    int32
	result   error
	starts   atomic.Int32
	attempts atomic.Int32
}

func (s *stubService) Serve(ctx context.Context) error {
	s.starts.Add(1)
	if s.attempts.Add(1) <= s.fails {
		return errors.New("simulated failure")
	}
	if s.result != nil {
		return s.result
	}
	<-ctx.Done()
	return ctx.Err()
}

func (s *stubService) String() string { return s.name }

func newTestTree(cfg TreeConfig) *Tree {
	return NewTree(logging.NewSlogLogger(), cfg)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met before deadline")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestTreeConfigDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   TreeConfig
		want TreeConfig
	}{
		{"zero value", TreeConfig{}, DefaultTreeConfig()},
		{
			"explicit values kept",
			TreeConfig{FailureThreshold: 2, FailureDecay: 1, FailureBackoff: time.Second, ShutdownTimeout: 3 * time.Second},
			TreeConfig{FailureThreshold: 2, FailureDecay: 1, FailureBackoff: time.Second, ShutdownTimeout: 3 * time.Second},
		},
		{
			"negative durations replaced",
			TreeConfig{FailureBackoff: -time.Second, ShutdownTimeout: -1},
			DefaultTreeConfig(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := newTestTree(tt.in).config; got != tt.want {
				t.Errorf("config = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTreeStartsBothLayers(t *testing.T) {
	tree := newTestTree(TreeConfig{ShutdownTimeout: time.Second})
	data := &stubService{name: "data"}
	api := &stubService{name: "api"}
	tree.AddDataService(data)
	tree.AddAPIService(api)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	waitFor(t, func() bool { return data.starts.Load() == 1 && api.starts.Load() == 1 })
	cancel()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("unexpected error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("tree did not stop")
	}

	report, err := tree.UnstoppedServiceReport()
	if err != nil {
		t.Fatalf("UnstoppedServiceReport: %v", err)
	}
	if len(report) != 0 {
		t.Errorf("unstopped services: %v", report)
	}
}

func TestTreeRestartsFailingDataService(t *testing.T) {
	tree := newTestTree(TreeConfig{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		ShutdownTimeout:  time.Second,
	})
	flaky := &stubService{name: "flaky", fails: 2}
	api := &stubService{name: "api"}
	tree.AddDataService(flaky)
	tree.AddAPIService(api)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	tree.ServeBackground(ctx)

	waitFor(t, func() bool { return flaky.starts.Load() >= 3 })
	if got := api.starts.Load(); got != 1 {
		t.Errorf("api service started %d times, a data-layer failure must not restart it", got)
	}
}

func TestTreeDoNotRestart(t *testing.T) {
	tree := newTestTree(TreeConfig{FailureBackoff: 10 * time.Millisecond, ShutdownTimeout: time.Second})
	once := &stubService{name: "once", result: suture.ErrDoNotRestart}
	tree.AddDataService(once)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	tree.ServeBackground(ctx)

	waitFor(t, func() bool { return once.starts.Load() == 1 })
	time.Sleep(50 * time.Millisecond)
	if got := once.starts.Load(); got != 1 {
		t.Errorf("service returning ErrDoNotRestart started %d times", got)
	}
}
