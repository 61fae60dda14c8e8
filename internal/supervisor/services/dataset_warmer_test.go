// Presence Analyzer - Employee Presence Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/presence-analyzer

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/presence-analyzer/internal/presence"
)

type fakeLoader struct {
	failures  int32
	rosterErr error
	calls     atomic.Int32
}

func (f *fakeLoader) Dataset(ctx context.Context) (presence.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.calls.Add(1) <= f.failures {
		return nil, errors.New("csv missing")
	}
	return presence.Dataset{10: presence.UserPresence{}}, nil
}

func (f *fakeLoader) Roster(context.Context) (presence.Roster, error) {
	return presence.Roster{}, f.rosterErr
}

func TestDatasetWarmer_Serve(t *testing.T) {
	tests := []struct {
		name    string
		loader  *fakeLoader
		wantErr error
	}{
		{"success stops for good", &fakeLoader{}, suture.ErrDoNotRestart},
		{"roster failure is not fatal", &fakeLoader{rosterErr: errors.New("bad xml")}, suture.ErrDoNotRestart},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDatasetWarmer(tt.loader).Serve(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Serve() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDatasetWarmer_LoadFailure(t *testing.T) {
	err := NewDatasetWarmer(&fakeLoader{failures: 1}).Serve(context.Background())
	if err == nil || errors.Is(err, suture.ErrDoNotRestart) {
		t.Fatalf("Serve() = %v, want a restartable error", err)
	}
}

func TestDatasetWarmer_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := NewDatasetWarmer(&fakeLoader{}).Serve(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}
}

func TestDatasetWarmer_RetriedBySupervisor(t *testing.T) {
	loader := &fakeLoader{failures: 2}
	sup := suture.New("test", suture.Spec{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		Timeout:          time.Second,
	})
	sup.Add(NewDatasetWarmer(loader))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sup.ServeBackground(ctx)

	deadline := time.Now().Add(2 * time.Second)
	for loader.calls.Load() < 3 {
		if time.Now().After(deadline) {
			t.Fatalf("warmer ran %d times, want 3", loader.calls.Load())
		}
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(50 * time.Millisecond)
	if got := loader.calls.Load(); got != 3 {
		t.Errorf("warmer ran %d times after success, want 3", got)
	}
}
