// Presence Analyzer - Employee Presence Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/presence-analyzer

package api

import (
	"context"
	"time"

	"github.com/tomtom215/presence-analyzer/internal/presence"
)

// DataSource is what the handlers need from the data layer.
type DataSource interface {
	Dataset(ctx context.Context) (presence.Dataset, error)
	Roster(ctx context.Context) (presence.Roster, error)
	Invalidate()
	BreakerState() string
	CacheHitRate() float64
}

// Handler serves every API endpoint.
type Handler struct {
	source    DataSource
	overtime  presence.OvertimeCalculator
	version   string
	startTime time.Time
}

// NewHandler creates a Handler reading from source.
func NewHandler(source DataSource, version string) *Handler {
	return &Handler{
		source:    source,
		version:   version,
		startTime: time.Now(),
	}
}
