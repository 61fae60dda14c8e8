// Presence Analyzer - Employee Presence Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/presence-analyzer

package services

import (
	"context"
	"fmt"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/presence-analyzer/internal/logging"
	"github.com/tomtom215/presence-analyzer/internal/presence"
)

// DatasetLoader is satisfied by *datasource.Source.
type DatasetLoader interface {
	Dataset(ctx context.Context) (presence.Dataset, error)
	Roster(ctx context.Context) (presence.Roster, error)
}

// DatasetWarmer loads the presence dataset once so the first API request
// hits a warm cache. A failed load is returned to the supervisor, which
// retries it with backoff. After a successful load the warmer exits for good.
type DatasetWarmer struct {
	loader DatasetLoader
}

// NewDatasetWarmer returns a warmer for loader.
func NewDatasetWarmer(loader DatasetLoader) *DatasetWarmer {
	return &DatasetWarmer{loader: loader}
}

// Serve implements suture.Service.
func (d *DatasetWarmer) Serve(ctx context.Context) error {
	log := logging.WithComponent("warmer")

	data, err := d.loader.Dataset(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("warm dataset: %w", err)
	}

	// The roster is re-read per request; a failure here is only reported.
	roster, err := d.loader.Roster(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Roster not readable at startup")
	} else {
		log.Debug().Int("profiles", len(roster)).Msg("Roster readable")
	}

	log.Info().Int("users", len(data)).Msg("Presence dataset warmed")
	return suture.ErrDoNotRestart
}

func (d *DatasetWarmer) String() string {
	return "dataset-warmer"
}
