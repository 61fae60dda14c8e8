// Presence Analyzer - Employee Presence Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/presence-analyzer

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/presence-analyzer/internal/logging"
	"github.com/tomtom215/presence-analyzer/internal/models"
)

// Health reports overall status, including whether the dataset loads.
// It always answers 200 so dashboards can show a degraded state.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := models.HealthStatus{
		Status:       "healthy",
		Version:      h.version,
		Uptime:       time.Since(h.startTime).Seconds(),
		CacheHitRate: h.source.CacheHitRate(),
	}

	data, err := h.source.Dataset(r.Context())
	if err != nil {
		status.Status = "degraded"
		status.Error = "dataset unavailable (breaker " + h.source.BreakerState() + ")"
	} else {
		status.DatasetLoaded = true
		status.Users = len(data)
	}
	respondSuccess(w, r, http.StatusOK, status)
}

// HealthLive answers as long as the process serves HTTP.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, http.StatusOK, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady answers 200 once the dataset can be served and 503 otherwise.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	_, err := h.source.Dataset(r.Context())
	if err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Readiness check failed")
		respondJSON(w, r, http.StatusServiceUnavailable, &models.APIResponse{
			Status: "not_ready",
			Data: map[string]interface{}{
				"ready_to_serve": false,
				"breaker":        h.source.BreakerState(),
			},
			Metadata: models.Metadata{Timestamp: time.Now().UTC()},
		})
		return
	}
	respondSuccess(w, r, http.StatusOK, map[string]interface{}{
		"ready_to_serve": true,
		"breaker":        h.source.BreakerState(),
	})
}

// InvalidateCache drops the cached dataset.
func (h *Handler) InvalidateCache(w http.ResponseWriter, r *http.Request) {
	h.source.Invalidate()
	logging.Ctx(r.Context()).Info().Msg("Dataset cache invalidated via API")
	respondSuccess(w, r, http.StatusOK, map[string]interface{}{"invalidated": true})
}
