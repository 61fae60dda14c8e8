// Presence Analyzer - Employee Presence Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/presence-analyzer

package models

import (
	"time"
)

// APIResponse is the envelope for operational endpoints and errors.
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata accompanies every enveloped response.
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
	Cached    bool      `json:"cached,omitempty"`
}

// APIError carries a machine-readable code and a human message.
//
// Codes in use: VALIDATION_ERROR, NOT_FOUND, SOURCE_UNAVAILABLE,
// RATE_LIMIT_EXCEEDED, INTERNAL_ERROR.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is returned by the health endpoints.
type HealthStatus struct {
	Status        string  `json:"status"`
	Version       string  `json:"version,omitempty"`
	Uptime        float64 `json:"uptime_seconds"`
	DatasetLoaded bool    `json:"dataset_loaded"`
	Users         int     `json:"users,omitempty"`
	CacheHitRate  float64 `json:"cache_hit_rate"`
	Error         string  `json:"error,omitempty"`
}
