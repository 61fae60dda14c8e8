// Presence Analyzer - Employee Presence Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/presence-analyzer

package api

import (
	"context"
	"errors"
	"hash/fnv"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/presence-analyzer/internal/datasource"
	"github.com/tomtom215/presence-analyzer/internal/logging"
	"github.com/tomtom215/presence-analyzer/internal/models"
	"github.com/tomtom215/presence-analyzer/internal/presence"
	"github.com/tomtom215/presence-analyzer/internal/validation"
)

// Error codes used in the envelope.
const (
	ErrCodeValidation        = validation.CodeValidation
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeSourceUnavailable = "SOURCE_UNAVAILABLE"
	ErrCodeRateLimited       = "RATE_LIMIT_EXCEEDED"
	ErrCodeInternal          = "INTERNAL_ERROR"
)

// respondJSON writes body as JSON with an ETag. A matching If-None-Match
// gets 304 with no body.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	data, err := json.Marshal(body)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	etag := generateETag(data)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("ETag", etag)
	if status == http.StatusOK && r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write JSON response")
	}
}

// respondSuccess wraps data in the success envelope.
func respondSuccess(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	respondJSON(w, r, status, &models.APIResponse{
		Status:   "success",
		Data:     data,
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
	})
}

// respondError writes the error envelope. err, if set, is logged and never
// sent to the client beyond message.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	if err != nil {
		event := logging.Ctx(r.Context()).Warn()
		if status >= http.StatusInternalServerError {
			event = logging.Ctx(r.Context()).Error()
		}
		event.Err(err).Str("code", code).Int("status", status).Str("path", sanitizeLogValue(r.URL.Path)).Msg("API error")
	}

	respondJSON(w, r, status, &models.APIResponse{
		Status:   "error",
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
		Error:    &models.APIError{Code: code, Message: message},
	})
}

// respondSourceError maps a data layer error to a status code.
func respondSourceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, presence.ErrUserNotFound):
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, err.Error(), nil)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		// Client went away; nothing useful to send.
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Request abandoned")
	case errors.Is(err, datasource.ErrCircuitOpen):
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeSourceUnavailable, "presence data temporarily unavailable", err)
	default:
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeSourceUnavailable, "presence data could not be read", err)
	}
}

type userPathParams struct {
	UserID int `json:"user_id" validate:"gte=0"`
}

// userIDParam parses and validates {user_id}, writing a 400 on failure.
func userIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "user_id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, "user_id must be an integer", nil)
		return 0, false
	}

	params := userPathParams{UserID: id}
	if verr := validation.ValidateStruct(&params); verr != nil {
		apiErr := verr.ToAPIError()
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return 0, false
	}
	return id, true
}

// generateETag hashes the body with FNV-1a.
func generateETag(data []byte) string {
	h := fnv.New32a()
	_, _ = h.Write(data)
	return `"` + strconv.FormatUint(uint64(h.Sum32()), 16) + `"`
}

// sanitizeLogValue strips line breaks so request paths cannot forge log lines.
func sanitizeLogValue(s string) string {
	return strings.NewReplacer("\n", "", "\r", "").Replace(s)
}
