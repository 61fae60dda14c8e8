// Presence Analyzer - Employee Presence Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/presence-analyzer

// Package validation wraps go-playground/validator for configuration structs
// and HTTP path parameters.
//
// Struct fields are reported by their koanf or json tag name, so a failure
// on Config.Data.CacheTTL reads "cache_ttl must be greater than 0" rather
// than exposing the Go field name. Errors convert to the API error envelope
// through ToAPIError.
//
//	type userPath struct {
//	    UserID int `json:"user_id" validate:"gte=0"`
//	}
//	if err := validation.ValidateStruct(&p); err != nil {
//	    respondError(w, http.StatusBadRequest, err.ToAPIError().Code, err.Error(), err)
//	}
package validation
