// Presence Analyzer - Employee Presence Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/presence-analyzer

// Package services adapts the analyzer's long-running components to
// suture.Service so they can be placed in the supervisor tree.
package services
