// Presence Analyzer - Employee Presence Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/presence-analyzer

// Package logging wraps zerolog behind a process-wide logger for the
// presence analyzer.
//
// Call Init once from main with the values loaded by the config package.
// Until then the package logs JSON at info level to stderr.
//
//	logging.Init(logging.Config{Level: "debug", Format: "console"})
//	logging.Info().Int("users", n).Msg("Roster loaded")
//
// Request handlers should prefer Ctx, which attaches the request id stored
// by the request id middleware:
//
//	logging.Ctx(r.Context()).Warn().Err(err).Msg("Dataset unavailable")
//
// Libraries that expect a *slog.Logger (suture via sutureslog) are served
// by NewSlogLogger, which forwards records to the same zerolog output.
//
// Always end an event chain with Msg or Send, otherwise nothing is written.
package logging
