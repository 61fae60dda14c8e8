// Presence Analyzer - Employee Presence Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/presence-analyzer

/*
Package datasource serves the presence dataset and user roster to the API.

The dataset is parsed from the CSV at most once per cache TTL and shared by
all requests; concurrent misses trigger a single parse. The roster is read
from XML on every call, so edits to the roster file show up immediately.

Both reads go through one circuit breaker (sony/gobreaker). After the
configured number of consecutive failures the breaker opens and calls fail
fast with ErrCircuitOpen until the timeout elapses; one trial read then
decides whether it closes again.
*/
package datasource
