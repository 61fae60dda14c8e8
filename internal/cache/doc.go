// Presence Analyzer - Employee Presence Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/presence-analyzer

/*
Package cache provides a thread-safe in-memory TTL cache.

The presence analyzer keeps exactly one expensive value in it: the parsed
presence dataset, which is rebuilt from the CSV at most once per TTL.
GetOrLoad collapses concurrent misses for the same key into a single load
(golang.org/x/sync/singleflight), so a burst of requests after expiry reads
the file once.

	c := cache.New(10 * time.Minute)
	defer c.Close()

	v, hit, err := c.GetOrLoad("dataset", func() (interface{}, error) {
	    ds, _, err := presence.LoadRecords(path)
	    return ds, err
	})

Expired entries are removed lazily on Get and by a background sweep.
Failed loads are never cached.
*/
package cache
