// Presence Analyzer - Employee Presence Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/presence-analyzer

/*
Package presence implements the presence aggregation engine.

The engine turns raw clock-in/clock-out rows into weekday statistics and
monthly overtime rankings. It performs no HTTP, caching or persistence work:
callers hand it opened streams and receive plain values back.

# Data Flow

	CSV rows  --ParseRecords-->  Dataset (user -> date -> interval)
	XML roster --ParseRoster-->  Roster  (user -> name, avatar URL)

	Dataset[user] --GroupByWeekday--> WeekdayBuckets --Mean/Sum--> tables
	Dataset[user] --StartEndTimes--> average clock times per weekday
	Dataset + Roster --Overtime--> ranked OvertimeEntry list

# Ordering

Go maps have no iteration order, so every operation that walks a user's dates
does so in ascending date order (UserPresence.Dates). Weekday buckets therefore
list durations chronologically, and results are reproducible across runs.

# Error Handling

Row-level problems never escape ParseRecords: rows with the wrong number of
fields are skipped silently, rows with unparsable fields produce a
MalformedRecordError that is logged at debug level and counted in ParseStats.
Roster problems (MissingFieldError, InvalidFieldError) and unopenable files
(SourceUnavailableError) are returned to the caller.

# Overtime Policy

Overtime is computed per (year, month). Every month in which a user worked
more than BusinessDaysSeconds is kept in OvertimeEntry.Months; the ranking key
is the largest of those monthly values. Ties are broken by ascending user id.

BusinessDaysSeconds counts Monday-Friday among days 1 through the
second-to-last day of the month. The last calendar day is never counted; the
dashboard's historic numbers depend on this and it is kept deliberately.
*/
package presence
