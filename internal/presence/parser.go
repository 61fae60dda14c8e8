// Presence Analyzer - Employee Presence Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/presence-analyzer

package presence

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/tomtom215/presence-analyzer/internal/logging"
)

// recordFields is the number of columns in a presence row:
// user_id, date, start, end.
const recordFields = 4

// ParseStats holds statistics about a parse run.
type ParseStats struct {
	// Rows is the number of rows read, including skipped ones.
	Rows int64

	// Imported is the number of rows inserted into the dataset.
	Imported int64

	// SkippedShape is the number of rows without exactly four fields.
	SkippedShape int64

	// Malformed is the number of four-field rows that failed to parse.
	Malformed int64
}

// ParseRecords reads presence rows from r and groups them by user and date.
//
// Rows that do not have exactly four fields are treated as header or footer
// noise and skipped. Rows with broken quoting or fields that fail to parse are
// reported as MalformedRecordError at debug level and skipped without touching
// the dataset. Only read errors are returned.
func ParseRecords(r io.Reader) (Dataset, ParseStats, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	data := make(Dataset)
	var stats ParseStats

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return nil, stats, fmt.Errorf("read presence rows: %w", err)
			}
			stats.Rows++
			stats.Malformed++
			malformed := unreadableRow(parseErr)
			logging.Debug().Err(malformed).Int("line", malformed.Line).Msg("Problem with presence row")
			continue
		}
		stats.Rows++

		if len(row) != recordFields {
			stats.SkippedShape++
			continue
		}

		line, _ := reader.FieldPos(0)
		rec, err := parseRow(line, row)
		if err != nil {
			stats.Malformed++
			logging.Debug().Err(err).Int("line", line).Msg("Problem with presence row")
			continue
		}

		data.Add(rec)
		stats.Imported++
	}

	return data, stats, nil
}

// unreadableRow wraps a CSV syntax error (bad quoting) for the row it hit.
func unreadableRow(err *csv.ParseError) *MalformedRecordError {
	return &MalformedRecordError{Line: err.StartLine, Field: "row", Err: err}
}

// parseRow converts one four-field row. Either every field parses and a
// complete record is returned, or nothing is.
func parseRow(line int, row []string) (PresenceRecord, error) {
	userID, err := strconv.Atoi(row[0])
	if err != nil {
		return PresenceRecord{}, &MalformedRecordError{Line: line, Field: "user_id", Value: row[0], Err: err}
	}
	date, err := ParseDate(row[1])
	if err != nil {
		return PresenceRecord{}, &MalformedRecordError{Line: line, Field: "date", Value: row[1], Err: err}
	}
	start, err := ParseClock(row[2])
	if err != nil {
		return PresenceRecord{}, &MalformedRecordError{Line: line, Field: "start", Value: row[2], Err: err}
	}
	end, err := ParseClock(row[3])
	if err != nil {
		return PresenceRecord{}, &MalformedRecordError{Line: line, Field: "end", Value: row[3], Err: err}
	}

	return PresenceRecord{
		UserID:   userID,
		Date:     date,
		Interval: Interval{Start: start, End: end},
	}, nil
}

// LoadRecords opens the CSV file at path and parses it with ParseRecords.
func LoadRecords(path string) (Dataset, ParseStats, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, ParseStats{}, &SourceUnavailableError{Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logging.Warn().Err(cerr).Str("path", path).Msg("Failed to close presence file")
		}
	}()

	return ParseRecords(f)
}
