// Presence Analyzer - Employee Presence Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/presence-analyzer

package presence

import (
	"sort"
	"time"
)

// WorkdaySeconds is the expected presence for one business day (8 hours).
const WorkdaySeconds int64 = 8 * 60 * 60

// YearMonth identifies a calendar month.
type YearMonth struct {
	Year  int
	Month time.Month
}

// Before reports whether ym is earlier than other.
func (ym YearMonth) Before(other YearMonth) bool {
	if ym.Year != other.Year {
		return ym.Year < other.Year
	}
	return ym.Month < other.Month
}

// BaselineFunc returns the expected worked seconds for a month.
type BaselineFunc func(year int, month time.Month) int64

// BusinessDaysSeconds returns WorkdaySeconds times the number of Monday-Friday
// days among days 1 .. last-1 of the month. The last day is not counted.
func BusinessDaysSeconds(year int, month time.Month) int64 {
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	var days int64
	for day := 1; day < lastDay; day++ {
		if wd := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday(); wd != time.Saturday && wd != time.Sunday {
			days++
		}
	}
	return days * WorkdaySeconds
}

// MonthlyWorked sums interval durations per calendar month.
func MonthlyWorked(days UserPresence) map[YearMonth]int64 {
	out := make(map[YearMonth]int64)
	for date, interval := range days {
		out[YearMonth{Year: date.Year, Month: date.Month}] += interval.Duration()
	}
	return out
}

// MonthlyOvertime is the overtime accumulated in one month.
type MonthlyOvertime struct {
	YearMonth
	WorkedSeconds   int64
	BaselineSeconds int64
	OvertimeSeconds int64
}

// OvertimeEntry is one row of the overtime ranking.
type OvertimeEntry struct {
	UserID int
	Name   string

	// OvertimeSeconds is the largest monthly overtime in Months.
	OvertimeSeconds int64

	// Months lists every month with overtime, oldest first.
	Months []MonthlyOvertime
}

// OvertimeCalculator ranks users by monthly overtime.
type OvertimeCalculator struct {
	// Baseline returns the expected seconds per month.
	// Default: BusinessDaysSeconds
	Baseline BaselineFunc
}

// Overtime ranks users with the default business-day baseline.
func Overtime(data Dataset, roster Roster) []OvertimeEntry {
	return OvertimeCalculator{}.Rank(data, roster)
}

// Rank computes overtime for every user present in both data and roster and
// returns entries ordered by OvertimeSeconds descending, ties by user id.
// Users missing from the roster and users never above the baseline are
// omitted.
func (c OvertimeCalculator) Rank(data Dataset, roster Roster) []OvertimeEntry {
	baseline := c.Baseline
	if baseline == nil {
		baseline = BusinessDaysSeconds
	}

	entries := make([]OvertimeEntry, 0)
	for userID, days := range data {
		profile, ok := roster[userID]
		if !ok {
			continue
		}

		months := userOvertime(days, baseline)
		if len(months) == 0 {
			continue
		}

		entry := OvertimeEntry{UserID: userID, Name: profile.Name, Months: months}
		for _, m := range months {
			if m.OvertimeSeconds > entry.OvertimeSeconds {
				entry.OvertimeSeconds = m.OvertimeSeconds
			}
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].OvertimeSeconds != entries[j].OvertimeSeconds {
			return entries[i].OvertimeSeconds > entries[j].OvertimeSeconds
		}
		return entries[i].UserID < entries[j].UserID
	})
	return entries
}

func userOvertime(days UserPresence, baseline BaselineFunc) []MonthlyOvertime {
	var months []MonthlyOvertime
	for ym, worked := range MonthlyWorked(days) {
		expected := baseline(ym.Year, ym.Month)
		if worked <= expected {
			continue
		}
		months = append(months, MonthlyOvertime{
			YearMonth:       ym,
			WorkedSeconds:   worked,
			BaselineSeconds: expected,
			OvertimeSeconds: worked - expected,
		})
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j].YearMonth) })
	return months
}
