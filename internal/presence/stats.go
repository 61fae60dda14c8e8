// Presence Analyzer - Employee Presence Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/presence-analyzer

package presence

import (
	"fmt"
)

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
func Mean(values []int64) float64 {
	if len(values) == 0 {
		return 0
	}
	return float64(Sum(values)) / float64(len(values))
}

// Sum returns the total of values, or 0 for an empty slice.
func Sum(values []int64) int64 {
	var total int64
	for _, v := range values {
		total += v
	}
	return total
}

// FormatSeconds renders a number of seconds as H:MM:SS. Hours are not wrapped
// at 24 and fractional seconds are truncated.
func FormatSeconds(seconds float64) string {
	total := int64(seconds)
	sign := ""
	if total < 0 {
		sign = "-"
		total = -total
	}
	return fmt.Sprintf("%s%d:%02d:%02d", sign, total/3600, (total%3600)/60, total%60)
}

// AverageClock returns the mean of values formatted with FormatSeconds.
func AverageClock(values []int64) string {
	return FormatSeconds(Mean(values))
}

// WeekdayValue is one row of a per-weekday table.
type WeekdayValue struct {
	Weekday string
	Value   float64
}

// WeekdayTotals returns the total presence per weekday, Monday first.
func WeekdayTotals(days UserPresence) []WeekdayValue {
	buckets := GroupByWeekday(days)
	out := make([]WeekdayValue, DaysPerWeek)
	for i, bucket := range buckets {
		out[i] = WeekdayValue{Weekday: WeekdayAbbr[i], Value: float64(Sum(bucket))}
	}
	return out
}

// WeekdayMeans returns the mean presence per weekday, Monday first.
func WeekdayMeans(days UserPresence) []WeekdayValue {
	buckets := GroupByWeekday(days)
	out := make([]WeekdayValue, DaysPerWeek)
	for i, bucket := range buckets {
		out[i] = WeekdayValue{Weekday: WeekdayAbbr[i], Value: Mean(bucket)}
	}
	return out
}

// StartEnd holds average clock-in and clock-out times as H:MM:SS strings.
type StartEnd struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// StartEndTimes computes the average start and end of day for each weekday
// abbreviation. Weekdays without records report 0:00:00.
func StartEndTimes(days UserPresence) map[string]StartEnd {
	var starts, ends [DaysPerWeek][]int64
	for _, date := range days.Dates() {
		wd := date.Weekday()
		interval := days[date]
		starts[wd] = append(starts[wd], interval.Start.SecondsSinceMidnight())
		ends[wd] = append(ends[wd], interval.End.SecondsSinceMidnight())
	}

	out := make(map[string]StartEnd, DaysPerWeek)
	for i, abbr := range WeekdayAbbr {
		out[abbr] = StartEnd{
			Start: AverageClock(starts[i]),
			End:   AverageClock(ends[i]),
		}
	}
	return out
}
