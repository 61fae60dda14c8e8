// Presence Analyzer - Employee Presence Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/presence-analyzer

package presence

// DaysPerWeek is the number of weekday buckets.
const DaysPerWeek = 7

// WeekdayAbbr holds the abbreviated weekday names indexed Monday=0 ... Sunday=6.
var WeekdayAbbr = [DaysPerWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// WeekdayBuckets holds interval durations in seconds, one bucket per weekday.
type WeekdayBuckets [DaysPerWeek][]int64

// GroupByWeekday sorts a user's intervals into weekday buckets. Within a
// bucket durations appear in ascending date order.
func GroupByWeekday(days UserPresence) WeekdayBuckets {
	var buckets WeekdayBuckets
	for _, date := range days.Dates() {
		wd := date.Weekday()
		buckets[wd] = append(buckets[wd], days[date].Duration())
	}
	return buckets
}
