// Presence Analyzer - Employee Presence Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/presence-analyzer

package presence

import (
	"fmt"
	"sort"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04:05"
)

// Date is a calendar date without a time zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the ISO weekday index: Monday=0 ... Sunday=6.
func (d Date) Weekday() int {
	return (int(d.Time().Weekday()) + 6) % 7
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Clock is a time of day with second precision.
type Clock struct {
	Hour   int
	Minute int
	Second int
}

// ParseClock parses an HH:MM:SS string.
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return Clock{}, err
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
}

// SecondsSinceMidnight returns the number of seconds elapsed since 00:00:00.
func (c Clock) SecondsSinceMidnight() int64 {
	return int64(c.Hour)*3600 + int64(c.Minute)*60 + int64(c.Second)
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

// Interval is one day's clock-in/clock-out pair.
type Interval struct {
	Start Clock
	End   Clock
}

// Duration returns end minus start in seconds. The value is negative when
// End precedes Start; it is not clamped.
func (i Interval) Duration() int64 {
	return i.End.SecondsSinceMidnight() - i.Start.SecondsSinceMidnight()
}

// PresenceRecord is one parsed input row.
type PresenceRecord struct {
	UserID   int
	Date     Date
	Interval Interval
}

// UserPresence maps a date to the interval recorded for one user.
type UserPresence map[Date]Interval

// Dates returns the user's dates in ascending order.
func (p UserPresence) Dates() []Date {
	dates := make([]Date, 0, len(p))
	for d := range p {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// Dataset maps a user id to that user's presence.
type Dataset map[int]UserPresence

// Add inserts a record, replacing any earlier record for the same user and date.
func (ds Dataset) Add(rec PresenceRecord) {
	days, ok := ds[rec.UserID]
	if !ok {
		days = make(UserPresence)
		ds[rec.UserID] = days
	}
	days[rec.Date] = rec.Interval
}

// User returns the presence of userID or ErrUserNotFound.
func (ds Dataset) User(userID int) (UserPresence, error) {
	days, ok := ds[userID]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", userID, ErrUserNotFound)
	}
	return days, nil
}

// UserIDs returns all user ids in ascending order.
func (ds Dataset) UserIDs() []int {
	ids := make([]int, 0, len(ds))
	for id := range ds {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// UserProfile is a roster entry.
type UserProfile struct {
	UserID    int
	Name      string
	AvatarURL string
}

// Roster maps a user id to its profile.
type Roster map[int]UserProfile

// Lookup returns the profile of userID or ErrUserNotFound.
func (r Roster) Lookup(userID int) (UserProfile, error) {
	profile, ok := r[userID]
	if !ok {
		return UserProfile{}, fmt.Errorf("user %d: %w", userID, ErrUserNotFound)
	}
	return profile, nil
}

// Profiles returns every profile ordered by ascending user id.
func (r Roster) Profiles() []UserProfile {
	ids := make([]int, 0, len(r))
	for id := range r {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]UserProfile, 0, len(ids))
	for _, id := range ids {
		out = append(out, r[id])
	}
	return out
}
