// Presence Analyzer - Employee Presence Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/presence-analyzer

package models

import (
	"github.com/goccy/go-json"
)

// UserSummary is one entry of /api/v1/users.
type UserSummary struct {
	UserID int    `json:"user_id"`
	Name   string `json:"name"`
}

// UserProfile is one entry of /api/v1/users_xml.
type UserProfile struct {
	UserID int    `json:"user_id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Avatar is the body of /api/v1/get_avatar/{user_id}.
type Avatar struct {
	UserID int    `json:"user_id"`
	Avatar string `json:"avatar"`
}

// WeekdayRow marshals as ["Mon", 28800].
type WeekdayRow struct {
	Weekday string
	Seconds float64
}

// MarshalJSON implements json.Marshaler.
func (r WeekdayRow) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{r.Weekday, r.Seconds})
}

// PresenceHeader is the first row of /api/v1/presence_weekday.
var PresenceHeader = [2]string{"Weekday", "Presence (s)"}

// MonthOvertime is one month above baseline.
type MonthOvertime struct {
	Month    string `json:"month"` // YYYY-MM
	Worked   int64  `json:"worked"`
	Baseline int64  `json:"baseline"`
	Overtime int64  `json:"overtime"`
}

// OvertimeSummary is the object half of an overtime row.
type OvertimeSummary struct {
	Name     string          `json:"name"`
	Overtime int64           `json:"overtime"`
	Months   []MonthOvertime `json:"months"`
}

// OvertimeRow marshals as [user_id, {"name": ..., "overtime": ..., "months": [...]}].
type OvertimeRow struct {
	UserID  int
	Summary OvertimeSummary
}

// MarshalJSON implements json.Marshaler.
func (r OvertimeRow) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{r.UserID, r.Summary})
}
