// Presence Analyzer - Employee Presence Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/presence-analyzer

package api

import (
	"fmt"
	"net/http"

	"github.com/tomtom215/presence-analyzer/internal/models"
	"github.com/tomtom215/presence-analyzer/internal/presence"
)

// IndexPath is where the dashboard's front page lives.
const IndexPath = "/presence_weekday.html"

// Index redirects to the dashboard front page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, IndexPath, http.StatusFound)
}

// Users lists every user with presence data.
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	data, err := h.source.Dataset(r.Context())
	if err != nil {
		respondSourceError(w, r, err)
		return
	}

	ids := data.UserIDs()
	users := make([]models.UserSummary, 0, len(ids))
	for _, id := range ids {
		users = append(users, models.UserSummary{UserID: id, Name: fmt.Sprintf("User %d", id)})
	}
	respondJSON(w, r, http.StatusOK, users)
}

// UsersXML lists the roster.
func (h *Handler) UsersXML(w http.ResponseWriter, r *http.Request) {
	roster, err := h.source.Roster(r.Context())
	if err != nil {
		respondSourceError(w, r, err)
		return
	}

	profiles := roster.Profiles()
	out := make([]models.UserProfile, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, models.UserProfile{UserID: p.UserID, Name: p.Name, Avatar: p.AvatarURL})
	}
	respondJSON(w, r, http.StatusOK, out)
}

// Avatar returns one user's avatar URL.
func (h *Handler) Avatar(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	roster, err := h.source.Roster(r.Context())
	if err != nil {
		respondSourceError(w, r, err)
		return
	}
	profile, err := roster.Lookup(userID)
	if err != nil {
		respondSourceError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, models.Avatar{UserID: userID, Avatar: profile.AvatarURL})
}

// MeanTimeWeekday returns the mean presence per weekday.
func (h *Handler) MeanTimeWeekday(w http.ResponseWriter, r *http.Request) {
	days, ok := h.userPresence(w, r)
	if !ok {
		return
	}
	respondJSON(w, r, http.StatusOK, weekdayRows(presence.WeekdayMeans(days)))
}

// PresenceWeekday returns total presence per weekday with a header row.
func (h *Handler) PresenceWeekday(w http.ResponseWriter, r *http.Request) {
	days, ok := h.userPresence(w, r)
	if !ok {
		return
	}

	rows := weekdayRows(presence.WeekdayTotals(days))
	body := make([]interface{}, 0, len(rows)+1)
	body = append(body, models.PresenceHeader)
	for _, row := range rows {
		body = append(body, row)
	}
	respondJSON(w, r, http.StatusOK, body)
}

// PresenceStartEnd returns the mean arrival and departure per weekday.
func (h *Handler) PresenceStartEnd(w http.ResponseWriter, r *http.Request) {
	days, ok := h.userPresence(w, r)
	if !ok {
		return
	}
	respondJSON(w, r, http.StatusOK, presence.StartEndTimes(days))
}

// Overtime ranks roster users by their largest monthly overtime.
func (h *Handler) Overtime(w http.ResponseWriter, r *http.Request) {
	data, err := h.source.Dataset(r.Context())
	if err != nil {
		respondSourceError(w, r, err)
		return
	}
	roster, err := h.source.Roster(r.Context())
	if err != nil {
		respondSourceError(w, r, err)
		return
	}

	ranking := h.overtime.Rank(data, roster)
	rows := make([]models.OvertimeRow, 0, len(ranking))
	for _, entry := range ranking {
		months := make([]models.MonthOvertime, 0, len(entry.Months))
		for _, m := range entry.Months {
			months = append(months, models.MonthOvertime{
				Month:    fmt.Sprintf("%04d-%02d", m.Year, int(m.Month)),
				Worked:   m.WorkedSeconds,
				Baseline: m.BaselineSeconds,
				Overtime: m.OvertimeSeconds,
			})
		}
		rows = append(rows, models.OvertimeRow{
			UserID: entry.UserID,
			Summary: models.OvertimeSummary{
				Name:     entry.Name,
				Overtime: entry.OvertimeSeconds,
				Months:   months,
			},
		})
	}
	respondJSON(w, r, http.StatusOK, rows)
}

// userPresence resolves {user_id} to its presence days, writing the error
// response itself when it returns false.
func (h *Handler) userPresence(w http.ResponseWriter, r *http.Request) (presence.UserPresence, bool) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return nil, false
	}

	data, err := h.source.Dataset(r.Context())
	if err != nil {
		respondSourceError(w, r, err)
		return nil, false
	}
	days, err := data.User(userID)
	if err != nil {
		respondSourceError(w, r, err)
		return nil, false
	}
	return days, true
}

func weekdayRows(values []presence.WeekdayValue) []models.WeekdayRow {
	rows := make([]models.WeekdayRow, len(values))
	for i, v := range values {
		rows[i] = models.WeekdayRow{Weekday: v.Weekday, Seconds: v.Value}
	}
	return rows
}
