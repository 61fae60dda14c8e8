// Presence Analyzer - Employee Presence Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/presence-analyzer

/*
Package api exposes the presence analyzer over HTTP using chi.

Presence endpoints (all GET, under /api/v1):

	/users                        users present in the CSV, "User <id>" names
	/users_xml                    roster profiles with avatar URLs
	/get_avatar/{user_id}         one roster avatar
	/mean_time_weekday/{user_id}  [["Mon", mean seconds], ...]
	/presence_weekday/{user_id}   [["Weekday","Presence (s)"], ["Mon", total], ...]
	/presence_start_end/{user_id} {"Mon": {"start": "9:30:00", "end": "17:30:00"}, ...}
	/overtime                     [[user_id, {"name", "overtime", "months"}], ...]

Operational endpoints:

	GET  /api/v1/health[/live|/ready]
	POST /api/v1/cache/invalidate
	GET  /metrics
	GET  /    redirects to /presence_weekday.html

Status codes: 400 for a user_id that is not a non-negative integer, 404 when
the user is absent from the dataset (or roster, for avatars), 503 when the
CSV or XML cannot be read or the source circuit breaker is open. Errors use
the models.APIResponse envelope.
*/
package api
