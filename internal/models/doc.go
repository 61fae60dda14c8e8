// Presence Analyzer - Employee Presence Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/presence-analyzer

/*
Package models defines the JSON shapes served by the HTTP API.

Presence endpoints answer with bare JSON documents whose layout the dashboard
charts consume directly: weekday tables are arrays of [label, value] pairs and
the overtime ranking is an array of [user_id, summary] pairs. WeekdayRow and
OvertimeRow marshal to those positional arrays.

Operational endpoints (health, cache control) and every error use the
APIResponse envelope:

	{
	  "status": "error",
	  "data": null,
	  "metadata": {"timestamp": "2013-09-10T09:00:00Z"},
	  "error": {"code": "NOT_FOUND", "message": "user 99: user not found"}
	}
*/
package models
