// Presence Analyzer - Employee Presence Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/presence-analyzer

package presence

import (
	"testing"
	"time"
)

const sampleCSV = `user_id,date,start,end
10,2013-09-10,09:39:05,17:59:52
10,2013-09-12,09:19:52,16:07:37
11,2013-09-10,09:19:52,16:07:37
generated at 2013-09-30
`

const sampleXML = `<?xml version="1.0" encoding="UTF-8"?>
<intranet>
  <server>
    <host>intranet.example.com</host>
    <port>443</port>
    <protocol>https</protocol>
  </server>
  <users>
    <user id="10">
      <avatar>/api/images/users/10</avatar>
      <name>Adam P.</name>
    </user>
    <user id="11">
      <avatar>/api/images/users/11</avatar>
      <name>Adrian K.</name>
    </user>
  </users>
</intranet>
`

// mustDate parses a YYYY-MM-DD date or fails the test.
func mustDate(t *testing.T, s string) Date {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return d
}

// mustClock parses an HH:MM:SS clock or fails the test.
func mustClock(t *testing.T, s string) Clock {
	t.Helper()
	c, err := ParseClock(s)
	if err != nil {
		t.Fatalf("ParseClock(%q): %v", s, err)
	}
	return c
}

// workday builds an interval of the given length starting at 09:00:00.
func workday(length time.Duration) Interval {
	end := 9*time.Hour + length
	return Interval{
		Start: Clock{Hour: 9},
		End:   Clock{Hour: int(end / time.Hour), Minute: int(end % time.Hour / time.Minute)},
	}
}
