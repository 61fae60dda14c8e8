// Presence Analyzer - Employee Presence Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/presence-analyzer

package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tomtom215/presence-analyzer/internal/config"
)

const testCSV = `10,2013-09-09,09:00:00,17:00:00
10,2013-09-10,09:00:00,12:00:00
11,2013-09-09,08:00:00,16:00:00
`

const testXML = `<?xml version="1.0" encoding="UTF-8"?>
<intranet>
  <server><host>intranet.example.com</host><port>443</port><protocol>https</protocol></server>
  <users>
    <user id="10"><avatar>/api/images/users/10</avatar><name>Adam P.</name></user>
  </users>
</intranet>
`

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "sample_data.csv")
	xmlPath := filepath.Join(dir, "users.xml")
	if err := os.WriteFile(csvPath, []byte(testCSV), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(xmlPath, []byte(testXML), 0o600); err != nil {
		t.Fatal(err)
	}

	return &config.Config{
		Data: config.DataConfig{
			CSVPath:          csvPath,
			XMLPath:          xmlPath,
			CacheTTL:         time.Minute,
			BreakerThreshold: 3,
			BreakerTimeout:   time.Second,
		},
		Server: config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            5000,
			Timeout:         5 * time.Second,
			ShutdownTimeout: time.Second,
		},
		Security: config.SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitDisabled: true,
		},
		Logging: config.LoggingConfig{Level: "error", Format: "json"},
	}
}

func TestNewApp(t *testing.T) {
	cfg := testConfig(t)
	a := newApp(cfg)
	defer a.cache.Close()

	if a.server.Addr != "127.0.0.1:5000" {
		t.Errorf("Addr = %q", a.server.Addr)
	}

	tests := []struct {
		path   string
		status int
		body   string
	}{
		{"/api/v1/users", http.StatusOK, `[{"user_id":10,"name":"User 10"},{"user_id":11,"name":"User 11"}]`},
		{"/api/v1/get_avatar/10", http.StatusOK, `{"user_id":10,"avatar":"https://intranet.example.com/api/images/users/10"}`},
		{"/api/v1/get_avatar/11", http.StatusNotFound, ""},
		{"/api/v1/mean_time_weekday/11", http.StatusOK, `[["Mon",28800],["Tue",0],["Wed",0],["Thu",0],["Fri",0],["Sat",0],["Sun",0]]`},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			a.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.status, rec.Body)
			}
			if tt.body != "" && rec.Body.String() != tt.body {
				t.Errorf("body = %s\nwant %s", rec.Body, tt.body)
			}
		})
	}
}
