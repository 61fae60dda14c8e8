// Presence Analyzer - Employee Presence Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/presence-analyzer

package presence

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tomtom215/presence-analyzer/internal/logging"
)

// serverElement is a <server> element. Pointer fields distinguish a missing
// child from an empty one.
type serverElement struct {
	Protocol *string `xml:"protocol"`
	Host     *string `xml:"host"`
}

// userElement is a <user id="..."> element.
type userElement struct {
	ID     *string `xml:"id,attr"`
	Name   *string `xml:"name"`
	Avatar *string `xml:"avatar"`
}

// ParseRoster reads a user directory document and returns the roster.
//
// Server and user elements are collected at any depth in document order. The
// avatar base URL is taken from the last server element; each avatar URL is
// that base joined with the avatar path exactly as written.
func ParseRoster(r io.Reader) (Roster, error) {
	decoder := xml.NewDecoder(r)

	var (
		baseURL string
		servers int
		users   []userElement
	)

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read roster: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch start.Name.Local {
		case "server":
			var srv serverElement
			if err := decoder.DecodeElement(&srv, &start); err != nil {
				return nil, fmt.Errorf("decode server element: %w", err)
			}
			if srv.Protocol == nil {
				return nil, &MissingFieldError{Element: "server", Field: "protocol"}
			}
			if srv.Host == nil {
				return nil, &MissingFieldError{Element: "server", Field: "host"}
			}
			baseURL = fmt.Sprintf("%s://%s", *srv.Protocol, *srv.Host)
			servers++
		case "user":
			var u userElement
			if err := decoder.DecodeElement(&u, &start); err != nil {
				return nil, fmt.Errorf("decode user element: %w", err)
			}
			users = append(users, u)
		}
	}

	if servers == 0 {
		return nil, &MissingFieldError{Element: "server"}
	}
	if servers > 1 {
		logging.Warn().Int("servers", servers).Str("base_url", baseURL).
			Msg("Roster defines several server elements, using the last one")
	}

	roster := make(Roster, len(users))
	for _, u := range users {
		profile, err := u.profile(baseURL)
		if err != nil {
			return nil, err
		}
		roster[profile.UserID] = profile
	}
	return roster, nil
}

func (u userElement) profile(baseURL string) (UserProfile, error) {
	if u.ID == nil {
		return UserProfile{}, &MissingFieldError{Element: "user", Field: "id"}
	}
	if u.Name == nil {
		return UserProfile{}, &MissingFieldError{Element: "user", Field: "name"}
	}
	if u.Avatar == nil {
		return UserProfile{}, &MissingFieldError{Element: "user", Field: "avatar"}
	}

	id, err := strconv.Atoi(strings.TrimSpace(*u.ID))
	if err != nil {
		return UserProfile{}, &InvalidFieldError{Element: "user", Field: "id", Value: *u.ID, Err: err}
	}

	return UserProfile{
		UserID:    id,
		Name:      *u.Name,
		AvatarURL: baseURL + *u.Avatar,
	}, nil
}

// LoadRoster opens the XML file at path and parses it with ParseRoster.
func LoadRoster(path string) (Roster, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, &SourceUnavailableError{Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logging.Warn().Err(cerr).Str("path", path).Msg("Failed to close roster file")
		}
	}()

	return ParseRoster(f)
}
