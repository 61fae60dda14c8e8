// Presence Analyzer - Employee Presence Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/presence-analyzer

package presence

import (
	"encoding/xml"
	"errors"
	"fmt"
)

// ErrUserNotFound is returned when a user id is absent from a Dataset or Roster.
var ErrUserNotFound = errors.New("user not found")

// MalformedRecordError describes a presence row whose fields could not be parsed.
type MalformedRecordError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *MalformedRecordError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("line %d: invalid %s: %v", e.Line, e.Field, e.Err)
	}
	return fmt.Sprintf("line %d: invalid %s %q: %v", e.Line, e.Field, e.Value, e.Err)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}

// MissingFieldError is returned when a roster element lacks a required child
// element or attribute.
type MissingFieldError struct {
	Element string
	Field   string
}

func (e *MissingFieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("roster: missing %s element", e.Element)
	}
	return fmt.Sprintf("roster: %s element missing %s", e.Element, e.Field)
}

// InvalidFieldError is returned when a roster field is present but unusable.
type InvalidFieldError struct {
	Element string
	Field   string
	Value   string
	Err     error
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("roster: %s element has invalid %s %q: %v", e.Element, e.Field, e.Value, e.Err)
}

func (e *InvalidFieldError) Unwrap() error {
	return e.Err
}

// SourceUnavailableError is returned when an input file cannot be opened.
type SourceUnavailableError struct {
	Path string
	Err  error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("source %s unavailable: %v", e.Path, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}

// IsContentError reports whether err describes a readable source with bad
// content (missing or invalid fields, broken markup) rather than a source
// that could not be read at all.
func IsContentError(err error) bool {
	var (
		missing   *MissingFieldError
		invalid   *InvalidFieldError
		malformed *MalformedRecordError
		syntax    *xml.SyntaxError
	)
	return errors.As(err, &missing) ||
		errors.As(err, &invalid) ||
		errors.As(err, &malformed) ||
		errors.As(err, &syntax)
}
