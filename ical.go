// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package ical is the public facade over icalgo's subpackages: Parse/Write
// for the RFC 5545 wire format, Validate for the spec.md §4.6 semantic
// checks, and MarshalJCal for the RFC 7265 JSON mapping. Each function is a
// thin wrapper over its subpackage; callers who only need one concern can
// import that subpackage directly instead.
package ical

import (
	"github.com/brennonyork/icalgo/jcal"
	"github.com/brennonyork/icalgo/model"
	"github.com/brennonyork/icalgo/parse"
	"github.com/brennonyork/icalgo/validate"
	"github.com/brennonyork/icalgo/write"
)

// Parse decodes an in-memory iCalendar document into a *model.Calendar.
func Parse(input string, cfg Config) (*model.Calendar, []parse.Warning, error) {
	return parse.Calendar(input, cfg.toParseConfig())
}

// ParseFile reads path from disk and decodes it the same way as Parse,
// running the file-input XXE check first.
func ParseFile(path string, cfg Config) (*model.Calendar, []parse.Warning, error) {
	res, err := parse.File(path, cfg.toParseConfig())
	if err != nil {
		return nil, nil, err
	}
	if res.Root.Name != string(model.SectionVCalendar) {
		return nil, nil, parse.ErrNoRootComponent
	}
	return model.AsCalendar(res.Root), res.Warnings, nil
}

// Write serializes cal back to RFC 5545 text.
func Write(cal *model.Calendar) []byte {
	return write.Calendar(cal)
}

// Validate runs the semantic checks of spec.md §4.6 against cal and returns
// every Finding, most specific first (validate.Run is a bottom-up walk).
func Validate(cal *model.Calendar) []validate.Finding {
	return validate.Run(cal.Component)
}

// MarshalJCal encodes cal as a jCal JSON document (RFC 7265).
func MarshalJCal(cal *model.Calendar) ([]byte, error) {
	return jcal.Marshal(cal.Component)
}

// NewUID returns a new globally-unique identifier suitable for a UID
// property, per spec.md §6's construction-helper requirement.
func NewUID() string {
	return newUID()
}
