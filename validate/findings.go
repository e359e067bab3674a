// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package validate runs the structural invariants of spec.md §4.6 over a
// finished component tree: required properties, mutual exclusion,
// enumerated-value checks, cross-component TZID references, and RRULE
// well-formedness. Organized as a single bottom-up tree walk that collects
// every finding instead of aborting on the first one.
package validate

import "github.com/brennonyork/icalgo/model"

// Severity is how seriously a Finding's violation should be treated.
type Severity string

const (
	SeverityWarning Severity = "WARNING"
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
)

// Finding is one validator result: a machine-readable code, a human
// message, the component and (optionally) the property it concerns, and a
// severity.
type Finding struct {
	Code      string
	Message   string
	Component *model.Component
	Property  string
	Severity  Severity
}

func newFinding(code, message string, c *model.Component, property string, sev Severity) Finding {
	return Finding{Code: code, Message: message, Component: c, Property: property, Severity: sev}
}
