// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"net/url"
	"time"

	"github.com/brennonyork/icalgo/rrule"
)

// ValueKind is the declared type of a property's value, per RFC 5545 §3.3.
type ValueKind string

const (
	KindDate       ValueKind = "DATE"
	KindDateTime   ValueKind = "DATE-TIME"
	KindTime       ValueKind = "TIME"
	KindDuration   ValueKind = "DURATION"
	KindPeriod     ValueKind = "PERIOD"
	KindUTCOffset  ValueKind = "UTC-OFFSET"
	KindText       ValueKind = "TEXT"
	KindBinary     ValueKind = "BINARY"
	KindBoolean    ValueKind = "BOOLEAN"
	KindInteger    ValueKind = "INTEGER"
	KindFloat      ValueKind = "FLOAT"
	KindURI        ValueKind = "URI"
	KindCalAddress ValueKind = "CAL-ADDRESS"
	KindRecur      ValueKind = "RECUR"
)

// DateTime is a decoded DATE-TIME or DATE value. IsUTC and TZID are mutually
// informative: a floating local time has neither set, a UTC instant has
// IsUTC true, and a TZID-qualified local time carries TZID.
type DateTime struct {
	Time   time.Time
	TZID   string
	IsUTC  bool
	IsDate bool // true when this value came from a DATE (no time-of-day)
}

// Duration is a decoded RFC 5545 §3.3.6 duration: sign plus days and seconds,
// kept un-normalized relative to each other (a "7D" duration is not folded
// into weeks on decode; see values.FormatDuration for the week/day encoding
// rule).
type Duration struct {
	Negative bool
	Days     int
	Seconds  int
}

// Period is a decoded RFC 5545 §3.3.9 PERIOD value: either start/end or
// start/duration form. AsDuration is nil in the start/end form.
type Period struct {
	Start      time.Time
	End        time.Time
	AsDuration *Duration
}

// Value is the tagged union of every RFC 5545 value kind. Only the fields
// relevant to Kind are meaningful; Raw always holds the normalized text form
// produced by the ValueCodec (see the values package), which is authoritative
// for round-tripping values the decoder only partially understood.
type Value struct {
	Kind ValueKind
	Raw  string

	DateTime         DateTime
	Duration         Duration
	Period           Period
	UTCOffsetSeconds int
	Text             string
	Binary           []byte
	Bool             bool
	Int              int64
	Float            float64
	URI              *url.URL
	Recur            *rrule.RRule
}
