// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package model contains the iCalendar object model shared by the parser,
// writer, validator, and jCal encoder: a generic Component/Property tree
// (component.go), the tagged Value sum type (value.go), and typed read/write
// views (Calendar, Event, Todo, Journal, FreeBusy, TimeZone, Alarm) computed
// on demand from that tree rather than kept as a second copy of the data.
package model
