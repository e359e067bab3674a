// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"strconv"
	"strings"
	"time"

	"github.com/brennonyork/icalgo/rrule"
)

// EventStatus is a VEVENT's STATUS value.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.11
type EventStatus string

const (
	EventStatusConfirmed EventStatus = "CONFIRMED"
	EventStatusTentative EventStatus = "TENTATIVE"
	EventStatusCancelled EventStatus = "CANCELLED"
)

// Event is a typed view over a VEVENT Component.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.1
type Event struct {
	*Component
}

// NewEvent returns an empty VEVENT component view.
func NewEvent() *Event { return &Event{NewComponent(string(SectionVEvent))} }

func (e *Event) UID() string     { return e.textOf(PropUID) }
func (e *Event) Summary() string { return e.textOf(PropSummary) }

// Description resolves the RFC 9073 STYLED-DESCRIPTION interplay: when
// STYLED-DESCRIPTION is present, plain DESCRIPTION is suppressed unless
// marked DERIVED=TRUE (spec.md §4.6).
func (e *Event) Description() string {
	if _, hasStyled := e.GetProperty(PropStyledDescription); hasStyled {
		if p, ok := e.GetProperty(PropDescription); ok && p.Params.GetFirst(ParamDerived) == "TRUE" {
			return p.Value.Text
		}
		return ""
	}
	return e.textOf(PropDescription)
}

func (e *Event) Location() string { return e.textOf(PropLocation) }
func (e *Event) Status() EventStatus {
	return EventStatus(e.textOf(PropStatus))
}

func (e *Event) DTStamp() time.Time {
	p, ok := e.GetProperty(PropDTStamp)
	if !ok {
		return time.Time{}
	}
	return p.Value.DateTime.Time
}

func (e *Event) DTStart() DateTime {
	p, ok := e.GetProperty(PropDTStart)
	if !ok {
		return DateTime{}
	}
	return p.Value.DateTime
}

// DTEnd returns the event's end, resolved either from DTEND directly or by
// adding DURATION to DTSTART — the two are mutually exclusive per spec.md
// §4.6, so at most one branch ever has data.
func (e *Event) DTEnd() (DateTime, bool) {
	if p, ok := e.GetProperty(PropDTEnd); ok {
		return p.Value.DateTime, true
	}
	if p, ok := e.GetProperty(PropDuration); ok {
		start := e.DTStart()
		d := decodedDuration(p.Value.Duration)
		end := start.Time.Add(d)
		return DateTime{Time: end, TZID: start.TZID, IsUTC: start.IsUTC, IsDate: start.IsDate}, true
	}
	return DateTime{}, false
}

func decodedDuration(d Duration) time.Duration {
	sign := time.Duration(1)
	if d.Negative {
		sign = -1
	}
	return sign * (time.Duration(d.Days)*24*time.Hour + time.Duration(d.Seconds)*time.Second)
}

func (e *Event) Sequence() int {
	p, ok := e.GetProperty(PropSequence)
	if !ok {
		return 0
	}
	return int(p.Value.Int)
}

func (e *Event) Geo() (GeoPosition, bool) {
	p, ok := e.GetProperty(PropGeo)
	if !ok {
		return GeoPosition{}, false
	}
	lat, lon, ok := parseGeoText(p.Value.Text)
	return GeoPosition{Latitude: lat, Longitude: lon}, ok
}

func parseGeoText(s string) (float64, float64, bool) {
	lat, lon, found := strings.Cut(s, ";")
	if !found {
		return 0, 0, false
	}
	la, err1 := strconv.ParseFloat(lat, 64)
	lo, err2 := strconv.ParseFloat(lon, 64)
	return la, lo, err1 == nil && err2 == nil
}

func (e *Event) Organizer() *Organizer {
	p, ok := e.GetProperty(PropOrganizer)
	return organizerFromProperty(p, ok)
}

func (e *Event) Attendees() []Attendee {
	return attendeesFromProperties(e.GetAllProperties(PropAttendee))
}

func (e *Event) Categories() []string { return splitComma(e.textOf(PropCategories)) }
func (e *Event) Comments() []string   { return textValues(e.GetAllProperties(PropComment)) }
func (e *Event) Contacts() []string   { return textValues(e.GetAllProperties(PropContact)) }

func splitComma(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func textValues(props []Property) []string {
	out := make([]string, 0, len(props))
	for _, p := range props {
		out = append(out, p.Value.Text)
	}
	return out
}

// RRules returns every RRULE attached to this event, in insertion order.
func (e *Event) RRules() []*rrule.RRule {
	props := e.GetAllProperties(PropRRule)
	out := make([]*rrule.RRule, 0, len(props))
	for _, p := range props {
		if p.Value.Recur != nil {
			out = append(out, p.Value.Recur)
		}
	}
	return out
}

// ExceptionDates returns the event's EXDATE entries, honoring VALUE=DATE
// comma-separated lists per property per spec.md §3.
func (e *Event) ExceptionDates() []rrule.ExDate {
	return exDatesFromProperties(e.GetAllProperties(PropExDate))
}

// RDates returns the event's RDATE entries. PERIOD-form RDATEs contribute
// their start instant; DATE/DATE-TIME forms contribute directly.
func (e *Event) RDates() []time.Time {
	return rDatesFromProperties(e.GetAllProperties(PropRDate))
}

func exDatesFromProperties(props []Property) []rrule.ExDate {
	var out []rrule.ExDate
	for _, p := range props {
		dateOnly := p.Params.GetFirst(ParamValue) == "DATE" || p.Value.DateTime.IsDate
		out = append(out, rrule.ExDate{Time: p.Value.DateTime.Time, DateOnly: dateOnly})
	}
	return out
}

func rDatesFromProperties(props []Property) []time.Time {
	var out []time.Time
	for _, p := range props {
		switch p.Value.Kind {
		case KindPeriod:
			out = append(out, p.Value.Period.Start)
		default:
			out = append(out, p.Value.DateTime.Time)
		}
	}
	return out
}

// RecurrenceInput assembles this event's DTSTART/RRULE/EXDATE/RDATE into an
// rrule.ExpandInput, ready for rrule.Expand. rangeEnd may be nil only when
// every RRULE is itself bounded (COUNT or UNTIL).
func (e *Event) RecurrenceInput(rangeEnd *time.Time) rrule.ExpandInput {
	in := rrule.ExpandInput{
		DTStart:  e.DTStart().Time,
		Rules:    e.RRules(),
		ExDates:  e.ExceptionDates(),
		RDates:   e.RDates(),
		RangeEnd: rangeEnd,
	}
	if end, ok := e.DTEnd(); ok {
		d := end.Time.Sub(in.DTStart)
		in.EndOffset = &d
	}
	return in
}
