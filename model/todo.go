// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"time"

	"github.com/brennonyork/icalgo/rrule"
)

// TodoStatus is a VTODO's STATUS value.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.11
type TodoStatus string

const (
	TodoStatusNeedsAction TodoStatus = "NEEDS-ACTION"
	TodoStatusCompleted   TodoStatus = "COMPLETED"
	TodoStatusInProcess   TodoStatus = "IN-PROCESS"
	TodoStatusCancelled   TodoStatus = "CANCELLED"
)

// Todo is a typed view over a VTODO Component.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.2
type Todo struct {
	*Component
}

// NewTodo returns an empty VTODO component view.
func NewTodo() *Todo { return &Todo{NewComponent(string(SectionVTodo))} }

func (t *Todo) UID() string         { return t.textOf(PropUID) }
func (t *Todo) Summary() string     { return t.textOf(PropSummary) }
func (t *Todo) Description() string { return t.textOf(PropDescription) }
func (t *Todo) Location() string    { return t.textOf(PropLocation) }
func (t *Todo) Status() TodoStatus  { return TodoStatus(t.textOf(PropStatus)) }

func (t *Todo) DTStamp() time.Time {
	p, ok := t.GetProperty(PropDTStamp)
	if !ok {
		return time.Time{}
	}
	return p.Value.DateTime.Time
}

func (t *Todo) DTStart() (DateTime, bool) {
	p, ok := t.GetProperty(PropDTStart)
	if !ok {
		return DateTime{}, false
	}
	return p.Value.DateTime, true
}

// Due returns the to-do's due instant, resolved either from DUE directly or
// by adding DURATION to DTSTART (mutually exclusive per spec.md §4.6).
func (t *Todo) Due() (DateTime, bool) {
	if p, ok := t.GetProperty(PropDue); ok {
		return p.Value.DateTime, true
	}
	if p, ok := t.GetProperty(PropDuration); ok {
		if start, ok := t.DTStart(); ok {
			d := decodedDuration(p.Value.Duration)
			end := start.Time.Add(d)
			return DateTime{Time: end, TZID: start.TZID, IsUTC: start.IsUTC, IsDate: start.IsDate}, true
		}
	}
	return DateTime{}, false
}

func (t *Todo) Completed() (time.Time, bool) {
	p, ok := t.GetProperty(PropCompleted)
	if !ok {
		return time.Time{}, false
	}
	return p.Value.DateTime.Time, true
}

// PercentComplete returns VTODO's PERCENT-COMPLETE as stored. Nothing clamps
// it; the validator reports a value outside [0,100].
func (t *Todo) PercentComplete() int {
	p, ok := t.GetProperty(PropPercentComplete)
	if !ok {
		return 0
	}
	return int(p.Value.Int)
}

// Priority returns VTODO's PRIORITY, per spec.md §4.6 in [0,9].
func (t *Todo) Priority() int {
	p, ok := t.GetProperty(PropPriority)
	if !ok {
		return 0
	}
	return int(p.Value.Int)
}

func (t *Todo) Sequence() int {
	p, ok := t.GetProperty(PropSequence)
	if !ok {
		return 0
	}
	return int(p.Value.Int)
}

func (t *Todo) Organizer() *Organizer {
	p, ok := t.GetProperty(PropOrganizer)
	return organizerFromProperty(p, ok)
}

func (t *Todo) Attendees() []Attendee {
	return attendeesFromProperties(t.GetAllProperties(PropAttendee))
}

func (t *Todo) Categories() []string { return splitComma(t.textOf(PropCategories)) }

func (t *Todo) RRules() []*rrule.RRule {
	props := t.GetAllProperties(PropRRule)
	out := make([]*rrule.RRule, 0, len(props))
	for _, p := range props {
		if p.Value.Recur != nil {
			out = append(out, p.Value.Recur)
		}
	}
	return out
}

func (t *Todo) ExceptionDates() []rrule.ExDate { return exDatesFromProperties(t.GetAllProperties(PropExDate)) }
func (t *Todo) RDates() []time.Time            { return rDatesFromProperties(t.GetAllProperties(PropRDate)) }

// RecurrenceInput assembles this to-do's recurrence context. DTSTART is
// optional for VTODO per RFC 5545; callers must supply an explicit DTStart
// fallback (e.g. DUE) when none is present, since rrule.Expand requires one.
func (t *Todo) RecurrenceInput(rangeEnd *time.Time) rrule.ExpandInput {
	start, _ := t.DTStart()
	in := rrule.ExpandInput{
		DTStart:  start.Time,
		Rules:    t.RRules(),
		ExDates:  t.ExceptionDates(),
		RDates:   t.RDates(),
		RangeEnd: rangeEnd,
	}
	if due, ok := t.Due(); ok && !start.Time.IsZero() {
		d := due.Time.Sub(in.DTStart)
		in.EndOffset = &d
	}
	return in
}
