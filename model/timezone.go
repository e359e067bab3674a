// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"sort"
	"time"
)

// transition is one (instant, offset, name) entry of a VTIMEZONE's table,
// contributed by a single STANDARD or DAYLIGHT child's DTSTART/TZOFFSETTO/
// TZNAME triple, per spec.md §4.5.
type transition struct {
	At     time.Time
	Offset int
	Name   string
}

// TimeZone is a typed view over a VTIMEZONE Component.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.5
type TimeZone struct {
	*Component
}

// NewTimeZone returns an empty VTIMEZONE component view.
func NewTimeZone() *TimeZone { return &TimeZone{NewComponent(string(SectionVTimezone))} }

func (tz *TimeZone) TZID() string { return tz.textOf(PropTZID) }
func (tz *TimeZone) TZURL() string { return tz.textOf(PropTZURL) }

// transitions returns the sorted transition table: the concatenation of
// (DTSTART, TZOFFSETTO, TZNAME) across the VTIMEZONE's STANDARD and DAYLIGHT
// children, ascending by DTSTART. Computed on demand rather than cached,
// since the underlying tree is the only source of truth.
func (tz *TimeZone) transitions() []transition {
	var out []transition
	for _, name := range []SectionToken{SectionStandard, SectionDaylight} {
		for _, child := range tz.ChildrenNamed(string(name)) {
			dtstart, ok := child.GetProperty(PropDTStart)
			if !ok {
				continue
			}
			offsetTo, ok := child.GetProperty(PropTZOffsetTo)
			if !ok {
				continue
			}
			out = append(out, transition{
				At:     dtstart.Value.DateTime.Time,
				Offset: offsetTo.Value.UTCOffsetSeconds,
				Name:   child.textOf(PropTZName),
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].At.Before(out[j].At) })
	return out
}

// OffsetAt returns the UTC offset, in seconds, in effect at instant per
// spec.md §4.5: the last transition whose time is ≤ instant, or 0 before the
// earliest transition.
func (tz *TimeZone) OffsetAt(instant time.Time) int {
	t, ok := lastTransitionAt(tz.transitions(), instant)
	if !ok {
		return 0
	}
	return t.Offset
}

// AbbreviationAt returns the TZNAME in effect at instant, or "UTC" before the
// earliest transition.
func (tz *TimeZone) AbbreviationAt(instant time.Time) string {
	t, ok := lastTransitionAt(tz.transitions(), instant)
	if !ok {
		return "UTC"
	}
	return t.Name
}

// lastTransitionAt binary-searches the ascending transition table for the
// last entry whose time is ≤ instant.
func lastTransitionAt(transitions []transition, instant time.Time) (transition, bool) {
	idx := sort.Search(len(transitions), func(i int) bool {
		return transitions[i].At.After(instant)
	})
	if idx == 0 {
		return transition{}, false
	}
	return transitions[idx-1], true
}
