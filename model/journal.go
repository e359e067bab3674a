// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"time"

	"github.com/brennonyork/icalgo/rrule"
)

// JournalStatus is a VJOURNAL's STATUS value.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.11
type JournalStatus string

const (
	JournalStatusDraft     JournalStatus = "DRAFT"
	JournalStatusFinal     JournalStatus = "FINAL"
	JournalStatusCancelled JournalStatus = "CANCELLED"
)

// Journal is a typed view over a VJOURNAL Component.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.3
type Journal struct {
	*Component
}

// NewJournal returns an empty VJOURNAL component view.
func NewJournal() *Journal { return &Journal{NewComponent(string(SectionVJournal))} }

func (j *Journal) UID() string           { return j.textOf(PropUID) }
func (j *Journal) Summary() string       { return j.textOf(PropSummary) }
func (j *Journal) Status() JournalStatus { return JournalStatus(j.textOf(PropStatus)) }

func (j *Journal) DTStamp() time.Time {
	p, ok := j.GetProperty(PropDTStamp)
	if !ok {
		return time.Time{}
	}
	return p.Value.DateTime.Time
}

func (j *Journal) DTStart() DateTime {
	p, ok := j.GetProperty(PropDTStart)
	if !ok {
		return DateTime{}
	}
	return p.Value.DateTime
}

// Descriptions returns every DESCRIPTION value; VJOURNAL is the one
// component where RFC 5545 allows DESCRIPTION to repeat.
func (j *Journal) Descriptions() []string { return textValues(j.GetAllProperties(PropDescription)) }

func (j *Journal) Organizer() *Organizer {
	p, ok := j.GetProperty(PropOrganizer)
	return organizerFromProperty(p, ok)
}

func (j *Journal) Categories() []string { return splitComma(j.textOf(PropCategories)) }

func (j *Journal) RRules() []*rrule.RRule {
	props := j.GetAllProperties(PropRRule)
	out := make([]*rrule.RRule, 0, len(props))
	for _, p := range props {
		if p.Value.Recur != nil {
			out = append(out, p.Value.Recur)
		}
	}
	return out
}

func (j *Journal) ExceptionDates() []rrule.ExDate {
	return exDatesFromProperties(j.GetAllProperties(PropExDate))
}

func (j *Journal) RDates() []time.Time { return rDatesFromProperties(j.GetAllProperties(PropRDate)) }

// RecurrenceInput assembles this journal's recurrence context. VJOURNAL has
// no end anchor, so EndOffset is always nil and Occurrence.End stays nil.
func (j *Journal) RecurrenceInput(rangeEnd *time.Time) rrule.ExpandInput {
	return rrule.ExpandInput{
		DTStart:  j.DTStart().Time,
		Rules:    j.RRules(),
		ExDates:  j.ExceptionDates(),
		RDates:   j.RDates(),
		RangeEnd: rangeEnd,
	}
}
