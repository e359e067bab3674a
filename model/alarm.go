// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

// AlarmAction is a VALARM's ACTION value.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.6.1
type AlarmAction string

const (
	AlarmActionAudio     AlarmAction = "AUDIO"
	AlarmActionDisplay   AlarmAction = "DISPLAY"
	AlarmActionEmail     AlarmAction = "EMAIL"
	AlarmActionProcedure AlarmAction = "PROCEDURE"
)

// Alarm is a typed view over a VALARM Component, always a child of a
// VEVENT, VTODO, or VJOURNAL.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.6
type Alarm struct {
	*Component
}

// NewAlarm returns an empty VALARM component view.
func NewAlarm() *Alarm { return &Alarm{NewComponent(string(SectionVAlarm))} }

func (a *Alarm) Action() AlarmAction { return AlarmAction(a.textOf(PropAction)) }
func (a *Alarm) Trigger() string     { return a.textOf(PropTrigger) }
func (a *Alarm) Description() string { return a.textOf(PropDescription) }
func (a *Alarm) Summary() string     { return a.textOf(PropSummary) }

func (a *Alarm) Repeat() int {
	p, ok := a.GetProperty(PropRepeat)
	if !ok {
		return 0
	}
	return int(p.Value.Int)
}

func (a *Alarm) Duration() (Duration, bool) {
	p, ok := a.GetProperty(PropDuration)
	if !ok {
		return Duration{}, false
	}
	return p.Value.Duration, true
}

func (a *Alarm) Attach() []string { return textValues(a.GetAllProperties(PropAttach)) }

func (a *Alarm) Attendees() []Attendee {
	return attendeesFromProperties(a.GetAllProperties(PropAttendee))
}

// Alarms returns every direct VALARM child of a VEVENT.
func (e *Event) Alarms() []*Alarm { return alarmsOf(e.Component) }

// Alarms returns every direct VALARM child of a VTODO.
func (t *Todo) Alarms() []*Alarm { return alarmsOf(t.Component) }

// Alarms returns every direct VALARM child of a VJOURNAL.
func (j *Journal) Alarms() []*Alarm { return alarmsOf(j.Component) }

func alarmsOf(c *Component) []*Alarm {
	children := c.ChildrenNamed(string(SectionVAlarm))
	out := make([]*Alarm, 0, len(children))
	for _, ch := range children {
		out = append(out, &Alarm{ch})
	}
	return out
}

func (e *Event) AddAlarm(a *Alarm)   { e.AddChild(a.Component) }
func (t *Todo) AddAlarm(a *Alarm)    { t.AddChild(a.Component) }
func (j *Journal) AddAlarm(a *Alarm) { j.AddChild(a.Component) }
