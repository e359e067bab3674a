// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

// Calendar is a typed view over a VCALENDAR Component.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.4
type Calendar struct {
	*Component
}

// NewCalendar returns an empty VCALENDAR component view.
func NewCalendar() *Calendar {
	return &Calendar{NewComponent(string(SectionVCalendar))}
}

// AsCalendar wraps an existing VCALENDAR Component as a typed view. Panics if
// c is not named VCALENDAR, since that would indicate a caller bug in the
// parser or facade rather than malformed input.
func AsCalendar(c *Component) *Calendar {
	if c.Name != string(SectionVCalendar) {
		panic("model: AsCalendar requires a VCALENDAR component, got " + c.Name)
	}
	return &Calendar{c}
}

func (c *Calendar) ProdID() string  { return c.textOf(PropProdID) }
func (c *Calendar) Version() string { return c.textOf(PropVersion) }
func (c *Calendar) CalScale() string {
	if v := c.textOf(PropCalScale); v != "" {
		return v
	}
	return "GREGORIAN"
}
func (c *Calendar) Method() string { return c.textOf(PropMethod) }

func (c *Calendar) SetProdID(v string)  { c.setText(PropProdID, v) }
func (c *Calendar) SetVersion(v string) { c.setText(PropVersion, v) }
func (c *Calendar) SetCalScale(v string) { c.setText(PropCalScale, v) }
func (c *Calendar) SetMethod(v string)   { c.setText(PropMethod, v) }

func (c *Component) setText(name, v string) {
	c.ReplaceProperty(Property{Name: name, Value: Value{Kind: KindText, Raw: v, Text: v}})
}

// Events returns every direct VEVENT child as a typed view.
func (c *Calendar) Events() []*Event {
	children := c.ChildrenNamed(string(SectionVEvent))
	out := make([]*Event, 0, len(children))
	for _, ch := range children {
		out = append(out, &Event{ch})
	}
	return out
}

// Todos returns every direct VTODO child as a typed view.
func (c *Calendar) Todos() []*Todo {
	children := c.ChildrenNamed(string(SectionVTodo))
	out := make([]*Todo, 0, len(children))
	for _, ch := range children {
		out = append(out, &Todo{ch})
	}
	return out
}

// Journals returns every direct VJOURNAL child as a typed view.
func (c *Calendar) Journals() []*Journal {
	children := c.ChildrenNamed(string(SectionVJournal))
	out := make([]*Journal, 0, len(children))
	for _, ch := range children {
		out = append(out, &Journal{ch})
	}
	return out
}

// FreeBusys returns every direct VFREEBUSY child as a typed view.
func (c *Calendar) FreeBusys() []*FreeBusy {
	children := c.ChildrenNamed(string(SectionVFreebusy))
	out := make([]*FreeBusy, 0, len(children))
	for _, ch := range children {
		out = append(out, &FreeBusy{ch})
	}
	return out
}

// TimeZones returns every direct VTIMEZONE child as a typed view.
func (c *Calendar) TimeZones() []*TimeZone {
	children := c.ChildrenNamed(string(SectionVTimezone))
	out := make([]*TimeZone, 0, len(children))
	for _, ch := range children {
		out = append(out, &TimeZone{ch})
	}
	return out
}

// TimeZone looks up a direct VTIMEZONE child by TZID, for cross-referencing
// a TZID parameter with its definition.
func (c *Calendar) TimeZone(tzid string) (*TimeZone, bool) {
	for _, tz := range c.TimeZones() {
		if tz.TZID() == tzid {
			return tz, true
		}
	}
	return nil, false
}

func (c *Calendar) AddEvent(e *Event)       { c.AddChild(e.Component) }
func (c *Calendar) AddTodo(t *Todo)         { c.AddChild(t.Component) }
func (c *Calendar) AddJournal(j *Journal)   { c.AddChild(j.Component) }
func (c *Calendar) AddFreeBusy(f *FreeBusy) { c.AddChild(f.Component) }
func (c *Calendar) AddTimeZone(tz *TimeZone) { c.AddChild(tz.Component) }
