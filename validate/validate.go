// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package validate

import "github.com/brennonyork/icalgo/model"

// Run walks root bottom-up and returns every Finding. root is typically a
// VCALENDAR, but any component validates independently of its ancestors.
func Run(root *model.Component) []Finding {
	var out []Finding
	walk(root, &out)
	return out
}

func walk(c *model.Component, out *[]Finding) {
	for _, child := range c.Children {
		walk(child, out)
	}
	validateComponent(c, out)
}

func validateComponent(c *model.Component, out *[]Finding) {
	switch c.Name {
	case string(model.SectionVCalendar):
		validateCalendar(c, out)
	case string(model.SectionVEvent):
		validateEvent(c, out)
	case string(model.SectionVTodo):
		validateTodo(c, out)
	case string(model.SectionVJournal):
		validateJournal(c, out)
	case string(model.SectionVFreebusy):
		validateFreeBusy(c, out)
	case string(model.SectionVTimezone):
		validateTimeZone(c, out)
	case string(model.SectionStandard), string(model.SectionDaylight):
		validateTZTransition(c, out)
	case string(model.SectionVAlarm):
		validateAlarm(c, out)
	}
}

func requireProperty(c *model.Component, name string, out *[]Finding) {
	if _, ok := c.GetProperty(name); !ok {
		*out = append(*out, newFinding("ICAL-"+c.Name+"-REQ-"+name, name+" is required on "+c.Name, c, name, SeverityError))
	}
}

func mutuallyExclusive(c *model.Component, a, b string, out *[]Finding) {
	_, hasA := c.GetProperty(a)
	_, hasB := c.GetProperty(b)
	if hasA && hasB {
		*out = append(*out, newFinding("ICAL-"+c.Name+"-EXCL", a+" and "+b+" are mutually exclusive on "+c.Name, c, a, SeverityError))
	}
}

func validateCalendar(c *model.Component, out *[]Finding) {
	requireProperty(c, model.PropProdID, out)
	requireProperty(c, model.PropVersion, out)
	validateTZIDReferences(c, out)
}

func validateEvent(c *model.Component, out *[]Finding) {
	requireProperty(c, model.PropDTStamp, out)
	requireProperty(c, model.PropUID, out)
	mutuallyExclusive(c, model.PropDTEnd, model.PropDuration, out)
	validateEnum(c, model.PropStatus, []string{"TENTATIVE", "CONFIRMED", "CANCELLED"}, out)
	validateDateKindMatch(c, model.PropDTStart, model.PropDTEnd, out)
	validateRRules(c, out)
}

func validateTodo(c *model.Component, out *[]Finding) {
	requireProperty(c, model.PropDTStamp, out)
	requireProperty(c, model.PropUID, out)
	mutuallyExclusive(c, model.PropDue, model.PropDuration, out)
	validateEnum(c, model.PropStatus, []string{"NEEDS-ACTION", "COMPLETED", "IN-PROCESS", "CANCELLED"}, out)
	validateIntRange(c, model.PropPriority, 0, 9, out)
	validateIntRange(c, model.PropPercentComplete, 0, 100, out)
	validateRRules(c, out)
}

func validateJournal(c *model.Component, out *[]Finding) {
	requireProperty(c, model.PropDTStamp, out)
	requireProperty(c, model.PropUID, out)
	validateEnum(c, model.PropStatus, []string{"DRAFT", "FINAL", "CANCELLED"}, out)
	validateRRules(c, out)
}

func validateFreeBusy(c *model.Component, out *[]Finding) {
	requireProperty(c, model.PropDTStamp, out)
	requireProperty(c, model.PropUID, out)
	for _, p := range c.GetAllProperties(model.PropFreeBusy) {
		fbtype := p.Params.GetFirst("FBTYPE")
		if fbtype == "" {
			continue
		}
		if !isOneOf(fbtype, "FREE", "BUSY", "BUSY-UNAVAILABLE", "BUSY-TENTATIVE") {
			*out = append(*out, newFinding("ICAL-VFREEBUSY-FBTYPE", "unrecognized FBTYPE "+fbtype, c, model.PropFreeBusy, SeverityError))
		}
	}
}

func validateTimeZone(c *model.Component, out *[]Finding) {
	requireProperty(c, model.PropTZID, out)
	if len(c.ChildrenNamed(string(model.SectionStandard)))+len(c.ChildrenNamed(string(model.SectionDaylight))) == 0 {
		*out = append(*out, newFinding("ICAL-VTIMEZONE-REQ-TRANSITION", "VTIMEZONE requires at least one STANDARD or DAYLIGHT child", c, "", SeverityError))
	}
}

func validateTZTransition(c *model.Component, out *[]Finding) {
	requireProperty(c, model.PropDTStart, out)
	requireProperty(c, model.PropTZOffsetFrom, out)
	requireProperty(c, model.PropTZOffsetTo, out)
}

func validateAlarm(c *model.Component, out *[]Finding) {
	requireProperty(c, model.PropAction, out)
	requireProperty(c, model.PropTrigger, out)
	action := ""
	if p, ok := c.GetProperty(model.PropAction); ok {
		action = p.Value.Text
	}
	switch action {
	case "DISPLAY":
		requireProperty(c, model.PropDescription, out)
	case "EMAIL":
		requireProperty(c, model.PropSummary, out)
		requireProperty(c, model.PropDescription, out)
		if len(c.GetAllProperties(model.PropAttendee)) == 0 {
			*out = append(*out, newFinding("ICAL-VALARM-REQ-ATTENDEE", "ATTENDEE is required on an EMAIL VALARM", c, model.PropAttendee, SeverityError))
		}
	}
	_, hasRepeat := c.GetProperty(model.PropRepeat)
	_, hasDuration := c.GetProperty(model.PropDuration)
	if hasRepeat != hasDuration {
		*out = append(*out, newFinding("ICAL-VALARM-REPEAT-DURATION", "REPEAT and DURATION must be used together on VALARM", c, model.PropRepeat, SeverityError))
	}
	if action != "" && !isOneOf(action, "AUDIO", "DISPLAY", "EMAIL") {
		*out = append(*out, newFinding("ICAL-VALARM-ACTION", "unrecognized ACTION "+action, c, model.PropAction, SeverityError))
	}
}

func validateEnum(c *model.Component, name string, allowed []string, out *[]Finding) {
	p, ok := c.GetProperty(name)
	if !ok || p.Value.Text == "" {
		return
	}
	if !isOneOf(p.Value.Text, allowed...) {
		*out = append(*out, newFinding("ICAL-"+c.Name+"-"+name, "unrecognized "+name+" "+p.Value.Text, c, name, SeverityError))
	}
}

func validateIntRange(c *model.Component, name string, min, max int, out *[]Finding) {
	p, ok := c.GetProperty(name)
	if !ok {
		return
	}
	v := int(p.Value.Int)
	if v < min || v > max {
		*out = append(*out, newFinding("ICAL-"+c.Name+"-"+name+"-RANGE", name+" out of range", c, name, SeverityError))
	}
}

func validateDateKindMatch(c *model.Component, startName, endName string, out *[]Finding) {
	start, hasStart := c.GetProperty(startName)
	end, hasEnd := c.GetProperty(endName)
	if !hasStart || !hasEnd {
		return
	}
	if start.Value.DateTime.IsDate != end.Value.DateTime.IsDate {
		*out = append(*out, newFinding("ICAL-"+c.Name+"-KIND-MISMATCH", startName+" and "+endName+" must share the same DATE/DATE-TIME kind", c, startName, SeverityError))
	}
}

func validateRRules(c *model.Component, out *[]Finding) {
	for _, p := range c.GetAllProperties(model.PropRRule) {
		r := p.Value.Recur
		if r == nil {
			*out = append(*out, newFinding("ICAL-RRULE-PARSE", "RRULE failed to parse: "+p.Value.Raw, c, model.PropRRule, SeverityError))
			continue
		}
		if r.Count != nil && r.Until != nil {
			*out = append(*out, newFinding("ICAL-RRULE-COUNT-UNTIL", "COUNT and UNTIL are mutually exclusive", c, model.PropRRule, SeverityError))
		}
		if r.Interval < 1 {
			*out = append(*out, newFinding("ICAL-RRULE-INTERVAL", "INTERVAL must be >= 1", c, model.PropRRule, SeverityError))
		}
	}
}

// validateTZIDReferences walks every property in the tree carrying a TZID
// parameter and warns when the calendar c (expected to be the VCALENDAR
// root) defines no matching VTIMEZONE child.
func validateTZIDReferences(c *model.Component, out *[]Finding) {
	known := map[string]bool{}
	for _, tz := range c.ChildrenNamed(string(model.SectionVTimezone)) {
		if p, ok := tz.GetProperty(model.PropTZID); ok {
			known[p.Value.Text] = true
		}
	}
	var visit func(n *model.Component)
	visit = func(n *model.Component) {
		for _, p := range n.Properties {
			if tzid := p.Params.GetFirst(model.ParamTZID); tzid != "" && !known[tzid] {
				*out = append(*out, newFinding("ICAL-TZID-UNDEFINED", "TZID="+tzid+" has no matching VTIMEZONE", n, p.Name, SeverityWarning))
			}
		}
		for _, child := range n.Children {
			visit(child)
		}
	}
	visit(c)
}

func isOneOf(s string, allowed ...string) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}
