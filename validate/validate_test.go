// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package validate

import (
	"testing"
	"time"

	"github.com/brennonyork/icalgo/model"
	"github.com/brennonyork/icalgo/rrule"
	"github.com/stretchr/testify/assert"
)

func textProp(name, text string) model.Property {
	return model.Property{Name: name, Value: model.Value{Kind: model.KindText, Raw: text, Text: text}}
}

func findCode(findings []Finding, code string) (Finding, bool) {
	for _, f := range findings {
		if f.Code == code {
			return f, true
		}
	}
	return Finding{}, false
}

func TestCalendarRequiresProdIDAndVersion(t *testing.T) {
	cal := model.NewComponent(string(model.SectionVCalendar))
	findings := Run(cal)
	_, hasProdID := findCode(findings, "ICAL-VCALENDAR-REQ-PRODID")
	_, hasVersion := findCode(findings, "ICAL-VCALENDAR-REQ-VERSION")
	assert.True(t, hasProdID)
	assert.True(t, hasVersion)
}

func TestEventDTEndDurationMutuallyExclusive(t *testing.T) {
	ev := model.NewComponent(string(model.SectionVEvent))
	ev.AddProperty(textProp(model.PropUID, "u1"))
	ev.AddProperty(model.Property{Name: model.PropDTStamp, Value: model.Value{Kind: model.KindDateTime}})
	ev.AddProperty(model.Property{Name: model.PropDTEnd, Value: model.Value{Kind: model.KindDateTime}})
	ev.AddProperty(model.Property{Name: model.PropDuration, Value: model.Value{Kind: model.KindDuration}})
	findings := Run(ev)
	_, found := findCode(findings, "ICAL-VEVENT-EXCL")
	assert.True(t, found)
}

func TestEventUnrecognizedStatus(t *testing.T) {
	ev := model.NewComponent(string(model.SectionVEvent))
	ev.AddProperty(textProp(model.PropUID, "u1"))
	ev.AddProperty(model.Property{Name: model.PropDTStamp, Value: model.Value{Kind: model.KindDateTime}})
	ev.AddProperty(textProp(model.PropStatus, "BOGUS"))
	findings := Run(ev)
	_, found := findCode(findings, "ICAL-VEVENT-STATUS")
	assert.True(t, found)
}

func TestEventDateKindMismatch(t *testing.T) {
	ev := model.NewComponent(string(model.SectionVEvent))
	ev.AddProperty(textProp(model.PropUID, "u1"))
	ev.AddProperty(model.Property{Name: model.PropDTStamp, Value: model.Value{Kind: model.KindDateTime}})
	ev.AddProperty(model.Property{Name: model.PropDTStart, Value: model.Value{Kind: model.KindDate, DateTime: model.DateTime{IsDate: true}}})
	ev.AddProperty(model.Property{Name: model.PropDTEnd, Value: model.Value{Kind: model.KindDateTime, DateTime: model.DateTime{IsDate: false}}})
	findings := Run(ev)
	_, found := findCode(findings, "ICAL-VEVENT-KIND-MISMATCH")
	assert.True(t, found)
}

func TestTodoPriorityOutOfRange(t *testing.T) {
	todo := model.NewComponent(string(model.SectionVTodo))
	todo.AddProperty(textProp(model.PropUID, "u1"))
	todo.AddProperty(model.Property{Name: model.PropDTStamp, Value: model.Value{Kind: model.KindDateTime}})
	todo.AddProperty(model.Property{Name: model.PropPriority, Value: model.Value{Kind: model.KindInteger, Int: 15}})
	findings := Run(todo)
	_, found := findCode(findings, "ICAL-VTODO-PRIORITY-RANGE")
	assert.True(t, found)
}

func TestTimeZoneRequiresTransitionChild(t *testing.T) {
	tz := model.NewComponent(string(model.SectionVTimezone))
	tz.AddProperty(textProp(model.PropTZID, "America/New_York"))
	findings := Run(tz)
	_, found := findCode(findings, "ICAL-VTIMEZONE-REQ-TRANSITION")
	assert.True(t, found)
}

func TestAlarmDisplayRequiresDescription(t *testing.T) {
	alarm := model.NewComponent(string(model.SectionVAlarm))
	alarm.AddProperty(textProp(model.PropAction, "DISPLAY"))
	alarm.AddProperty(textProp(model.PropTrigger, "-PT15M"))
	findings := Run(alarm)
	_, found := findCode(findings, "ICAL-VALARM-REQ-DESCRIPTION")
	assert.True(t, found)
}

func TestAlarmEmailRequiresAttendee(t *testing.T) {
	alarm := model.NewComponent(string(model.SectionVAlarm))
	alarm.AddProperty(textProp(model.PropAction, "EMAIL"))
	alarm.AddProperty(textProp(model.PropTrigger, "-PT15M"))
	alarm.AddProperty(textProp(model.PropSummary, "Reminder"))
	alarm.AddProperty(textProp(model.PropDescription, "Body"))
	findings := Run(alarm)
	_, found := findCode(findings, "ICAL-VALARM-REQ-ATTENDEE")
	assert.True(t, found)
}

func TestAlarmRepeatRequiresDuration(t *testing.T) {
	alarm := model.NewComponent(string(model.SectionVAlarm))
	alarm.AddProperty(textProp(model.PropAction, "AUDIO"))
	alarm.AddProperty(textProp(model.PropTrigger, "-PT15M"))
	alarm.AddProperty(model.Property{Name: model.PropRepeat, Value: model.Value{Kind: model.KindInteger, Int: 3}})
	findings := Run(alarm)
	_, found := findCode(findings, "ICAL-VALARM-REPEAT-DURATION")
	assert.True(t, found)
}

func TestRRuleCountAloneIsValid(t *testing.T) {
	count := 5
	ev := model.NewComponent(string(model.SectionVEvent))
	ev.AddProperty(textProp(model.PropUID, "u1"))
	ev.AddProperty(model.Property{Name: model.PropDTStamp, Value: model.Value{Kind: model.KindDateTime}})
	r := &rrule.RRule{Frequency: rrule.FrequencyDaily, Interval: 1, Count: &count}
	ev.AddProperty(model.Property{Name: model.PropRRule, Value: model.Value{Kind: model.KindRecur, Recur: r}})
	findings := Run(ev)
	_, found := findCode(findings, "ICAL-RRULE-COUNT-UNTIL")
	assert.False(t, found)
}

func TestRRuleCountAndUntilMutuallyExclusive(t *testing.T) {
	count := 5
	until := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	ev := model.NewComponent(string(model.SectionVEvent))
	ev.AddProperty(textProp(model.PropUID, "u1"))
	ev.AddProperty(model.Property{Name: model.PropDTStamp, Value: model.Value{Kind: model.KindDateTime}})
	r := &rrule.RRule{Frequency: rrule.FrequencyDaily, Interval: 1, Count: &count, Until: &until}
	ev.AddProperty(model.Property{Name: model.PropRRule, Value: model.Value{Kind: model.KindRecur, Recur: r}})
	findings := Run(ev)
	_, found := findCode(findings, "ICAL-RRULE-COUNT-UNTIL")
	assert.True(t, found)
}

func TestTZIDCrossReferenceWarnsWhenUndefined(t *testing.T) {
	cal := model.NewComponent(string(model.SectionVCalendar))
	cal.AddProperty(textProp(model.PropProdID, "-//test//EN"))
	cal.AddProperty(textProp(model.PropVersion, "2.0"))
	ev := model.NewComponent(string(model.SectionVEvent))
	ev.AddProperty(textProp(model.PropUID, "u1"))
	ev.AddProperty(model.Property{Name: model.PropDTStamp, Value: model.Value{Kind: model.KindDateTime}})
	ev.AddProperty(model.Property{
		Name:   model.PropDTStart,
		Params: model.Parameters{{Name: model.ParamTZID, Values: []string{"America/Nowhere"}}},
		Value:  model.Value{Kind: model.KindDateTime},
	})
	cal.AddChild(ev)
	findings := Run(cal)
	f, found := findCode(findings, "ICAL-TZID-UNDEFINED")
	assert.True(t, found)
	assert.Equal(t, SeverityWarning, f.Severity)
}

func TestTZIDCrossReferenceSatisfiedByDefinedTimezone(t *testing.T) {
	cal := model.NewComponent(string(model.SectionVCalendar))
	cal.AddProperty(textProp(model.PropProdID, "-//test//EN"))
	cal.AddProperty(textProp(model.PropVersion, "2.0"))
	tz := model.NewComponent(string(model.SectionVTimezone))
	tz.AddProperty(textProp(model.PropTZID, "America/New_York"))
	std := model.NewComponent(string(model.SectionStandard))
	std.AddProperty(model.Property{Name: model.PropDTStart, Value: model.Value{Kind: model.KindDateTime}})
	std.AddProperty(model.Property{Name: model.PropTZOffsetFrom, Value: model.Value{Kind: model.KindUTCOffset}})
	std.AddProperty(model.Property{Name: model.PropTZOffsetTo, Value: model.Value{Kind: model.KindUTCOffset}})
	tz.AddChild(std)
	cal.AddChild(tz)
	ev := model.NewComponent(string(model.SectionVEvent))
	ev.AddProperty(textProp(model.PropUID, "u1"))
	ev.AddProperty(model.Property{Name: model.PropDTStamp, Value: model.Value{Kind: model.KindDateTime}})
	ev.AddProperty(model.Property{
		Name:   model.PropDTStart,
		Params: model.Parameters{{Name: model.ParamTZID, Values: []string{"America/New_York"}}},
		Value:  model.Value{Kind: model.KindDateTime},
	})
	cal.AddChild(ev)
	findings := Run(cal)
	_, found := findCode(findings, "ICAL-TZID-UNDEFINED")
	assert.False(t, found)
}
