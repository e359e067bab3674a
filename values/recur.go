// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package values

import (
	"strconv"
	"strings"

	"github.com/brennonyork/icalgo/model"
	"github.com/brennonyork/icalgo/rrule"
)

// ParseRecur decodes an RRULE/EXRULE value via the rrule package.
func ParseRecur(raw string) (model.Value, error) {
	rule, err := rrule.ParseRRule(raw)
	if err != nil {
		return model.Value{}, err
	}
	return model.Value{Kind: model.KindRecur, Raw: raw, Recur: rule}, nil
}

// FormatRecur is the inverse of ParseRecur, re-deriving the RRULE text form
// from the parsed *rrule.RRule fields.
func FormatRecur(v model.Value) string {
	r := v.Recur
	if r == nil {
		return v.Raw
	}
	var parts []string
	parts = append(parts, "FREQ="+string(r.Frequency))
	if r.Interval > 1 {
		parts = append(parts, "INTERVAL="+strconv.Itoa(r.Interval))
	}
	if r.Count != nil {
		parts = append(parts, "COUNT="+strconv.Itoa(*r.Count))
	}
	if r.Until != nil {
		parts = append(parts, "UNTIL="+r.Until.UTC().Format("20060102T150405Z"))
	}
	if r.WKST != "" && r.WKST != rrule.WeekdayMonday {
		parts = append(parts, "WKST="+string(r.WKST))
	}
	if len(r.ByMonth) > 0 {
		parts = append(parts, "BYMONTH="+joinInts(r.ByMonth))
	}
	if len(r.ByWeekNo) > 0 {
		parts = append(parts, "BYWEEKNO="+joinInts(r.ByWeekNo))
	}
	if len(r.ByYearDay) > 0 {
		parts = append(parts, "BYYEARDAY="+joinInts(r.ByYearDay))
	}
	if len(r.ByMonthDay) > 0 {
		parts = append(parts, "BYMONTHDAY="+joinInts(r.ByMonthDay))
	}
	if len(r.ByDay) > 0 {
		items := make([]string, 0, len(r.ByDay))
		for _, bd := range r.ByDay {
			if bd.Ordinal != 0 {
				items = append(items, strconv.Itoa(bd.Ordinal)+string(bd.Weekday))
			} else {
				items = append(items, string(bd.Weekday))
			}
		}
		parts = append(parts, "BYDAY="+strings.Join(items, ","))
	}
	if len(r.ByHour) > 0 {
		parts = append(parts, "BYHOUR="+joinInts(r.ByHour))
	}
	if len(r.ByMinute) > 0 {
		parts = append(parts, "BYMINUTE="+joinInts(r.ByMinute))
	}
	if len(r.BySecond) > 0 {
		parts = append(parts, "BYSECOND="+joinInts(r.BySecond))
	}
	if len(r.BySetPos) > 0 {
		parts = append(parts, "BYSETPOS="+joinInts(r.BySetPos))
	}
	return strings.Join(parts, ";")
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}
