// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package rrule implements the recurrence rules defined in RFC 5545
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.3.10
package rrule

import (
	"strconv"
	"strings"
	"time"

	"github.com/brennonyork/icalgo/icaldur"
)

type Frequency string

const (
	FrequencySecondly Frequency = "SECONDLY"
	FrequencyMinutely Frequency = "MINUTELY"
	FrequencyHourly   Frequency = "HOURLY"
	FrequencyDaily    Frequency = "DAILY"
	FrequencyWeekly   Frequency = "WEEKLY"
	FrequencyMonthly  Frequency = "MONTHLY"
	FrequencyYearly   Frequency = "YEARLY"
)

// IsValid reports whether f is one of the seven RFC 5545 §3.3.10 frequencies.
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencySecondly, FrequencyMinutely, FrequencyHourly, FrequencyDaily,
		FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	default:
		return false
	}
}

type Weekday string

const (
	WeekdayMonday    Weekday = "MO"
	WeekdayTuesday   Weekday = "TU"
	WeekdayWednesday Weekday = "WE"
	WeekdayThursday  Weekday = "TH"
	WeekdayFriday    Weekday = "FR"
	WeekdaySaturday  Weekday = "SA"
	WeekdaySunday    Weekday = "SU"
)

// goWeekday maps an RFC 5545 Weekday onto time.Weekday.
var goWeekday = map[Weekday]time.Weekday{
	WeekdaySunday:    time.Sunday,
	WeekdayMonday:    time.Monday,
	WeekdayTuesday:   time.Tuesday,
	WeekdayWednesday: time.Wednesday,
	WeekdayThursday:  time.Thursday,
	WeekdayFriday:    time.Friday,
	WeekdaySaturday:  time.Saturday,
}

// weekdayOrder is goWeekday's inverse, indexed by time.Weekday.
var weekdayOrder = []Weekday{
	WeekdaySunday, WeekdayMonday, WeekdayTuesday, WeekdayWednesday,
	WeekdayThursday, WeekdayFriday, WeekdaySaturday,
}

func fromGoWeekday(d time.Weekday) Weekday {
	return weekdayOrder[int(d)%7]
}

// ByDay is one BYDAY list item: a weekday with an optional ordinal
// (e.g. "-1FR" is Ordinal -1, Weekday FR — "the last Friday").
// Ordinal is 0 when the BYDAY entry carries no leading number, meaning
// "any occurrence of that weekday in the period."
//
// Note: the field was named Interval in an earlier revision of this
// package; it never held a repetition interval, only the BYDAY ordinal,
// so it was renamed to avoid confusion with RRule.Interval.
type ByDay struct {
	Weekday Weekday
	Ordinal int
}

// RRule is an immutable parsed RRULE value. See RFC 5545 §3.3.10.
type RRule struct {
	// Frequency MUST be specified.
	Frequency Frequency
	// Interval between occurrences; defaults to 1 when absent.
	Interval int
	// Count is the total number of occurrences; mutually exclusive with Until.
	Count *int
	// Until is the inclusive end instant; mutually exclusive with Count.
	Until *time.Time
	// WKST is the day considered the start of the week, default Monday.
	WKST Weekday

	ByDay      []ByDay
	ByMonth    []int
	ByMonthDay []int
	ByYearDay  []int
	ByWeekNo   []int
	BySetPos   []int
	ByHour     []int
	ByMinute   []int
	BySecond   []int
}

// ParseRRule takes an iCal recurrence rule string and parses it into an
// RRule.
//
// Example for an event that happens daily for 10 days:
//
//	RRULE:FREQ=DAILY;INTERVAL=1;COUNT=10
func ParseRRule(rruleString string) (*RRule, error) {
	rule := &RRule{
		Interval: 1,
		WKST:     WeekdayMonday,
	}
	for part := range strings.SplitSeq(rruleString, ";") {
		if part == "" {
			continue
		}
		tag, value, found := strings.Cut(part, "=")
		if !found {
			return nil, ErrInvalidRRuleString
		}
		var err error
		switch tag {
		case "FREQ":
			rule.Frequency = Frequency(value)
		case "INTERVAL":
			rule.Interval, err = strconv.Atoi(value)
		case "COUNT":
			var count int
			count, err = strconv.Atoi(value)
			rule.Count = &count
		case "UNTIL":
			var until time.Time
			until, err = icaldur.ParseIcalTime(value)
			rule.Until = &until
		case "WKST":
			if !isValidWeekday(Weekday(value)) {
				return nil, ErrInvalidWkst
			}
			rule.WKST = Weekday(value)
		case "BYDAY":
			rule.ByDay, err = parseByDayList(value)
		case "BYMONTH":
			rule.ByMonth, err = parseIntList(value, 1, 12, ErrInvalidByMonth)
		case "BYMONTHDAY":
			rule.ByMonthDay, err = parseIntList(value, -31, 31, ErrInvalidByMonthDay)
		case "BYYEARDAY":
			rule.ByYearDay, err = parseIntList(value, -366, 366, ErrInvalidByYearDay)
		case "BYWEEKNO":
			rule.ByWeekNo, err = parseIntList(value, -53, 53, ErrInvalidByWeekNo)
		case "BYSETPOS":
			rule.BySetPos, err = parseIntList(value, -366, 366, ErrInvalidBySetPos)
		case "BYHOUR":
			rule.ByHour, err = parseIntList(value, 0, 23, ErrInvalidByHour)
		case "BYMINUTE":
			rule.ByMinute, err = parseIntList(value, 0, 59, ErrInvalidByMinute)
		case "BYSECOND":
			rule.BySecond, err = parseIntList(value, 0, 60, ErrInvalidBySecond)
		default:
			// Unrecognized BYxxx/parameter: ignored rather than rejected, so
			// that a future RFC extension doesn't hard-fail expansion.
		}
		if err != nil {
			return nil, err
		}
	}
	if err := validateRRule(rule); err != nil {
		return nil, err
	}
	return rule, nil
}

func parseIntList(value string, min, max int, badErr error) ([]int, error) {
	parts := strings.Split(value, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < min || n > max || n == 0 && min != 0 {
			return nil, badErr
		}
		out = append(out, n)
	}
	return out, nil
}

func parseByDayList(value string) ([]ByDay, error) {
	parts := strings.Split(value, ",")
	out := make([]ByDay, 0, len(parts))
	for _, p := range parts {
		ordinal, weekday, err := ParseByDay(p)
		if err != nil {
			return nil, err
		}
		out = append(out, ByDay{Weekday: weekday, Ordinal: ordinal})
	}
	return out, nil
}

func validateRRule(rule *RRule) error {
	if rule.Frequency == "" {
		return ErrFrequencyRequired
	}
	if !rule.Frequency.IsValid() {
		return errInvalidFrequency
	}
	if rule.Count != nil && rule.Until != nil {
		return ErrCountAndUntilBothSet
	}
	if rule.Interval <= 0 {
		return ErrInvalidInterval
	}
	return nil
}

// ParseByDay parses a single BYDAY value, e.g. "20MO" or "-1FR" or "TU",
// returning its ordinal (0 when absent) and weekday.
func ParseByDay(byDayString string) (int, Weekday, error) {
	if byDayString == "" {
		return 0, "", ErrInvalidByDayString
	}

	if byDayString[0] >= '0' && byDayString[0] <= '9' || byDayString[0] == '-' {
		digitEnd := 0
		for i, char := range byDayString {
			if char < '0' || char > '9' {
				if char == '-' && i == 0 {
					continue
				}
				digitEnd = i
				break
			}
			digitEnd = i + 1
		}

		intervalStr := byDayString[:digitEnd]
		weekday := Weekday(byDayString[digitEnd:])

		if !isValidWeekday(weekday) {
			return 0, "", ErrInvalidByDayString
		}

		ordinal, err := strconv.Atoi(intervalStr)
		if err != nil || ordinal == 0 {
			return 0, "", ErrInvalidByDayString
		}

		return ordinal, weekday, nil
	}

	if !isValidWeekday(Weekday(byDayString)) {
		return 0, "", ErrInvalidByDayString
	}

	return 0, Weekday(byDayString), nil
}

// isValidWeekday checks if the string is a valid weekday abbreviation.
func isValidWeekday(weekday Weekday) bool {
	switch weekday {
	case WeekdayMonday, WeekdayTuesday, WeekdayWednesday, WeekdayThursday, WeekdayFriday, WeekdaySaturday, WeekdaySunday:
		return true
	default:
		return false
	}
}
