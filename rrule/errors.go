// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rrule

import "errors"

// Predefined errors for the rrule package.
var (
	// ErrInvalidRRuleString is returned when the rrule string format is invalid.
	ErrInvalidRRuleString = errors.New("invalid rrule string")

	// ErrFrequencyRequired is returned when the frequency property is missing.
	ErrFrequencyRequired = errors.New("frequency is required")

	// ErrCountAndUntilBothSet is returned when both count and until properties are set.
	ErrCountAndUntilBothSet = errors.New("count and until cannot both be set")

	// ErrInvalidInterval is returned when the interval is not a positive integer.
	ErrInvalidInterval = errors.New("interval must be a positive integer")

	// ErrInvalidByDayString is returned when the BYDAY string format is invalid.
	ErrInvalidByDayString = errors.New("invalid BYDAY string")

	// ErrInvalidWkst is returned when the WKST value is not a valid weekday.
	ErrInvalidWkst = errors.New("invalid WKST value")

	// ErrInvalidByMonth is returned when a BYMONTH value is out of range.
	ErrInvalidByMonth = errors.New("invalid BYMONTH value")

	// ErrInvalidByMonthDay is returned when a BYMONTHDAY value is out of range.
	ErrInvalidByMonthDay = errors.New("invalid BYMONTHDAY value")

	// ErrInvalidByYearDay is returned when a BYYEARDAY value is out of range.
	ErrInvalidByYearDay = errors.New("invalid BYYEARDAY value")

	// ErrInvalidByWeekNo is returned when a BYWEEKNO value is out of range.
	ErrInvalidByWeekNo = errors.New("invalid BYWEEKNO value")

	// ErrInvalidBySetPos is returned when a BYSETPOS value is out of range.
	ErrInvalidBySetPos = errors.New("invalid BYSETPOS value")

	// ErrInvalidByHour is returned when a BYHOUR value is out of range.
	ErrInvalidByHour = errors.New("invalid BYHOUR value")

	// ErrInvalidByMinute is returned when a BYMINUTE value is out of range.
	ErrInvalidByMinute = errors.New("invalid BYMINUTE value")

	// ErrInvalidBySecond is returned when a BYSECOND value is out of range.
	ErrInvalidBySecond = errors.New("invalid BYSECOND value")

	// ErrUnboundedWithoutRangeEnd is returned by Expand when a rule has
	// neither COUNT nor UNTIL and the caller supplied no range end.
	ErrUnboundedWithoutRangeEnd = errors.New("unbounded recurrence without range end")

	errInvalidFrequency = errors.New("invalid frequency")
)
