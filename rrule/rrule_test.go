// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rrule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TODO: replace with calls to New once go 1.26 is released
func getPointer[T any](v T) *T {
	return &v
}

func TestParseRRule(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        *RRule
		expectError error
	}{
		{
			name:  "Valid daily rule with interval set",
			input: "FREQ=DAILY;INTERVAL=2;COUNT=10",
			want: &RRule{
				Frequency: FrequencyDaily,
				Interval:  2,
				Count:     getPointer(10),
				WKST:      WeekdayMonday,
			},
			expectError: nil,
		},
		{
			name:        "Invalid frequency",
			input:       "FREQ=DALLY;INTERVAL=2;COUNT=10",
			want:        nil,
			expectError: errInvalidFrequency,
		},
		{
			name:  "Valid daily rule with interval not set",
			input: "FREQ=DAILY;COUNT=10",
			want: &RRule{
				Frequency: FrequencyDaily,
				Interval:  1,
				Count:     getPointer(10),
				WKST:      WeekdayMonday,
			},
			expectError: nil,
		},
		{
			name:        "Invalid rule: missing frequency",
			input:       "INTERVAL=1;COUNT=10",
			want:        nil,
			expectError: ErrFrequencyRequired,
		},
		{
			name:        "Invalid rule: count and until cannot both be set",
			input:       "FREQ=DAILY;COUNT=10;UNTIL=19730429T070000Z",
			want:        nil,
			expectError: ErrCountAndUntilBothSet,
		},
		{
			name:        "Invalid rule: interval must be a positive integer",
			input:       "FREQ=DAILY;INTERVAL=0;COUNT=10",
			want:        nil,
			expectError: ErrInvalidInterval,
		},
		{
			name:        "Invalid rule: malformed rrule string",
			input:       "FREQ=DAILY;INVALID",
			want:        nil,
			expectError: ErrInvalidRRuleString,
		},
		{
			name:  "Monthly on the third-to-the-last day of the month, forever",
			input: "FREQ=MONTHLY;BYMONTHDAY=-3",
			want: &RRule{
				Frequency:  FrequencyMonthly,
				Interval:   1,
				ByMonthDay: []int{-3},
				WKST:       WeekdayMonday,
			},
			expectError: nil,
		},
		{
			name:  "Monthly on the first and last day of the month for 10 occurrences",
			input: "FREQ=MONTHLY;COUNT=10;BYMONTHDAY=1,-1",
			want: &RRule{
				Frequency:  FrequencyMonthly,
				Interval:   1,
				Count:      getPointer(10),
				ByMonthDay: []int{1, -1},
				WKST:       WeekdayMonday,
			},
			expectError: nil,
		},
		{
			name:  "Every Tuesday, every other month",
			input: "FREQ=MONTHLY;INTERVAL=2;BYDAY=TU",
			want: &RRule{
				Frequency: FrequencyMonthly,
				Interval:  2,
				ByDay:     []ByDay{{Weekday: WeekdayTuesday}},
				WKST:      WeekdayMonday,
			},
			expectError: nil,
		},
		{
			name:  "Every third year on the 1st, 100th, and 200th day for 10 occurrences:",
			input: "FREQ=YEARLY;INTERVAL=3;COUNT=10;BYYEARDAY=1,100,200",
			want: &RRule{
				Frequency: FrequencyYearly,
				Interval:  3,
				Count:     getPointer(10),
				ByYearDay: []int{1, 100, 200},
				WKST:      WeekdayMonday,
			},
			expectError: nil,
		},
		{
			name:  "Every 20th Monday of the year, forever",
			input: "FREQ=YEARLY;BYDAY=20MO",
			want: &RRule{
				Frequency: FrequencyYearly,
				Interval:  1,
				ByDay:     []ByDay{{Weekday: WeekdayMonday, Ordinal: 20}},
				WKST:      WeekdayMonday,
			},
			expectError: nil,
		},
		// DAILY examples from RFC 5545
		{
			name:  "Daily for 10 occurrences",
			input: "FREQ=DAILY;COUNT=10",
			want: &RRule{
				Frequency: FrequencyDaily,
				Interval:  1,
				Count:     getPointer(10),
				WKST:      WeekdayMonday,
			},
			expectError: nil,
		},
		{
			name:  "Daily until December 24, 1997",
			input: "FREQ=DAILY;UNTIL=19971224T000000Z",
			want: &RRule{
				Frequency: FrequencyDaily,
				Interval:  1,
				Until:     getPointer(time.Date(1997, 12, 24, 0, 0, 0, 0, time.UTC)),
				WKST:      WeekdayMonday,
			},
			expectError: nil,
		},
		{
			name:  "Every other day - forever",
			input: "FREQ=DAILY;INTERVAL=2",
			want: &RRule{
				Frequency: FrequencyDaily,
				Interval:  2,
				WKST:      WeekdayMonday,
			},
			expectError: nil,
		},
		{
			name:  "Every 10 days, 5 occurrences",
			input: "FREQ=DAILY;INTERVAL=10;COUNT=5",
			want: &RRule{
				Frequency: FrequencyDaily,
				Interval:  10,
				Count:     getPointer(5),
				WKST:      WeekdayMonday,
			},
			expectError: nil,
		},
		// WEEKLY examples from RFC 5545
		{
			name:  "Weekly for 10 occurrences",
			input: "FREQ=WEEKLY;COUNT=10",
			want: &RRule{
				Frequency: FrequencyWeekly,
				Interval:  1,
				Count:     getPointer(10),
				WKST:      WeekdayMonday,
			},
			expectError: nil,
		},
		{
			name:  "Every other week on Monday, Wednesday, and Friday until December 24, 1997",
			input: "FREQ=WEEKLY;INTERVAL=2;UNTIL=19971224T000000Z;BYDAY=MO,WE,FR",
			want: &RRule{
				Frequency: FrequencyWeekly,
				Interval:  2,
				Until:     getPointer(time.Date(1997, 12, 24, 0, 0, 0, 0, time.UTC)),
				ByDay: []ByDay{
					{Weekday: WeekdayMonday},
					{Weekday: WeekdayWednesday},
					{Weekday: WeekdayFriday},
				},
				WKST: WeekdayMonday,
			},
			expectError: nil,
		},
		{
			name:  "An example where the days generated makes a difference because of WKST (Sunday start)",
			input: "FREQ=WEEKLY;INTERVAL=2;COUNT=4;BYDAY=TU,SU;WKST=SU",
			want: &RRule{
				Frequency: FrequencyWeekly,
				Interval:  2,
				Count:     getPointer(4),
				ByDay: []ByDay{
					{Weekday: WeekdayTuesday},
					{Weekday: WeekdaySunday},
				},
				WKST: WeekdaySunday,
			},
			expectError: nil,
		},
		// MONTHLY examples from RFC 5545
		{
			name:  "Monthly on the first Friday for 10 occurrences",
			input: "FREQ=MONTHLY;COUNT=10;BYDAY=1FR",
			want: &RRule{
				Frequency: FrequencyMonthly,
				Interval:  1,
				Count:     getPointer(10),
				ByDay:     []ByDay{{Weekday: WeekdayFriday, Ordinal: 1}},
				WKST:      WeekdayMonday,
			},
			expectError: nil,
		},
		{
			name:  "Monthly on the second-to-last Monday of the month for 6 months",
			input: "FREQ=MONTHLY;COUNT=6;BYDAY=-2MO",
			want: &RRule{
				Frequency: FrequencyMonthly,
				Interval:  1,
				Count:     getPointer(6),
				ByDay:     []ByDay{{Weekday: WeekdayMonday, Ordinal: -2}},
				WKST:      WeekdayMonday,
			},
			expectError: nil,
		},
		{
			name:  "The third instance into the month of one of Tuesday, Wednesday, or Thursday, for the next 3 months",
			input: "FREQ=MONTHLY;COUNT=3;BYDAY=TU,WE,TH;BYSETPOS=3",
			want: &RRule{
				Frequency: FrequencyMonthly,
				Interval:  1,
				Count:     getPointer(3),
				ByDay: []ByDay{
					{Weekday: WeekdayTuesday},
					{Weekday: WeekdayWednesday},
					{Weekday: WeekdayThursday},
				},
				BySetPos: []int{3},
				WKST:     WeekdayMonday,
			},
			expectError: nil,
		},
		{
			name:  "The second-to-last weekday of the month",
			input: "FREQ=MONTHLY;BYDAY=MO,TU,WE,TH,FR;BYSETPOS=-2",
			want: &RRule{
				Frequency: FrequencyMonthly,
				Interval:  1,
				ByDay: []ByDay{
					{Weekday: WeekdayMonday},
					{Weekday: WeekdayTuesday},
					{Weekday: WeekdayWednesday},
					{Weekday: WeekdayThursday},
					{Weekday: WeekdayFriday},
				},
				BySetPos: []int{-2},
				WKST:     WeekdayMonday,
			},
			expectError: nil,
		},
		// YEARLY examples from RFC 5545
		{
			name:  "Yearly in June and July for 10 occurrences",
			input: "FREQ=YEARLY;COUNT=10;BYMONTH=6,7",
			want: &RRule{
				Frequency: FrequencyYearly,
				Interval:  1,
				Count:     getPointer(10),
				ByMonth:   []int{6, 7},
				WKST:      WeekdayMonday,
			},
			expectError: nil,
		},
		{
			name:  "Monday of week number 20 (where the default start of the week is Monday), forever",
			input: "FREQ=YEARLY;BYWEEKNO=20;BYDAY=MO",
			want: &RRule{
				Frequency: FrequencyYearly,
				Interval:  1,
				ByWeekNo:  []int{20},
				ByDay:     []ByDay{{Weekday: WeekdayMonday}},
				WKST:      WeekdayMonday,
			},
			expectError: nil,
		},
		{
			name:  "Every Friday the 13th, forever",
			input: "FREQ=MONTHLY;BYDAY=FR;BYMONTHDAY=13",
			want: &RRule{
				Frequency:  FrequencyMonthly,
				Interval:   1,
				ByDay:      []ByDay{{Weekday: WeekdayFriday}},
				ByMonthDay: []int{13},
				WKST:       WeekdayMonday,
			},
			expectError: nil,
		},
		// HOURLY and MINUTELY examples from RFC 5545
		{
			name:  "Every 3 hours from 9:00 AM to 5:00 PM on a specific day",
			input: "FREQ=HOURLY;INTERVAL=3;UNTIL=19970902T170000Z",
			want: &RRule{
				Frequency: FrequencyHourly,
				Interval:  3,
				Until:     getPointer(time.Date(1997, 9, 2, 17, 0, 0, 0, time.UTC)),
				WKST:      WeekdayMonday,
			},
			expectError: nil,
		},
		{
			name:  "Every 15 minutes for 6 occurrences",
			input: "FREQ=MINUTELY;INTERVAL=15;COUNT=6",
			want: &RRule{
				Frequency: FrequencyMinutely,
				Interval:  15,
				Count:     getPointer(6),
				WKST:      WeekdayMonday,
			},
			expectError: nil,
		},
		{
			name:  "Every 20 minutes from 9:00 AM to 4:40 PM every day",
			input: "FREQ=DAILY;BYHOUR=9,10,11,12,13,14,15,16;BYMINUTE=0,20,40",
			want: &RRule{
				Frequency: FrequencyDaily,
				Interval:  1,
				ByHour:    []int{9, 10, 11, 12, 13, 14, 15, 16},
				ByMinute:  []int{0, 20, 40},
				WKST:      WeekdayMonday,
			},
			expectError: nil,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rule, err := ParseRRule(test.input)
			if test.expectError != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, test.expectError)
				assert.Nil(t, rule)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.want, rule)
		})
	}
}

func TestParseByDay(t *testing.T) {
	tests := []struct {
		name            string
		input           string
		expectedOrdinal int
		expectedWeekDay Weekday
		expectError     error
	}{
		{
			name:            "String with ordinal and weekday",
			input:           "20MO",
			expectedOrdinal: 20,
			expectedWeekDay: WeekdayMonday,
		},
		{
			name:            "String with just weekday",
			input:           "MO",
			expectedOrdinal: 0,
			expectedWeekDay: WeekdayMonday,
		},
		{
			name:            "String with ordinal and Tuesday",
			input:           "5TU",
			expectedOrdinal: 5,
			expectedWeekDay: WeekdayTuesday,
		},
		{
			name:            "String with just Friday",
			input:           "FR",
			expectedOrdinal: 0,
			expectedWeekDay: WeekdayFriday,
		},
		{
			name:        "Invalid string returns error",
			input:       "INVALID",
			expectError: ErrInvalidByDayString,
		},
		{
			name:        "Empty string returns error",
			input:       "",
			expectError: ErrInvalidByDayString,
		},
		{
			name:        "String with invalid weekday returns error",
			input:       "5XX",
			expectError: ErrInvalidByDayString,
		},
		{
			name:            "String with negative ordinal and weekday",
			input:           "-1SU",
			expectedOrdinal: -1,
			expectedWeekDay: WeekdaySunday,
		},
		{
			name:            "String with negative ordinal and Monday",
			input:           "-2MO",
			expectedOrdinal: -2,
			expectedWeekDay: WeekdayMonday,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ordinal, weekday, err := ParseByDay(test.input)
			if test.expectError != nil {
				assert.ErrorIs(t, err, test.expectError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.expectedOrdinal, ordinal)
			assert.Equal(t, test.expectedWeekDay, weekday)
		})
	}
}
