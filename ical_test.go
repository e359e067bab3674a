// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package ical

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCalendar = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//icalgo//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:event-1@example.com\r\n" +
	"DTSTAMP:20250101T000000Z\r\n" +
	"DTSTART:20250101T090000Z\r\n" +
	"SUMMARY:Launch review\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestParseValidateWriteRoundTrip(t *testing.T) {
	cal, warnings, err := Parse(sampleCalendar, DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, cal.Events(), 1)
	assert.Equal(t, "Launch review", cal.Events()[0].Summary())

	findings := Validate(cal)
	assert.Empty(t, findings)

	out := Write(cal)
	assert.True(t, strings.Contains(string(out), "SUMMARY:Launch review"))
	assert.True(t, strings.HasPrefix(string(out), "BEGIN:VCALENDAR\r\n"))
}

func TestValidateReportsMissingRequiredProperty(t *testing.T) {
	missingProdID := "BEGIN:VCALENDAR\r\n" +
		"VERSION:2.0\r\n" +
		"END:VCALENDAR\r\n"

	cal, _, err := Parse(missingProdID, DefaultConfig())
	require.NoError(t, err)

	findings := Validate(cal)
	require.NotEmpty(t, findings)
}

func TestMarshalJCalProducesArray(t *testing.T) {
	cal, _, err := Parse(sampleCalendar, DefaultConfig())
	require.NoError(t, err)

	data, err := MarshalJCal(cal)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), `["vcalendar"`))
}

func TestNewUIDIsUniqueAndNonEmpty(t *testing.T) {
	a := NewUID()
	b := NewUID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
