// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package values

import (
	"testing"
	"time"

	"github.com/brennonyork/icalgo/model"
	"github.com/brennonyork/icalgo/security"
	"github.com/stretchr/testify/assert"
)

func ctx() *Context {
	return &Context{Strict: true, URI: security.DefaultPolicy()}
}

func TestDateRoundTrip(t *testing.T) {
	v, err := ParseDate("20240229", ctx())
	assert.NoError(t, err)
	assert.Equal(t, "20240229", FormatDate(v))
}

func TestDateRejectsInvalidCalendarDate(t *testing.T) {
	_, err := ParseDate("20240230", ctx())
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDateTimeUTC(t *testing.T) {
	v, err := ParseDateTime("20250928T183000Z", "", ctx())
	assert.NoError(t, err)
	assert.True(t, v.DateTime.IsUTC)
	assert.Equal(t, "20250928T183000Z", FormatDateTime(v))
}

func TestDateTimeFloatingLocal(t *testing.T) {
	v, err := ParseDateTime("20240101T090000", "", ctx())
	assert.NoError(t, err)
	assert.False(t, v.DateTime.IsUTC)
	assert.Equal(t, "20240101T090000", FormatDateTime(v))
}

func TestDateTimeStrictRejectsGarbage(t *testing.T) {
	_, err := ParseDateTime("not-a-date", "", ctx())
	assert.ErrorIs(t, err, ErrInvalidDateTime)
}

func TestDateTimeLenientFallsBackToRFC3339(t *testing.T) {
	var warned bool
	c := &Context{Strict: false, URI: security.DefaultPolicy(), Warn: func(string, string) { warned = true }}
	v, err := ParseDateTime("2024-01-01T09:00:00Z", "", c)
	assert.NoError(t, err)
	assert.True(t, warned)
	assert.Equal(t, 2024, v.DateTime.Time.Year())
}

func TestDateTimeUnknownTZIDWarnsAndStaysLocal(t *testing.T) {
	var warned bool
	c := &Context{Strict: true, URI: security.DefaultPolicy(), Warn: func(string, string) { warned = true }}
	v, err := ParseDateTime("20240101T090000", "America/Nowhere", c)
	assert.NoError(t, err)
	assert.True(t, warned)
	assert.Equal(t, "America/Nowhere", v.DateTime.TZID)
}

func TestDateTimeKnownTZIDResolves(t *testing.T) {
	loc := time.FixedZone("TEST", 3600)
	c := &Context{Strict: true, URI: security.DefaultPolicy(), ResolveTZID: func(tzid string) (*time.Location, bool) {
		if tzid == "Test/Zone" {
			return loc, true
		}
		return nil, false
	}}
	v, err := ParseDateTime("20240101T090000", "Test/Zone", c)
	assert.NoError(t, err)
	assert.Equal(t, loc, v.DateTime.Time.Location())
}

func TestDurationRoundTrip(t *testing.T) {
	for _, raw := range []string{"PT1H", "-P15D", "P2W"} {
		v, err := ParseDuration(raw)
		assert.NoError(t, err, raw)
		assert.Equal(t, raw, FormatDuration(v), raw)
	}
}

func TestDurationRoundTripSemanticEquivalence(t *testing.T) {
	v, err := ParseDuration("P15DT5H0M20S")
	assert.NoError(t, err)
	reparsed, err := ParseDuration(FormatDuration(v))
	assert.NoError(t, err)
	assert.Equal(t, v.Duration, reparsed.Duration)
}

func TestDurationNegativeZero(t *testing.T) {
	v, err := ParseDuration("-P0D")
	assert.NoError(t, err)
	assert.True(t, v.Duration.Negative)
}

func TestDurationMalformedInputWrapsUnderlyingError(t *testing.T) {
	for _, raw := range []string{"", "Q15D", "P15DT5H0M20G", "P15DT5H0M20"} {
		_, err := ParseDuration(raw)
		assert.ErrorIs(t, err, ErrInvalidDuration, raw)
	}
}

func TestUTCOffsetRoundTrip(t *testing.T) {
	v, err := ParseUTCOffset("-0500", ctx())
	assert.NoError(t, err)
	assert.Equal(t, -5*3600, v.UTCOffsetSeconds)
	assert.Equal(t, "-0500", FormatUTCOffset(v))
}

func TestUTCOffsetStrictRejectsOutOfRange(t *testing.T) {
	_, err := ParseUTCOffset("+2500", ctx())
	assert.ErrorIs(t, err, ErrInvalidUTCOffset)
}

func TestTextEscaping(t *testing.T) {
	v := ParseText(`Hello\, world\; backslash \\ newline\n`)
	assert.Equal(t, "Hello, world; backslash \\ newline\n", v.Text)
	assert.Equal(t, `Hello\, world\; backslash \\ newline\n`, FormatText(v))
}

func TestTextEscapeOrderAvoidsDoubleEscaping(t *testing.T) {
	v := model.Value{Text: "a\\b"}
	assert.Equal(t, `a\\b`, FormatText(v))
}

func TestBinaryRoundTrip(t *testing.T) {
	v, err := ParseBinary("aGVsbG8=")
	assert.NoError(t, err)
	assert.Equal(t, []byte("hello"), v.Binary)
	assert.Equal(t, "aGVsbG8=", FormatBinary(v))
}

func TestBooleanParse(t *testing.T) {
	v, err := ParseBoolean("TRUE")
	assert.NoError(t, err)
	assert.True(t, v.Bool)
	_, err = ParseBoolean("maybe")
	assert.ErrorIs(t, err, ErrInvalidBoolean)
}

func TestURIGatedByPolicy(t *testing.T) {
	_, err := ParseURI("file:///etc/passwd", ctx())
	assert.ErrorIs(t, err, security.ErrInvalidScheme)
}

func TestCalAddressKeepsMailtoScheme(t *testing.T) {
	v, err := ParseCalAddress("mailto:alice@example.com", ctx())
	assert.NoError(t, err)
	assert.Equal(t, "mailto:alice@example.com", FormatCalAddress(v))
}

func TestCalAddressDoesNotDoublePrefix(t *testing.T) {
	v, err := ParseCalAddress("mailto:alice@example.com", ctx())
	assert.NoError(t, err)
	got := FormatCalAddress(v)
	assert.Equal(t, 1, countOccurrences(got, "mailto:"))
}

func countOccurrences(s, substr string) int {
	count := 0
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			count++
		}
	}
	return count
}

func TestRecurRoundTrip(t *testing.T) {
	v, err := ParseRecur("FREQ=DAILY;COUNT=3")
	assert.NoError(t, err)
	assert.Equal(t, "FREQ=DAILY;COUNT=3", FormatRecur(v))
}

func TestResolveKindDefault(t *testing.T) {
	kind, err := ResolveKind("DTSTART", nil, ctx())
	assert.NoError(t, err)
	assert.Equal(t, model.KindDateTime, kind)
}

func TestResolveKindExplicitOverride(t *testing.T) {
	params := model.Parameters{{Name: "VALUE", Values: []string{"DATE"}}}
	kind, err := ResolveKind("DTSTART", params, ctx())
	assert.NoError(t, err)
	assert.Equal(t, model.KindDate, kind)
}

func TestResolveKindUnrecognizedStrict(t *testing.T) {
	params := model.Parameters{{Name: "VALUE", Values: []string{"BOGUS"}}}
	_, err := ResolveKind("DTSTART", params, ctx())
	assert.ErrorIs(t, err, ErrTypeDeclarationMismatch)
}
