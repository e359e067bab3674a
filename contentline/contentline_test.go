// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package contentline

import (
	"testing"

	"github.com/brennonyork/icalgo/model"
	"github.com/stretchr/testify/assert"
)

func TestParseSimple(t *testing.T) {
	l, err := Parse("SUMMARY:Team meeting", true)
	assert.NoError(t, err)
	assert.Equal(t, "SUMMARY", l.Name)
	assert.Empty(t, l.Params)
	assert.Equal(t, "Team meeting", l.Value)
}

func TestParseLowercaseNameNormalizes(t *testing.T) {
	l, err := Parse("summary:x", true)
	assert.NoError(t, err)
	assert.Equal(t, "SUMMARY", l.Name)
}

func TestParseEmptyValue(t *testing.T) {
	l, err := Parse("DESCRIPTION:", true)
	assert.NoError(t, err)
	assert.Equal(t, "", l.Value)
}

func TestParseParamsUnquoted(t *testing.T) {
	l, err := Parse("ORGANIZER;CN=Alice;ROLE=CHAIR:mailto:alice@example.com", true)
	assert.NoError(t, err)
	assert.Equal(t, "ORGANIZER", l.Name)
	assert.Equal(t, "Alice", l.Params.GetFirst("CN"))
	assert.Equal(t, "CHAIR", l.Params.GetFirst("ROLE"))
	assert.Equal(t, "mailto:alice@example.com", l.Value)
}

func TestParseParamMultiValue(t *testing.T) {
	l, err := Parse("RESOURCES;X-CATS=A,B,C:chairs", true)
	assert.NoError(t, err)
	p, ok := l.Params.Get("X-CATS")
	assert.True(t, ok)
	assert.Equal(t, []string{"A", "B", "C"}, p.Values)
}

func TestParseQuotedParamWithReservedChars(t *testing.T) {
	l, err := Parse(`ATTACH;FMTTYPE="text/plain;x=1":http://example.com`, true)
	assert.NoError(t, err)
	assert.Equal(t, "text/plain;x=1", l.Params.GetFirst("FMTTYPE"))
}

func TestParseParamWithoutEquals(t *testing.T) {
	l, err := Parse("X-THING;FLAG:value", true)
	assert.NoError(t, err)
	assert.Equal(t, "", l.Params.GetFirst("FLAG"))
}

func TestParseUnclosedQuote(t *testing.T) {
	_, err := Parse(`SUMMARY;X="unterminated:value`, true)
	assert.ErrorIs(t, err, ErrUnclosedQuotedString)
}

func TestParseMissingColon(t *testing.T) {
	_, err := Parse("SUMMARY;CN=Alice", true)
	assert.ErrorIs(t, err, ErrInvalidPropertyFormat)
}

func TestParseEmptyName(t *testing.T) {
	_, err := Parse(":value", true)
	assert.ErrorIs(t, err, ErrInvalidPropertyFormat)
}

func TestRFC6868Decode(t *testing.T) {
	l, err := Parse(`X-TEST;CN="a^nb^^c^'d":v`, true)
	assert.NoError(t, err)
	assert.Equal(t, "a\nb^c\"d", l.Params.GetFirst("CN"))
}

func TestRFC6868InvalidCaretStrict(t *testing.T) {
	_, err := Parse(`X-TEST;CN="a^xb":v`, true)
	assert.ErrorIs(t, err, ErrInvalidCaret)
}

func TestRFC6868InvalidCaretLenientPassthrough(t *testing.T) {
	l, err := Parse(`X-TEST;CN="a^xb":v`, false)
	assert.NoError(t, err)
	assert.Equal(t, "a^xb", l.Params.GetFirst("CN"))
}

func TestFormatRoundTripsSimple(t *testing.T) {
	in := Line{Name: "SUMMARY", Value: "Team meeting"}
	assert.Equal(t, "SUMMARY:Team meeting", Format(in))
}

func TestFormatQuotesReservedChars(t *testing.T) {
	l := Line{
		Name:   "ATTACH",
		Value:  "http://example.com",
		Params: model.Parameters{{Name: "FMTTYPE", Values: []string{"text/plain;x=1"}}},
	}
	got := Format(l)
	reparsed, err := Parse(got, true)
	assert.NoError(t, err)
	assert.Equal(t, "text/plain;x=1", reparsed.Params.GetFirst("FMTTYPE"))
}

func TestFormatEncodes6868OnWrite(t *testing.T) {
	l := Line{
		Name:   "X-TEST",
		Value:  "v",
		Params: model.Parameters{{Name: "CN", Values: []string{"a\nb^c\"d"}}},
	}
	got := Format(l)
	reparsed, err := Parse(got, true)
	assert.NoError(t, err)
	assert.Equal(t, "a\nb^c\"d", reparsed.Params.GetFirst("CN"))
}
