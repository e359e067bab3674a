// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package values

import (
	"fmt"
	"time"

	"github.com/brennonyork/icalgo/model"
)

const (
	localLayout = "20060102T150405"
	utcLayout   = "20060102T150405Z"
)

// ParseDateTime decodes a DATE-TIME value: YYYYMMDDTHHMMSS (floating local),
// YYYYMMDDTHHMMSSZ (UTC), or a local form qualified by a TZID parameter.
// Strict mode rejects anything else; lenient mode falls back to time.Parse's
// general RFC 3339 support and records a warning.
func ParseDateTime(raw string, tzid string, ctx *Context) (model.Value, error) {
	if t, ok := parseLocalDateTime(raw); ok {
		dt := model.DateTime{Time: t}
		if tzid != "" {
			if loc, found := ctx.resolveTZID(tzid); found {
				dt.Time = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc)
			} else {
				ctx.warn("ICAL-TYPE-010", fmt.Sprintf("unknown TZID %q, interpreting %q as floating local time", tzid, raw))
			}
			dt.TZID = tzid
		}
		return model.Value{Kind: model.KindDateTime, Raw: raw, DateTime: dt}, nil
	}
	if t, err := time.ParseInLocation(utcLayout, raw, time.UTC); err == nil {
		return model.Value{
			Kind:     model.KindDateTime,
			Raw:      raw,
			DateTime: model.DateTime{Time: t, IsUTC: true},
		}, nil
	}

	if ctx.strict() {
		return model.Value{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, raw)
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return model.Value{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, raw)
	}
	ctx.warn("ICAL-TYPE-011", fmt.Sprintf("lenient general-purpose parse of DATE-TIME %q", raw))
	return model.Value{
		Kind:     model.KindDateTime,
		Raw:      raw,
		DateTime: model.DateTime{Time: t, IsUTC: t.Location() == time.UTC},
	}, nil
}

func parseLocalDateTime(raw string) (time.Time, bool) {
	if len(raw) != len(localLayout) {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(localLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDateTime is the inverse of ParseDateTime: it re-derives the correct
// wire form (floating local, UTC Z-suffixed, or TZID-qualified local) from
// the DateTime's own flags rather than from any separately tracked state.
func FormatDateTime(v model.Value) string {
	dt := v.DateTime
	if dt.IsUTC {
		return dt.Time.UTC().Format(utcLayout)
	}
	return dt.Time.Format(localLayout)
}
