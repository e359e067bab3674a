// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package values

import (
	"fmt"
	"strconv"
	"time"

	"github.com/brennonyork/icalgo/model"
)

// ParseDate decodes a DATE value (YYYYMMDD), validated against the
// Gregorian calendar: "20240230" is rejected because February has no 30th.
func ParseDate(raw string, ctx *Context) (model.Value, error) {
	t, ok := parseDateDigits(raw)
	if !ok {
		return model.Value{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return model.Value{
		Kind:     model.KindDate,
		Raw:      raw,
		DateTime: model.DateTime{Time: t, IsDate: true},
	}, nil
}

// parseDateDigits parses exactly 8 digits as YYYYMMDD, rejecting any
// calendar date that time.Date would silently normalize (e.g. day 30 in
// February).
func parseDateDigits(raw string) (time.Time, bool) {
	if len(raw) != 8 {
		return time.Time{}, false
	}
	y, err1 := strconv.Atoi(raw[0:4])
	m, err2 := strconv.Atoi(raw[4:6])
	d, err3 := strconv.Atoi(raw[6:8])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return time.Time{}, false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	ny, nm, nd := t.Date()
	if ny != y || int(nm) != m || nd != d {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate is the inverse of ParseDate.
func FormatDate(v model.Value) string {
	return v.DateTime.Time.Format("20060102")
}
