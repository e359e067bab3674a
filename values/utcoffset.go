// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package values

import (
	"fmt"
	"strconv"

	"github.com/brennonyork/icalgo/model"
)

// ParseUTCOffset decodes a ±HHMM[SS] UTC-OFFSET value into signed seconds.
// Strict mode rejects hours > 23, minutes > 59, or seconds > 59.
func ParseUTCOffset(raw string, ctx *Context) (model.Value, error) {
	if len(raw) != 5 && len(raw) != 7 {
		return model.Value{}, fmt.Errorf("%w: %q", ErrInvalidUTCOffset, raw)
	}
	sign := 1
	switch raw[0] {
	case '+':
	case '-':
		sign = -1
	default:
		return model.Value{}, fmt.Errorf("%w: %q", ErrInvalidUTCOffset, raw)
	}
	h, err1 := strconv.Atoi(raw[1:3])
	m, err2 := strconv.Atoi(raw[3:5])
	s := 0
	var err3 error
	if len(raw) == 7 {
		s, err3 = strconv.Atoi(raw[5:7])
	}
	if err1 != nil || err2 != nil || err3 != nil {
		return model.Value{}, fmt.Errorf("%w: %q", ErrInvalidUTCOffset, raw)
	}
	if ctx.strict() && (h > 23 || m > 59 || s > 59) {
		return model.Value{}, fmt.Errorf("%w: %q out of range", ErrInvalidUTCOffset, raw)
	}
	seconds := sign * (h*3600 + m*60 + s)
	return model.Value{
		Kind:             model.KindUTCOffset,
		Raw:              raw,
		UTCOffsetSeconds: seconds,
	}, nil
}

// FormatUTCOffset is the inverse of ParseUTCOffset.
func FormatUTCOffset(v model.Value) string {
	s := v.UTCOffsetSeconds
	sign := "+"
	if s < 0 {
		sign = "-"
		s = -s
	}
	h := s / 3600
	m := (s % 3600) / 60
	sec := s % 60
	if sec != 0 {
		return fmt.Sprintf("%s%02d%02d%02d", sign, h, m, sec)
	}
	return fmt.Sprintf("%s%02d%02d", sign, h, m)
}
