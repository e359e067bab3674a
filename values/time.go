// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package values

import (
	"fmt"
	"time"

	"github.com/brennonyork/icalgo/model"
)

// ParseTime decodes a TIME value: HHMMSS, optionally Z-suffixed for UTC.
func ParseTime(raw string) (model.Value, error) {
	isUTC := false
	digits := raw
	if len(raw) == 7 && raw[6] == 'Z' {
		isUTC = true
		digits = raw[:6]
	}
	t, err := time.ParseInLocation("150405", digits, time.UTC)
	if err != nil {
		return model.Value{}, fmt.Errorf("%w: %q", ErrInvalidTime, raw)
	}
	return model.Value{
		Kind:     model.KindTime,
		Raw:      raw,
		DateTime: model.DateTime{Time: t, IsUTC: isUTC},
	}, nil
}

// FormatTime is the inverse of ParseTime.
func FormatTime(v model.Value) string {
	s := v.DateTime.Time.Format("150405")
	if v.DateTime.IsUTC {
		s += "Z"
	}
	return s
}
