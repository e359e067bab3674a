// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package values

import (
	"fmt"

	"github.com/brennonyork/icalgo/icaldur"
	"github.com/brennonyork/icalgo/model"
)

// ParseDuration decodes an RFC 5545 §3.3.6 DURATION value via icaldur, then
// decomposes the resulting time.Duration into (sign, days, seconds): the
// sign bit icaldur's bare time.Duration loses at zero, and "7D" deliberately
// is not folded into weeks on decode (week-form is a write-time choice).
func ParseDuration(raw string) (model.Value, error) {
	d, err := icaldur.ParseICalDuration(raw)
	if err != nil {
		return model.Value{}, fmt.Errorf("%w: %v", ErrInvalidDuration, err)
	}
	negative := d < 0 || (d == 0 && len(raw) > 0 && raw[0] == '-')
	if d < 0 {
		d = -d
	}
	totalSeconds := int64(d.Seconds())
	days := int(totalSeconds / 86400)
	seconds := int(totalSeconds % 86400)
	return model.Value{
		Kind: model.KindDuration,
		Raw:  raw,
		Duration: model.Duration{
			Negative: negative,
			Days:     days,
			Seconds:  seconds,
		},
	}, nil
}

// FormatDuration renders a Duration back to RFC 5545 §3.3.6 text: weeks are
// used only when the whole duration is an exact multiple of 7 days with no
// leftover time-of-day component, mirroring common real-world output.
func FormatDuration(v model.Value) string {
	d := v.Duration
	sign := ""
	if d.Negative {
		sign = "-"
	}
	if d.Days > 0 && d.Days%7 == 0 && d.Seconds == 0 {
		return fmt.Sprintf("%sP%dW", sign, d.Days/7)
	}

	s := sign + "P"
	if d.Days > 0 {
		s += fmt.Sprintf("%dD", d.Days)
	}
	h := d.Seconds / 3600
	m := (d.Seconds % 3600) / 60
	sec := d.Seconds % 60
	if h == 0 && m == 0 && sec == 0 {
		if d.Days == 0 {
			return sign + "PT0S"
		}
		return s
	}
	s += "T"
	if h > 0 {
		s += fmt.Sprintf("%dH", h)
	}
	if m > 0 {
		s += fmt.Sprintf("%dM", m)
	}
	if sec > 0 {
		s += fmt.Sprintf("%dS", sec)
	}
	return s
}
