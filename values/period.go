// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package values

import (
	"fmt"
	"strings"

	"github.com/brennonyork/icalgo/model"
)

// ParsePeriod decodes an RFC 5545 §3.3.9 PERIOD value: either
// start/end (both DATE-TIME) or start/duration form.
func ParsePeriod(raw string, ctx *Context) (model.Value, error) {
	startStr, rest, found := strings.Cut(raw, "/")
	if !found {
		return model.Value{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, raw)
	}
	startVal, err := ParseDateTime(startStr, "", ctx)
	if err != nil {
		return model.Value{}, fmt.Errorf("%w: start %v", ErrInvalidPeriod, err)
	}

	if strings.HasPrefix(rest, "P") || strings.HasPrefix(rest, "-P") || strings.HasPrefix(rest, "+P") {
		durVal, err := ParseDuration(rest)
		if err != nil {
			return model.Value{}, fmt.Errorf("%w: duration %v", ErrInvalidPeriod, err)
		}
		d := durVal.Duration
		return model.Value{
			Kind: model.KindPeriod,
			Raw:  raw,
			Period: model.Period{
				Start:      startVal.DateTime.Time,
				AsDuration: &d,
			},
		}, nil
	}

	endVal, err := ParseDateTime(rest, "", ctx)
	if err != nil {
		return model.Value{}, fmt.Errorf("%w: end %v", ErrInvalidPeriod, err)
	}
	return model.Value{
		Kind: model.KindPeriod,
		Raw:  raw,
		Period: model.Period{
			Start: startVal.DateTime.Time,
			End:   endVal.DateTime.Time,
		},
	}, nil
}

// FormatPeriod is the inverse of ParsePeriod. RFC 5545 §3.3.9 requires both
// ends of a PERIOD to be expressed in UTC, so both start and end are always
// written Z-suffixed regardless of how they were constructed.
func FormatPeriod(v model.Value) string {
	p := v.Period
	start := model.Value{Kind: model.KindDateTime, DateTime: model.DateTime{Time: p.Start, IsUTC: true}}
	if p.AsDuration != nil {
		return FormatDateTime(start) + "/" + FormatDuration(model.Value{Duration: *p.AsDuration})
	}
	end := model.Value{Kind: model.KindDateTime, DateTime: model.DateTime{Time: p.End, IsUTC: true}}
	return FormatDateTime(start) + "/" + FormatDateTime(end)
}
