// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package values

import (
	"fmt"

	"github.com/brennonyork/icalgo/model"
)

// DefaultKinds maps a property name to the value kind it carries absent an
// explicit VALUE= parameter, per RFC 5545 §3.8.
var DefaultKinds = map[string]model.ValueKind{
	"DTSTART": model.KindDateTime, "DTEND": model.KindDateTime, "DUE": model.KindDateTime,
	"RECURRENCE-ID": model.KindDateTime, "EXDATE": model.KindDateTime, "RDATE": model.KindDateTime,
	"DTSTAMP": model.KindDateTime, "CREATED": model.KindDateTime, "LAST-MODIFIED": model.KindDateTime,
	"COMPLETED": model.KindDateTime,
	"DURATION":  model.KindDuration,
	"FREEBUSY":  model.KindPeriod,
	"TZOFFSETFROM": model.KindUTCOffset, "TZOFFSETTO": model.KindUTCOffset,
	"RRULE": model.KindRecur, "EXRULE": model.KindRecur,
	"ORGANIZER": model.KindCalAddress, "ATTENDEE": model.KindCalAddress,
	"URL": model.KindURI, "TZURL": model.KindURI, "ATTACH": model.KindURI,
	"PERCENT-COMPLETE": model.KindInteger, "PRIORITY": model.KindInteger, "SEQUENCE": model.KindInteger, "REPEAT": model.KindInteger,
	"GEO": model.KindText,
}

// kindFromName maps an RFC 5545 VALUE= parameter string to a ValueKind.
var kindFromName = map[string]model.ValueKind{
	"DATE": model.KindDate, "DATE-TIME": model.KindDateTime, "TIME": model.KindTime,
	"DURATION": model.KindDuration, "PERIOD": model.KindPeriod, "UTC-OFFSET": model.KindUTCOffset,
	"TEXT": model.KindText, "BINARY": model.KindBinary, "BOOLEAN": model.KindBoolean,
	"INTEGER": model.KindInteger, "FLOAT": model.KindFloat, "URI": model.KindURI,
	"CAL-ADDRESS": model.KindCalAddress, "RECUR": model.KindRecur,
}

// ResolveKind determines the effective kind for a property: the kind its
// VALUE= parameter names, used as declared, else the property's own default
// kind, else TEXT. A VALUE= naming no known kind is an error in strict mode
// and a warning plus the default kind in lenient mode.
func ResolveKind(propertyName string, params model.Parameters, ctx *Context) (model.ValueKind, error) {
	def, hasDefault := DefaultKinds[propertyName]
	if !hasDefault {
		def = model.KindText
	}
	declared := params.GetFirst("VALUE")
	if declared == "" {
		return def, nil
	}
	kind, ok := kindFromName[declared]
	if !ok {
		if ctx.strict() {
			return "", fmt.Errorf("%w: unrecognized VALUE=%s", ErrTypeDeclarationMismatch, declared)
		}
		ctx.warn("ICAL-TYPE-001", fmt.Sprintf("unrecognized VALUE=%s, falling back to default kind", declared))
		return def, nil
	}
	return kind, nil
}

// Parse decodes raw as kind, dispatching to the per-kind codec. The TZID
// parameter (relevant only to DATE-TIME) is read out of params.
func Parse(kind model.ValueKind, raw string, params model.Parameters, ctx *Context) (model.Value, error) {
	switch kind {
	case model.KindDate:
		return ParseDate(raw, ctx)
	case model.KindDateTime:
		return ParseDateTime(raw, params.GetFirst("TZID"), ctx)
	case model.KindTime:
		return ParseTime(raw)
	case model.KindDuration:
		return ParseDuration(raw)
	case model.KindPeriod:
		return ParsePeriod(raw, ctx)
	case model.KindUTCOffset:
		return ParseUTCOffset(raw, ctx)
	case model.KindBinary:
		return ParseBinary(raw)
	case model.KindBoolean:
		return ParseBoolean(raw)
	case model.KindInteger:
		return ParseInteger(raw)
	case model.KindFloat:
		return ParseFloat(raw)
	case model.KindURI:
		return ParseURI(raw, ctx)
	case model.KindCalAddress:
		return ParseCalAddress(raw, ctx)
	case model.KindRecur:
		return ParseRecur(raw)
	case model.KindText:
		return ParseText(raw), nil
	default:
		return model.Value{}, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
}

// Format renders v back to its wire text form, dispatching on v.Kind.
func Format(v model.Value) string {
	switch v.Kind {
	case model.KindDate:
		return FormatDate(v)
	case model.KindDateTime:
		return FormatDateTime(v)
	case model.KindTime:
		return FormatTime(v)
	case model.KindDuration:
		return FormatDuration(v)
	case model.KindPeriod:
		return FormatPeriod(v)
	case model.KindUTCOffset:
		return FormatUTCOffset(v)
	case model.KindBinary:
		return FormatBinary(v)
	case model.KindBoolean:
		return FormatBoolean(v)
	case model.KindInteger:
		return FormatInteger(v)
	case model.KindFloat:
		return FormatFloat(v)
	case model.KindURI:
		return FormatURI(v)
	case model.KindCalAddress:
		return FormatCalAddress(v)
	case model.KindRecur:
		return FormatRecur(v)
	case model.KindText:
		return FormatText(v)
	default:
		return v.Raw
	}
}
