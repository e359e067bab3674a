// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package values

import (
	"strings"

	"github.com/brennonyork/icalgo/model"
	"github.com/brennonyork/icalgo/security"
)

// ParseText decodes an RFC 5545 §3.3.11 TEXT value: \\ -> \, \; -> ;,
// \, -> ,, \n/\N -> LF. The decoded text is additionally run through
// security.SanitizeText per spec.md §4.4.
func ParseText(raw string) model.Value {
	decoded := decodeText(raw)
	decoded = security.SanitizeText(decoded)
	return model.Value{Kind: model.KindText, Raw: raw, Text: decoded}
}

func decodeText(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i == len(raw)-1 {
			b.WriteByte(raw[i])
			continue
		}
		switch raw[i+1] {
		case '\\':
			b.WriteByte('\\')
		case ';':
			b.WriteByte(';')
		case ',':
			b.WriteByte(',')
		case 'n', 'N':
			b.WriteByte('\n')
		default:
			b.WriteByte(raw[i])
			continue
		}
		i++
	}
	return b.String()
}

// FormatText is the inverse of ParseText. Escaping order is required by
// spec.md §4.3: backslash first, then ; and ,, then CRLF/bare-LF -> \n, with
// bare CR dropped — reversing the order would double-escape the backslashes
// introduced by the earlier substitutions.
func FormatText(v model.Value) string {
	s := v.Text
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, ";", `\;`)
	s = strings.ReplaceAll(s, ",", `\,`)
	s = strings.ReplaceAll(s, "\r\n", `\n`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\r", "")
	return s
}
