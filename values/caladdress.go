// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package values

import (
	"fmt"
	"net/url"

	"github.com/brennonyork/icalgo/model"
)

// ParseCalAddress decodes a CAL-ADDRESS value (ORGANIZER, ATTENDEE, ...), a
// URI gated by the same security policy as ParseURI.
func ParseCalAddress(raw string, ctx *Context) (model.Value, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return model.Value{}, fmt.Errorf("%w: %v", ErrInvalidCalAddress, err)
	}
	if err := ctx.URI.ValidateURI(raw); err != nil {
		return model.Value{}, err
	}
	return model.Value{Kind: model.KindCalAddress, Raw: raw, URI: u}, nil
}

// FormatCalAddress is the inverse of ParseCalAddress. Per spec.md §9's
// resolved open question: a "mailto:" prefix is added only when the value
// does not already carry a URI scheme (a colon before any character a
// scheme name cannot contain).
func FormatCalAddress(v model.Value) string {
	if v.URI == nil {
		return v.Raw
	}
	s := v.URI.String()
	if hasScheme(s) {
		return s
	}
	return "mailto:" + s
}

// hasScheme reports whether s already begins with a URI scheme: a run of
// scheme characters (letters, digits, +, -, .) followed by ':'.
func hasScheme(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ':':
			return i > 0
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '+', c == '-', c == '.':
			continue
		default:
			return false
		}
	}
	return false
}
