// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package values is the ValueCodec: a dispatch table, keyed by
// model.ValueKind, of (parse, format) pairs for every RFC 5545 §3.3 value
// kind. Strict mode rejects any input outside the grammar a kind's RFC
// section defines; lenient mode falls back to a best-effort parse and
// reports the fallback through Context.Warn.
//
// Generalized from a "one setter per Go field type" pattern to "one codec
// per RFC 5545 value kind," and on icaldur for DURATION specifically.
package values

import (
	"time"

	"github.com/brennonyork/icalgo/security"
)

// Context carries per-parse configuration and side channels a codec needs:
// strictness, the URI security policy, a TZID-to-Location resolver, and a
// warning sink for lenient-mode fallbacks.
type Context struct {
	Strict bool
	URI    security.Policy

	// ResolveTZID maps a TZID parameter to a time.Location. Returns
	// (loc, false) for an unknown TZID; the caller then falls back to a
	// naive local interpretation per spec.md §9's timezone design note.
	ResolveTZID func(tzid string) (*time.Location, bool)

	// Warn records a lenient-mode recoverable parse issue. May be nil, in
	// which case warnings are silently dropped.
	Warn func(code, message string)
}

func (c *Context) warn(code, message string) {
	if c != nil && c.Warn != nil {
		c.Warn(code, message)
	}
}

func (c *Context) resolveTZID(tzid string) (*time.Location, bool) {
	if c == nil || c.ResolveTZID == nil {
		return nil, false
	}
	return c.ResolveTZID(tzid)
}

func (c *Context) strict() bool { return c != nil && c.Strict }
