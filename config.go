// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package ical

import (
	"github.com/brennonyork/icalgo/parse"
	"github.com/brennonyork/icalgo/security"
)

// Config is the facade's flattened view of spec.md §6's enumerated parser
// settings: strictness, nesting depth, and the URI policy's scheme
// allow-list and data: URI size cap.
type Config struct {
	// Strict turns recoverable violations into errors instead of warnings.
	Strict bool
	// MaxDepth caps component nesting depth. Zero means the default of 100.
	MaxDepth int
	// AllowedSchemes is the URI scheme allow-list. Nil means
	// security.DefaultAllowedSchemes.
	AllowedSchemes map[string]bool
	// MaxDataURISize caps a data: URI's decoded payload size in bytes. Zero
	// means security.DefaultMaxDataURISize.
	MaxDataURISize int
}

// DefaultConfig returns the spec.md §6 defaults: lenient parsing, depth 100,
// the default URI policy.
func DefaultConfig() Config {
	return Config{Strict: false, MaxDepth: 100}
}

func (c Config) toParseConfig() parse.Config {
	return parse.Config{
		Strict:   c.Strict,
		MaxDepth: c.MaxDepth,
		URI: security.Policy{
			AllowedSchemes: c.AllowedSchemes,
			MaxDataURISize: c.MaxDataURISize,
		},
	}
}
