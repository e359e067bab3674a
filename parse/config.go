// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package parse

import "github.com/brennonyork/icalgo/security"

// Config is the parser's enumerated configuration, per spec.md §6.
type Config struct {
	// Strict turns recoverable violations into errors instead of warnings.
	Strict bool
	// MaxDepth caps component nesting depth. Zero means DefaultConfig's 100.
	MaxDepth int
	// URI is the scheme/host/size policy applied to URI and CAL-ADDRESS
	// values. Zero value means security.DefaultPolicy().
	URI security.Policy
}

// DefaultConfig returns the spec.md §6 defaults: lenient parsing, depth 100,
// the default URI policy.
func DefaultConfig() Config {
	return Config{Strict: false, MaxDepth: 100, URI: security.DefaultPolicy()}
}

func (c Config) maxDepth() int {
	if c.MaxDepth <= 0 {
		return 100
	}
	return c.MaxDepth
}

// uriPolicy returns c.URI unchanged: security.Policy applies its own default
// to a nil AllowedSchemes and to a zero MaxDataURISize, each independently.
func (c Config) uriPolicy() security.Policy {
	return c.URI
}
