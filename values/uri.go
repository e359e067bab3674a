// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package values

import (
	"fmt"
	"net/url"

	"github.com/brennonyork/icalgo/model"
)

// ParseURI decodes a URI value, gated by the Context's security.Policy per
// spec.md §4.4 (scheme allow-list, private-IP rejection, data: size cap).
func ParseURI(raw string, ctx *Context) (model.Value, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return model.Value{}, fmt.Errorf("%w: %v", ErrInvalidURI, err)
	}
	if err := ctx.URI.ValidateURI(raw); err != nil {
		return model.Value{}, err
	}
	return model.Value{Kind: model.KindURI, Raw: raw, URI: u}, nil
}

// FormatURI is the inverse of ParseURI.
func FormatURI(v model.Value) string {
	if v.URI == nil {
		return v.Raw
	}
	return v.URI.String()
}
