// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package values

import (
	"encoding/base64"
	"fmt"

	"github.com/brennonyork/icalgo/model"
)

// ParseBinary decodes a base64 BINARY value.
func ParseBinary(raw string) (model.Value, error) {
	b, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return model.Value{}, fmt.Errorf("%w: %v", ErrInvalidBinary, err)
	}
	return model.Value{Kind: model.KindBinary, Raw: raw, Binary: b}, nil
}

// FormatBinary is the inverse of ParseBinary.
func FormatBinary(v model.Value) string {
	return base64.StdEncoding.EncodeToString(v.Binary)
}
