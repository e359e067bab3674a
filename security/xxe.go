// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package security

import (
	"bytes"
	"errors"
)

// ErrXXEAttempt is returned by CheckXXE when the raw bytes contain an XML
// entity declaration, which has no legitimate place in an iCalendar stream.
var ErrXXEAttempt = errors.New("security: XxeAttempt")

// xxeMarker is the literal RFC 5545 has no use for; its presence is treated
// as an attempted XXE injection regardless of surrounding structure.
var xxeMarker = []byte("<!ENTITY")

// CheckXXE aborts file-backed parses before they reach the line codec if
// the raw bytes contain an XML entity declaration anywhere.
func CheckXXE(data []byte) error {
	if bytes.Contains(data, xxeMarker) {
		return ErrXXEAttempt
	}
	return nil
}
