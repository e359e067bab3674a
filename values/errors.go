// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package values

import "errors"

var (
	// ErrTypeDeclarationMismatch is raised by ResolveKind in strict mode when
	// a VALUE= parameter names no known value kind.
	ErrTypeDeclarationMismatch = errors.New("values: TypeDeclarationMismatch")

	ErrInvalidDate       = errors.New("values: invalid DATE")
	ErrInvalidDateTime   = errors.New("values: invalid DATE-TIME")
	ErrInvalidTime       = errors.New("values: invalid TIME")
	ErrInvalidDuration   = errors.New("values: invalid DURATION")
	ErrInvalidPeriod     = errors.New("values: invalid PERIOD")
	ErrInvalidUTCOffset  = errors.New("values: invalid UTC-OFFSET")
	ErrInvalidBinary     = errors.New("values: invalid BINARY")
	ErrInvalidBoolean    = errors.New("values: invalid BOOLEAN")
	ErrInvalidInteger    = errors.New("values: invalid INTEGER")
	ErrInvalidFloat      = errors.New("values: invalid FLOAT")
	ErrInvalidURI        = errors.New("values: invalid URI")
	ErrInvalidCalAddress = errors.New("values: invalid CAL-ADDRESS")
	ErrUnknownKind       = errors.New("values: unknown value kind")
)
