// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package values

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/brennonyork/icalgo/model"
)

// ParseBoolean decodes a BOOLEAN value: TRUE or FALSE, case-insensitively.
func ParseBoolean(raw string) (model.Value, error) {
	switch strings.ToUpper(raw) {
	case "TRUE":
		return model.Value{Kind: model.KindBoolean, Raw: raw, Bool: true}, nil
	case "FALSE":
		return model.Value{Kind: model.KindBoolean, Raw: raw, Bool: false}, nil
	}
	return model.Value{}, fmt.Errorf("%w: %q", ErrInvalidBoolean, raw)
}

// FormatBoolean is the inverse of ParseBoolean.
func FormatBoolean(v model.Value) string {
	if v.Bool {
		return "TRUE"
	}
	return "FALSE"
}

// ParseInteger decodes an INTEGER value.
func ParseInteger(raw string) (model.Value, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return model.Value{}, fmt.Errorf("%w: %q", ErrInvalidInteger, raw)
	}
	return model.Value{Kind: model.KindInteger, Raw: raw, Int: n}, nil
}

// FormatInteger is the inverse of ParseInteger.
func FormatInteger(v model.Value) string {
	return strconv.FormatInt(v.Int, 10)
}

// ParseFloat decodes a FLOAT value.
func ParseFloat(raw string) (model.Value, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return model.Value{}, fmt.Errorf("%w: %q", ErrInvalidFloat, raw)
	}
	return model.Value{Kind: model.KindFloat, Raw: raw, Float: f}, nil
}

// FormatFloat is the inverse of ParseFloat.
func FormatFloat(v model.Value) string {
	return strconv.FormatFloat(v.Float, 'f', -1, 64)
}
