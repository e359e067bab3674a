// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package jcal encodes a model.Component tree as jCal, the RFC 7265 JSON
// subset spec.md §6 requires: a component is
// [name_lowercase, [[prop_name_lc, params_object_lc, type_lc, value], ...], [child, ...]].
// Built from the jCal paragraph in RFC 5545's companion JSON mapping,
// using encoding/json's standard marshal-by-Go-value idiom.
package jcal

import (
	"encoding/json"
	"strings"

	"github.com/brennonyork/icalgo/model"
	"github.com/brennonyork/icalgo/values"
)

// Marshal encodes c as a jCal JSON document.
func Marshal(c *model.Component) ([]byte, error) {
	return json.Marshal(encodeComponent(c))
}

// encodeComponent builds the three-element jCal array for c: lower-cased
// name, its properties, and its children (encoded the same way,
// recursively).
func encodeComponent(c *model.Component) []any {
	props := make([][]any, 0, len(c.Properties))
	for _, p := range c.Properties {
		props = append(props, encodeProperty(p))
	}
	children := make([]any, 0, len(c.Children))
	for _, child := range c.Children {
		children = append(children, encodeComponent(child))
	}
	return []any{strings.ToLower(c.Name), props, children}
}

// encodeProperty builds one jCal property array:
// [name_lc, params_object_lc, type_lc, value].
func encodeProperty(p model.Property) []any {
	params := make(map[string]any, len(p.Params))
	for _, param := range p.Params {
		key := strings.ToLower(param.Name)
		if len(param.Values) == 1 {
			params[key] = param.Values[0]
		} else {
			params[key] = param.Values
		}
	}
	return []any{
		strings.ToLower(p.Name),
		params,
		strings.ToLower(string(p.Value.Kind)),
		jsonValue(p.Value),
	}
}

// jsonValue picks the JSON-native representation of v: numbers for
// INTEGER/FLOAT, bool for BOOLEAN, the formatted wire string otherwise.
func jsonValue(v model.Value) any {
	switch v.Kind {
	case model.KindInteger:
		return v.Int
	case model.KindFloat:
		return v.Float
	case model.KindBoolean:
		return v.Bool
	default:
		return values.Format(v)
	}
}
