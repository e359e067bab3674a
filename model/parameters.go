// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import "strings"

// Parameter is one KEY=VAL(,VAL...) entry from a content line. Values are
// kept in the order they were parsed; most parameters carry exactly one.
type Parameter struct {
	Name   string
	Values []string
}

// FirstValue returns the parameter's first value, or "" if it has none.
func (p Parameter) FirstValue() string {
	if len(p.Values) == 0 {
		return ""
	}
	return p.Values[0]
}

// Parameters is an ordered list of Parameter, case-insensitive by Name.
// Duplicate names are permitted on read (RFC 5545 does not forbid them for
// every parameter) but Set replaces the first match and drops the rest.
type Parameters []Parameter

// Get returns the parameter named name (case-insensitive), if present.
func (ps Parameters) Get(name string) (Parameter, bool) {
	name = strings.ToUpper(name)
	for _, p := range ps {
		if p.Name == name {
			return p, true
		}
	}
	return Parameter{}, false
}

// GetFirst returns the first value of the parameter named name, or "".
func (ps Parameters) GetFirst(name string) string {
	p, ok := ps.Get(name)
	if !ok {
		return ""
	}
	return p.FirstValue()
}

// Set replaces every existing entry named name with a single entry carrying
// values, or appends one if none existed.
func (ps *Parameters) Set(name string, values ...string) {
	name = strings.ToUpper(name)
	out := make(Parameters, 0, len(*ps)+1)
	replaced := false
	for _, p := range *ps {
		if p.Name == name {
			if !replaced {
				out = append(out, Parameter{Name: name, Values: values})
				replaced = true
			}
			continue
		}
		out = append(out, p)
	}
	if !replaced {
		out = append(out, Parameter{Name: name, Values: values})
	}
	*ps = out
}

// Add appends a new parameter entry named name without removing existing
// entries of the same name (used for parameters RFC 5545 allows to repeat).
func (ps *Parameters) Add(name string, values ...string) {
	*ps = append(*ps, Parameter{Name: strings.ToUpper(name), Values: values})
}
