// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package model holds the generic iCalendar object model: the tagged Value
// sum type and a Component/Property tree that is the single source of truth
// for every calendar object. Typed accessors (Event, Todo, Calendar, ...) in
// the rest of this package are thin views computed on demand from the tree,
// never a second, independently-mutated copy of the same data.
package model

import "strings"

// Property is one (name, parameters, value) triple. Name is always
// canonical-uppercase.
type Property struct {
	Name   string
	Params Parameters
	Value  Value
}

// Component is a node in the object tree: an uppercase name, an ordered list
// of properties, and an ordered list of children. There is deliberately no
// parent back-link: the writer emits a TZID-bearing property from its own
// parameters and value, without looking up its VTIMEZONE, so it needs no
// parent context.
type Component struct {
	Name       string
	Properties []Property
	Children   []*Component

	// propIndex maps an upper-cased property name to the index in
	// Properties of its most recently added entry, giving O(1) last-write-wins
	// lookup as spec.md's design notes suggest.
	propIndex map[string]int
}

// NewComponent returns an empty Component named name (upper-cased).
func NewComponent(name string) *Component {
	return &Component{Name: strings.ToUpper(name), propIndex: map[string]int{}}
}

// AddProperty appends prop, making it the last-write-wins entry for its name.
func (c *Component) AddProperty(prop Property) {
	if c.propIndex == nil {
		c.propIndex = map[string]int{}
	}
	prop.Name = strings.ToUpper(prop.Name)
	c.propIndex[prop.Name] = len(c.Properties)
	c.Properties = append(c.Properties, prop)
}

// ReplaceProperty removes every existing entry named prop.Name and appends
// prop as the sole entry for that name, preserving the position of the first
// removed entry (so single-valued setters don't reorder the property list).
func (c *Component) ReplaceProperty(prop Property) {
	prop.Name = strings.ToUpper(prop.Name)
	out := make([]Property, 0, len(c.Properties)+1)
	inserted := false
	for _, p := range c.Properties {
		if p.Name == prop.Name {
			if !inserted {
				out = append(out, prop)
				inserted = true
			}
			continue
		}
		out = append(out, p)
	}
	if !inserted {
		out = append(out, prop)
	}
	c.Properties = out
	c.reindex()
}

// RemoveProperty deletes every property named name.
func (c *Component) RemoveProperty(name string) {
	name = strings.ToUpper(name)
	out := c.Properties[:0:0]
	for _, p := range c.Properties {
		if p.Name != name {
			out = append(out, p)
		}
	}
	c.Properties = out
	c.reindex()
}

func (c *Component) reindex() {
	c.propIndex = make(map[string]int, len(c.Properties))
	for i, p := range c.Properties {
		c.propIndex[p.Name] = i
	}
}

// GetProperty returns the last-write-wins property named name.
func (c *Component) GetProperty(name string) (Property, bool) {
	name = strings.ToUpper(name)
	if c.propIndex == nil {
		return Property{}, false
	}
	idx, ok := c.propIndex[name]
	if !ok {
		return Property{}, false
	}
	return c.Properties[idx], true
}

// GetAllProperties returns every property named name, in insertion order.
func (c *Component) GetAllProperties(name string) []Property {
	name = strings.ToUpper(name)
	var out []Property
	for _, p := range c.Properties {
		if p.Name == name {
			out = append(out, p)
		}
	}
	return out
}

// AddChild appends child to Children.
func (c *Component) AddChild(child *Component) {
	c.Children = append(c.Children, child)
}

// RemoveChild removes every direct child named name.
func (c *Component) RemoveChild(name string) {
	name = strings.ToUpper(name)
	out := c.Children[:0:0]
	for _, ch := range c.Children {
		if ch.Name != name {
			out = append(out, ch)
		}
	}
	c.Children = out
}

// ChildrenNamed returns the direct children named name, in insertion order.
func (c *Component) ChildrenNamed(name string) []*Component {
	name = strings.ToUpper(name)
	var out []*Component
	for _, ch := range c.Children {
		if ch.Name == name {
			out = append(out, ch)
		}
	}
	return out
}

// textOf returns the TEXT/decoded-string form of a last-write-wins property,
// or "" if absent. Shared by every typed view's string accessors.
func (c *Component) textOf(name string) string {
	p, ok := c.GetProperty(name)
	if !ok {
		return ""
	}
	return p.Value.Text
}
