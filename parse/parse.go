// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package parse assembles a model.Component tree from RFC 5545 text: unfold
// via linefold, split each logical line via contentline, decode each value
// via the values ValueCodec, and track BEGIN/END nesting under a
// security.DepthGuard. Generalized from a flat "one bool tracking one
// VEVENT" state machine to an explicit component stack, so any depth of
// nested BEGIN/END — VALARM inside VEVENT, STANDARD/DAYLIGHT inside
// VTIMEZONE, PARTICIPANT inside VEVENT — assembles the same way.
package parse

import (
	"errors"
	"strings"
	"time"

	"github.com/brennonyork/icalgo/contentline"
	"github.com/brennonyork/icalgo/model"
	"github.com/brennonyork/icalgo/security"
	"github.com/brennonyork/icalgo/values"
	"github.com/brennonyork/icalgo/linefold"
)

// Warning is a recoverable issue noticed during a lenient parse, carrying
// the content-line number and raw text per spec.md §7.
type Warning struct {
	Code    string
	Message string
	Line    int
	Raw     string
}

// Result is the outcome of a successful parse: the root component (normally
// a VCALENDAR) plus any warnings collected in lenient mode.
type Result struct {
	Root     *model.Component
	Warnings []Warning
}

// multiValuedProperties carry a comma-separated list of otherwise
// independent values on one content line (RFC 5545 §3.8.5.1/§3.8.5.2); each
// item becomes its own model.Property so that accessors like
// Event.ExceptionDates can treat "one property per instant" uniformly.
var multiValuedProperties = map[string]bool{
	model.PropExDate: true,
	model.PropRDate:  true,
}

// Calendar parses input and casts its root component to *model.Calendar.
// Returns an error if the root is not a VCALENDAR.
func Calendar(input string, cfg Config) (*model.Calendar, []Warning, error) {
	res, err := String(input, cfg)
	if err != nil {
		return nil, nil, err
	}
	if res.Root.Name != string(model.SectionVCalendar) {
		return nil, nil, newError("ICAL-PARSE-006", 0, "", ErrNoRootComponent)
	}
	return model.AsCalendar(res.Root), res.Warnings, nil
}

// String parses an in-memory iCalendar document. cfg.Strict controls
// whether recoverable violations (unknown VALUE=, a value its kind cannot
// decode, a malformed fallback DATE-TIME) raise an error or a Warning. An
// unresolvable TZID yields a Warning in both modes, and a URI policy
// violation is an error in both modes.
func String(input string, cfg Config) (*Result, error) {
	return parse([]byte(input), cfg)
}

// File reads path into memory, runs the XXE check required for file-backed
// input per spec.md §6, then parses it the same way as String.
func File(path string, cfg Config) (*Result, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if err := security.CheckXXE(data); err != nil {
		return nil, err
	}
	return parse(data, cfg)
}

func parse(data []byte, cfg Config) (*Result, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, ErrEmptyInput
	}
	if err := security.CheckXXE(data); err != nil {
		return nil, err
	}

	lines, err := linefold.Unfold(data)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	var curLine int
	var curRaw string
	vctx := &values.Context{
		Strict:      cfg.Strict,
		URI:         cfg.uriPolicy(),
		ResolveTZID: resolveTZID,
		Warn: func(code, message string) {
			result.Warnings = append(result.Warnings, Warning{Code: code, Message: message, Line: curLine, Raw: curRaw})
		},
	}

	guard := security.NewDepthGuard(cfg.maxDepth())
	var stack []*model.Component
	var root *model.Component

	for i, raw := range lines {
		lineNo := i + 1
		curLine, curRaw = lineNo, raw
		line := strings.TrimRight(raw, " \t")
		if line == "" {
			continue
		}

		if name, ok := cutSection(line, "BEGIN:"); ok {
			if err := guard.Push(); err != nil {
				return nil, newError("ICAL-SEC-001", lineNo, raw, err)
			}
			c := model.NewComponent(name)
			if len(stack) > 0 {
				stack[len(stack)-1].AddChild(c)
			} else {
				root = c
			}
			stack = append(stack, c)
			continue
		}

		if name, ok := cutSection(line, "END:"); ok {
			if len(stack) == 0 {
				return nil, newError("ICAL-PARSE-003", lineNo, raw, ErrUnmatchedEnd)
			}
			top := stack[len(stack)-1]
			if !strings.EqualFold(top.Name, name) {
				return nil, newError("ICAL-PARSE-004", lineNo, raw, ErrMismatchedEnd)
			}
			guard.Pop()
			stack = stack[:len(stack)-1]
			continue
		}

		if len(stack) == 0 {
			if cfg.Strict {
				return nil, newError("ICAL-PARSE-005", lineNo, raw, ErrPropertyOutsideComponent)
			}
			continue
		}

		cl, err := contentline.Parse(line, cfg.Strict)
		if err != nil {
			return nil, newError("ICAL-PARSE-001", lineNo, raw, err)
		}

		if err := addProperty(stack[len(stack)-1], cl, vctx, cfg); err != nil {
			return nil, newError("ICAL-TYPE-001", lineNo, raw, err)
		}
	}

	if len(stack) != 0 {
		return nil, ErrUnterminatedComponent
	}
	if root == nil {
		return nil, ErrNoRootComponent
	}

	result.Root = root
	return result, nil
}

// cutSection reports whether line begins with prefix ("BEGIN:"/"END:") and
// returns the upper-cased section name that follows.
func cutSection(line, prefix string) (string, bool) {
	if len(line) <= len(prefix) || !strings.EqualFold(line[:len(prefix)], prefix) {
		return "", false
	}
	return strings.ToUpper(strings.TrimSpace(line[len(prefix):])), true
}

// addProperty resolves cl's value kind, decodes it (splitting multi-valued
// properties into one model.Property per item), and appends the result(s)
// to c.
func addProperty(c *model.Component, cl contentline.Line, vctx *values.Context, cfg Config) error {
	kind, err := values.ResolveKind(cl.Name, cl.Params, vctx)
	if err != nil {
		if cfg.Strict {
			return err
		}
		kind = values.DefaultKinds[cl.Name]
		if kind == "" {
			kind = model.KindText
		}
	}

	if multiValuedProperties[cl.Name] {
		for _, item := range strings.Split(cl.Value, ",") {
			v, err := values.Parse(kind, item, cl.Params, vctx)
			if err != nil {
				if cfg.Strict {
					return err
				}
				vctx.Warn("ICAL-TYPE-002", err.Error())
				continue
			}
			c.AddProperty(model.Property{Name: cl.Name, Params: cl.Params, Value: v})
		}
		return nil
	}

	v, err := values.Parse(kind, cl.Value, cl.Params, vctx)
	if err != nil {
		if cfg.Strict || errors.Is(err, security.ErrInvalidScheme) ||
			errors.Is(err, security.ErrPrivateIP) || errors.Is(err, security.ErrDataURITooLarge) {
			return err
		}
		vctx.Warn("ICAL-TYPE-002", err.Error())
		v = model.Value{Kind: model.KindText, Raw: cl.Value, Text: cl.Value}
	}
	c.AddProperty(model.Property{Name: cl.Name, Params: cl.Params, Value: v})
	return nil
}

// resolveTZID resolves a TZID parameter against the IANA tzdata the Go
// runtime ships with. A VTIMEZONE embedded in the calendar itself is a
// transition table, not a usable time.Location (spec.md §9's timezone
// design note), so this is the only resolution path the parser offers;
// an unresolvable TZID falls back to a floating local interpretation.
func resolveTZID(tzid string) (*time.Location, bool) {
	loc, err := time.LoadLocation(tzid)
	if err != nil {
		return nil, false
	}
	return loc, true
}
