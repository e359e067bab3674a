// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package contentline parses and formats a single unfolded logical line into
// its (name, parameters, value) triple, per RFC 5545 §3.1 and the RFC 6868
// parameter-value escaping it layers on top.
//
// Generalized from a colon-splitting/parameter-splitting approach to produce
// a structured, ordered parameter list with multi-valued KEY=VAL,VAL support
// and RFC 6868 decode/encode instead of a flat []string.
package contentline

import (
	"errors"
	"strings"

	"github.com/brennonyork/icalgo/model"
)

var (
	// ErrInvalidPropertyFormat is returned when a line has no name or no
	// unquoted colon separating params from value.
	ErrInvalidPropertyFormat = errors.New("contentline: invalid property format")
	// ErrUnclosedQuotedString is returned when a quoted parameter value
	// never finds its closing quote.
	ErrUnclosedQuotedString = errors.New("contentline: unclosed quoted string")
	// ErrInvalidCaret is returned in strict mode when a quoted parameter
	// value contains a RFC 6868 caret escape other than ^n, ^^, or ^'.
	ErrInvalidCaret = errors.New("contentline: invalid RFC 6868 caret escape")
)

// Line is one parsed content line.
type Line struct {
	Name   string
	Params model.Parameters
	Value  string
}

// Parse splits one unfolded logical line into (name, parameters, value). In
// strict mode, an invalid RFC 6868 caret escape inside a quoted parameter
// value is an error; in lenient mode the escape passes through unchanged.
func Parse(line string, strict bool) (Line, error) {
	nameEnd := indexNameEnd(line)
	if nameEnd == 0 {
		return Line{}, ErrInvalidPropertyFormat
	}

	name := strings.ToUpper(line[:nameEnd])
	rest := line[nameEnd:]

	var params model.Parameters
	if strings.HasPrefix(rest, ";") {
		paramsEnd, err := findParamsEnd(rest)
		if err != nil {
			return Line{}, err
		}
		paramString := rest[1:paramsEnd]
		params, err = parseParams(paramString, strict)
		if err != nil {
			return Line{}, err
		}
		rest = rest[paramsEnd:]
	}

	if !strings.HasPrefix(rest, ":") {
		return Line{}, ErrInvalidPropertyFormat
	}
	value := rest[1:]

	return Line{Name: name, Params: params, Value: value}, nil
}

// indexNameEnd returns the index of the first ';' or ':' in line, i.e. the
// end of the property name. Returns 0 (invalid) if neither appears before
// any character outside [A-Za-z0-9-].
func indexNameEnd(line string) int {
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == ';' || c == ':' {
			return i
		}
		if !isNameByte(c) {
			return 0
		}
	}
	return 0
}

func isNameByte(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-'
}

// findParamsEnd scans rest (which begins with ';') for the colon that ends
// the parameter block, skipping colons inside quoted strings. Returns the
// index of that colon within rest, or an error if a quote is never closed
// or no unquoted colon is found.
func findParamsEnd(rest string) (int, error) {
	inQuotes := false
	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case '"':
			inQuotes = !inQuotes
		case ':':
			if !inQuotes {
				return i, nil
			}
		}
	}
	if inQuotes {
		return 0, ErrUnclosedQuotedString
	}
	return 0, ErrInvalidPropertyFormat
}

// parseParams splits a `KEY=VAL;KEY=VAL,VAL` parameter block (interior
// of the semicolons, not including the leading ';' or trailing ':') into a
// model.Parameters, applying RFC 6868 decoding to quoted values.
func parseParams(s string, strict bool) (model.Parameters, error) {
	var out model.Parameters
	for _, entry := range splitUnquoted(s, ';') {
		if entry == "" {
			continue
		}
		key, rawVal, hasEq := strings.Cut(entry, "=")
		key = strings.ToUpper(key)
		if !hasEq {
			out = append(out, model.Parameter{Name: key, Values: []string{""}})
			continue
		}
		values, err := parseParamValues(rawVal, strict)
		if err != nil {
			return nil, err
		}
		out = append(out, model.Parameter{Name: key, Values: values})
	}
	return out, nil
}

// parseParamValues splits a parameter's VAL or VAL,VAL,... right-hand side,
// honoring quoted values (which may themselves contain literal ; , :), and
// RFC 6868-decodes each value.
func parseParamValues(s string, strict bool) ([]string, error) {
	var out []string
	for _, v := range splitUnquoted(s, ',') {
		if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
			decoded, err := decode6868(v[1:len(v)-1], strict)
			if err != nil {
				return nil, err
			}
			out = append(out, decoded)
			continue
		}
		if strings.Contains(v, `"`) {
			return nil, ErrUnclosedQuotedString
		}
		out = append(out, v)
	}
	return out, nil
}

// splitUnquoted splits s on sep, treating runs between unescaped double
// quotes as opaque (sep inside quotes is literal).
func splitUnquoted(s string, sep byte) []string {
	var out []string
	var cur strings.Builder
	inQuotes := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			inQuotes = !inQuotes
			cur.WriteByte(c)
		case c == sep && !inQuotes:
			out = append(out, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	out = append(out, cur.String())
	return out
}

// decode6868 applies RFC 6868 caret decoding inside a quoted parameter
// value: ^n -> LF, ^^ -> ^, ^' -> ". Any other ^x is a strict error or a
// lenient passthrough of the two characters unchanged.
func decode6868(s string, strict bool) (string, error) {
	if !strings.Contains(s, "^") {
		return s, nil
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '^' || i == len(s)-1 {
			b.WriteByte(s[i])
			continue
		}
		switch s[i+1] {
		case 'n':
			b.WriteByte('\n')
			i++
		case '^':
			b.WriteByte('^')
			i++
		case '\'':
			b.WriteByte('"')
			i++
		default:
			if strict {
				return "", ErrInvalidCaret
			}
			b.WriteByte('^')
		}
	}
	return b.String(), nil
}

// encode6868 applies RFC 6868 caret encoding to a parameter value destined
// for a quoted slot: ^ -> ^^, " -> ^', LF -> ^n. Order matters: caret first,
// so the escapes introduced by the other two substitutions are not
// themselves re-escaped.
func encode6868(s string) string {
	s = strings.ReplaceAll(s, "^", "^^")
	s = strings.ReplaceAll(s, `"`, "^'")
	s = strings.ReplaceAll(s, "\n", "^n")
	return s
}

// needsQuoting reports whether a parameter value must be wrapped in quotes
// on write: it contains any of ; , : or a caret/newline that RFC 6868 would
// otherwise mangle unquoted.
func needsQuoting(s string) bool {
	return strings.ContainsAny(s, ";,:\"^\n")
}

// Format is the inverse of Parse: it renders (name, parameters, value) back
// into one unfolded logical line, quoting and RFC 6868-encoding parameter
// values as needed.
func Format(l Line) string {
	var b strings.Builder
	b.WriteString(l.Name)
	for _, p := range l.Params {
		b.WriteByte(';')
		b.WriteString(p.Name)
		b.WriteByte('=')
		for i, v := range p.Values {
			if i > 0 {
				b.WriteByte(',')
			}
			if needsQuoting(v) {
				b.WriteByte('"')
				b.WriteString(encode6868(v))
				b.WriteByte('"')
			} else {
				b.WriteString(v)
			}
		}
	}
	b.WriteByte(':')
	b.WriteString(l.Value)
	return b.String()
}
