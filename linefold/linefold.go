// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package linefold implements RFC 5545 §3.1 content-line folding and
// unfolding: physical lines capped at 75 octets, continued with a single
// leading SPACE, never splitting a UTF-8 sequence across the fold.
package linefold

import (
	"bytes"
	"errors"
	"unicode/utf8"
)

// ErrMalformedFolding is returned by Unfold when the very first physical
// line is itself a continuation (begins with SPACE or TAB), which has no
// preceding content line to join.
var ErrMalformedFolding = errors.New("linefold: malformed line folding")

// foldLimit is the maximum octet length of one physical line, per RFC 5545
// §3.1. The continuation SPACE counts as the first octet of its line.
const foldLimit = 75

// OctetLen returns the UTF-8 byte length of s. A Go string is already a byte
// sequence, so this is exactly len(s); no decoding is needed.
func OctetLen(s string) int { return len(s) }

// Unfold normalizes line endings (bare CR, bare LF, and CRLF all count as one
// break) and joins every continuation line (one beginning with SPACE or TAB)
// back onto its preceding logical line, stripping the single leading
// whitespace octet that marks the continuation.
func Unfold(data []byte) ([]string, error) {
	physical := splitPhysicalLines(data)
	logical := make([]string, 0, len(physical))
	for _, line := range physical {
		if len(line) > 0 && (line[0] == ' ' || line[0] == '\t') {
			if len(logical) == 0 {
				return nil, ErrMalformedFolding
			}
			logical[len(logical)-1] += line[1:]
			continue
		}
		logical = append(logical, line)
	}
	return logical, nil
}

// splitPhysicalLines splits data on any of CR, LF, or CRLF, treating each as
// a single line break.
func splitPhysicalLines(data []byte) []string {
	var lines []string
	start := 0
	n := len(data)
	for i := 0; i < n; i++ {
		switch data[i] {
		case '\r':
			lines = append(lines, string(data[start:i]))
			if i+1 < n && data[i+1] == '\n' {
				i++
			}
			start = i + 1
		case '\n':
			lines = append(lines, string(data[start:i]))
			start = i + 1
		}
	}
	if start < n {
		lines = append(lines, string(data[start:n]))
	}
	return lines
}

// Fold emits logical as CRLF-broken physical lines, each at most 75 octets,
// continuation lines beginning with a single SPACE. It never splits a UTF-8
// multi-byte sequence across a fold boundary. The caller is responsible for
// the line's own terminating CRLF; Fold only inserts the interior breaks.
func Fold(logical string) []byte {
	var buf bytes.Buffer
	count := 0
	for _, r := range logical {
		rl := utf8.RuneLen(r)
		if count+rl > foldLimit {
			buf.WriteString("\r\n ")
			count = 1
		}
		buf.WriteRune(r)
		count += rl
	}
	return buf.Bytes()
}
