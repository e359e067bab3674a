// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package write is the inverse of parse: ObjectModel -> ValueCodec ->
// ContentLineParser.format -> LineCodec.fold -> bytes. Built from spec.md
// §6's "Wire format" paragraph and the fold/unfold round-trip property the
// linefold package already guarantees.
package write

import (
	"bytes"

	"github.com/brennonyork/icalgo/contentline"
	"github.com/brennonyork/icalgo/linefold"
	"github.com/brennonyork/icalgo/model"
	"github.com/brennonyork/icalgo/values"
)

// Calendar serializes cal to RFC 5545 text: CRLF line endings, each content
// line folded at 75 octets.
func Calendar(cal *model.Calendar) []byte {
	return Component(cal.Component)
}

// Component serializes c and its full subtree as a sequence of BEGIN/END
// blocks, in the same order the tree holds them.
func Component(c *model.Component) []byte {
	var buf bytes.Buffer
	writeComponent(&buf, c)
	return buf.Bytes()
}

func writeComponent(buf *bytes.Buffer, c *model.Component) {
	writeLine(buf, "BEGIN:"+c.Name)
	for _, p := range c.Properties {
		writeLine(buf, contentline.Format(contentline.Line{
			Name:   p.Name,
			Params: p.Params,
			Value:  values.Format(p.Value),
		}))
	}
	for _, child := range c.Children {
		writeComponent(buf, child)
	}
	writeLine(buf, "END:"+c.Name)
}

func writeLine(buf *bytes.Buffer, logical string) {
	buf.Write(linefold.Fold(logical))
	buf.WriteString("\r\n")
}
