// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import "net/url"

// Organizer represents an ORGANIZER property, used in VEVENT, VTODO,
// VJOURNAL, and VFREEBUSY.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.3
type Organizer struct {
	CommonName string
	CalAddress *url.URL
	Directory  string
}

// Attendee represents a single ATTENDEE property value plus its parameters.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.1
type Attendee struct {
	CalAddress *url.URL
	CommonName string
	Role       string
	PartStat   string
	RSVP       bool
}

// GeoPosition is a decoded GEO property: WGS84 latitude/longitude.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.6
type GeoPosition struct {
	Latitude  float64
	Longitude float64
}

// organizerFromProperty decodes an ORGANIZER property's CAL-ADDRESS value and
// parameters into an Organizer. Returns nil if prop is not present.
func organizerFromProperty(p Property, ok bool) *Organizer {
	if !ok {
		return nil
	}
	return &Organizer{
		CommonName: p.Params.GetFirst(ParamCN),
		CalAddress: p.Value.URI,
		Directory:  p.Params.GetFirst(ParamDir),
	}
}

func attendeesFromProperties(props []Property) []Attendee {
	out := make([]Attendee, 0, len(props))
	for _, p := range props {
		out = append(out, Attendee{
			CalAddress: p.Value.URI,
			CommonName: p.Params.GetFirst(ParamCN),
			Role:       p.Params.GetFirst(ParamRole),
			PartStat:   p.Params.GetFirst(ParamPartStat),
			RSVP:       p.Params.GetFirst(ParamRSVP) == "TRUE",
		})
	}
	return out
}
