// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import "time"

// FBType is a FREEBUSY property's FBTYPE parameter value.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.2.9
type FBType string

const (
	FBTypeFree           FBType = "FREE"
	FBTypeBusy           FBType = "BUSY"
	FBTypeBusyUnavailable FBType = "BUSY-UNAVAILABLE"
	FBTypeBusyTentative  FBType = "BUSY-TENTATIVE"
)

// FreeBusyPeriod is one comma-separated PERIOD entry of a FREEBUSY property.
type FreeBusyPeriod struct {
	Type  FBType
	Start time.Time
	End   time.Time
}

// FreeBusy is a typed view over a VFREEBUSY Component.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.4
type FreeBusy struct {
	*Component
}

// NewFreeBusy returns an empty VFREEBUSY component view.
func NewFreeBusy() *FreeBusy { return &FreeBusy{NewComponent(string(SectionVFreebusy))} }

func (f *FreeBusy) UID() string { return f.textOf(PropUID) }

func (f *FreeBusy) DTStamp() time.Time {
	p, ok := f.GetProperty(PropDTStamp)
	if !ok {
		return time.Time{}
	}
	return p.Value.DateTime.Time
}

func (f *FreeBusy) DTStart() (time.Time, bool) {
	p, ok := f.GetProperty(PropDTStart)
	if !ok {
		return time.Time{}, false
	}
	return p.Value.DateTime.Time, true
}

func (f *FreeBusy) DTEnd() (time.Time, bool) {
	p, ok := f.GetProperty(PropDTEnd)
	if !ok {
		return time.Time{}, false
	}
	return p.Value.DateTime.Time, true
}

func (f *FreeBusy) Organizer() *Organizer {
	p, ok := f.GetProperty(PropOrganizer)
	return organizerFromProperty(p, ok)
}

// Periods decodes every FREEBUSY property's PERIOD list, tagging each with
// its FBTYPE parameter (defaulting to BUSY per RFC 5545 §3.8.2.6).
func (f *FreeBusy) Periods() []FreeBusyPeriod {
	var out []FreeBusyPeriod
	for _, p := range f.GetAllProperties(PropFreeBusy) {
		fbtype := FBType(p.Params.GetFirst(ParamFBType))
		if fbtype == "" {
			fbtype = FBTypeBusy
		}
		end := p.Value.Period.End
		if p.Value.Period.AsDuration != nil {
			end = p.Value.Period.Start.Add(decodedDuration(*p.Value.Period.AsDuration))
		}
		out = append(out, FreeBusyPeriod{Type: fbtype, Start: p.Value.Period.Start, End: end})
	}
	return out
}
