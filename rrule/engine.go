package rrule

import (
	"container/heap"
	"time"
)

// Occurrence is one expanded recurrence instant.
type Occurrence struct {
	Start time.Time
	// End is nil when the caller supplied no EndOffset (e.g. VJOURNAL).
	End *time.Time
	// FromRDate is true when this instant was contributed only by an RDATE,
	// not by any RRULE.
	FromRDate bool
}

// ExDate is one EXDATE entry. DateOnly marks a VALUE=DATE exclusion, which
// matches every occurrence falling on that calendar date regardless of time.
type ExDate struct {
	Time     time.Time
	DateOnly bool
}

// ExpandInput is the full recurrence context for a single component.
type ExpandInput struct {
	DTStart   time.Time
	Rules     []*RRule
	ExDates   []ExDate
	RDates    []time.Time
	RangeEnd  *time.Time
	EndOffset *time.Duration
}

// safetyCap bounds an unbounded rule's walk even when the caller supplies a
// generous (or no) range end, per spec.md §4.7's "Range bounds" guidance.
func safetyCap(freq Frequency, from time.Time) time.Time {
	if freq == FrequencySecondly || freq == FrequencyMinutely || freq == FrequencyHourly {
		return from.AddDate(10, 0, 0)
	}
	return from.AddDate(100, 0, 0)
}

// Expand returns a lazy, chronologically ordered sequence of Occurrence
// values for the given recurrence context: every RRULE's raw candidates are
// generated and merged (de-duplicated against each other and against RDATE),
// then EXDATE is applied as a final filter — so a COUNT=N rule with one
// matching EXDATE yields N-1 occurrences, never N.
//
// The returned func is a push iterator (range-over-func, Go 1.23+): calling
// it with a yield callback walks the sequence; returning false from yield
// stops the walk early without generating further candidates.
func Expand(in ExpandInput) (func(yield func(Occurrence) bool), error) {
	if err := validateExpandInput(in); err != nil {
		return nil, err
	}

	if len(in.Rules) == 0 && len(in.RDates) == 0 {
		return func(yield func(Occurrence) bool) {
			if isExcluded(in.DTStart, in.ExDates) {
				return
			}
			yield(makeOccurrence(in.DTStart, in.EndOffset, false))
		}, nil
	}

	return func(yield func(Occurrence) bool) {
		for m := range mergeSources(in) {
			if isExcluded(m.t, in.ExDates) {
				continue
			}
			if !yield(makeOccurrence(m.t, in.EndOffset, m.fromRDate)) {
				return
			}
		}
	}, nil
}

func validateExpandInput(in ExpandInput) error {
	if in.RangeEnd != nil {
		return nil
	}
	for _, r := range in.Rules {
		if r.Count == nil && r.Until == nil {
			return ErrUnboundedWithoutRangeEnd
		}
	}
	return nil
}

func makeOccurrence(t time.Time, offset *time.Duration, fromRDate bool) Occurrence {
	occ := Occurrence{Start: t, FromRDate: fromRDate}
	if offset != nil {
		end := t.Add(*offset)
		occ.End = &end
	}
	return occ
}

func isExcluded(t time.Time, exdates []ExDate) bool {
	for _, ex := range exdates {
		if ex.DateOnly {
			ey, em, ed := ex.Time.Date()
			ty, tm, td := t.In(ex.Time.Location()).Date()
			if ey == ty && em == tm && ed == td {
				return true
			}
			continue
		}
		if ex.Time.Equal(t) {
			return true
		}
	}
	return false
}

// mergedCandidate is one instant drawn from the k-way merge, tagged with
// whether it came exclusively from RDATE.
type mergedCandidate struct {
	t         time.Time
	fromRDate bool
}

// mergeSources performs a lazy k-way merge across every RRULE's candidate
// stream plus the sorted RDATE stream, holding only one buffered head per
// source at a time, de-duplicating coincident instants. When an instant is
// produced by both an RRULE and RDATE, the RRULE's occurrence wins (i.e. it
// is not marked FromRDate) — an RRULE instant suppresses a coincident RDATE.
func mergeSources(in ExpandInput) func(yield func(mergedCandidate) bool) {
	return func(yield func(mergedCandidate) bool) {
		var heads []*headSource
		for _, r := range in.Rules {
			effEnd := safetyCap(r.Frequency, in.DTStart)
			if in.RangeEnd != nil && in.RangeEnd.Before(effEnd) {
				effEnd = *in.RangeEnd
			}
			if r.Until != nil && r.Until.Before(effEnd) {
				effEnd = *r.Until
			}
			it := newRuleIterator(r, in.DTStart, effEnd)
			heads = append(heads, newHeadSource(it.next, false))
		}
		if len(in.RDates) > 0 {
			sorted := append([]time.Time(nil), in.RDates...)
			sortTimes(sorted)
			idx := 0
			rdNext := func() (time.Time, bool) {
				if idx >= len(sorted) {
					return time.Time{}, false
				}
				t := sorted[idx]
				idx++
				return t, true
			}
			heads = append(heads, newHeadSource(rdNext, true))
		}

		pq := make(sourceHeap, 0, len(heads))
		for _, h := range heads {
			if h.ok {
				pq = append(pq, h)
			}
		}
		heap.Init(&pq)

		var lastEmitted time.Time
		haveLast := false
		for pq.Len() > 0 {
			top := pq[0]
			cur := top.head
			fromRDate := top.fromRDate
			// Drain every source currently parked on the same instant so
			// duplicates collapse into a single emission, preferring the
			// RRULE-sourced flag over RDATE's.
			for pq.Len() > 0 && pq[0].head.Equal(cur) {
				h := heap.Pop(&pq).(*headSource)
				if !h.fromRDate {
					fromRDate = false
				}
				h.advance()
				if h.ok {
					heap.Push(&pq, h)
				}
			}
			if !haveLast || cur.After(lastEmitted) {
				if !yield(mergedCandidate{t: cur, fromRDate: fromRDate}) {
					return
				}
				lastEmitted = cur
				haveLast = true
			}
		}
	}
}

func sortTimes(ts []time.Time) {
	for i := 1; i < len(ts); i++ {
		for j := i; j > 0 && ts[j].Before(ts[j-1]); j-- {
			ts[j], ts[j-1] = ts[j-1], ts[j]
		}
	}
}

// headSource is one lazy source (an RRULE iterator or the RDATE stream)
// parked at its next unconsumed candidate.
type headSource struct {
	next      func() (time.Time, bool)
	head      time.Time
	ok        bool
	fromRDate bool
}

func newHeadSource(next func() (time.Time, bool), fromRDate bool) *headSource {
	h := &headSource{next: next, fromRDate: fromRDate}
	h.advance()
	return h
}

func (h *headSource) advance() {
	h.head, h.ok = h.next()
}

// sourceHeap is a container/heap min-heap over headSource.head, giving the
// k-way merge O(log k) per candidate instead of an O(k) linear scan.
type sourceHeap []*headSource

func (s sourceHeap) Len() int            { return len(s) }
func (s sourceHeap) Less(i, j int) bool  { return s[i].head.Before(s[j].head) }
func (s sourceHeap) Swap(i, j int)       { s[i], s[j] = s[j], s[i] }
func (s *sourceHeap) Push(x interface{}) { *s = append(*s, x.(*headSource)) }
func (s *sourceHeap) Pop() interface{} {
	old := *s
	n := len(old)
	item := old[n-1]
	*s = old[:n-1]
	return item
}
