package rrule

import (
	"sort"
	"time"
)

// ruleIterator produces one RRule's raw candidate instants in ascending
// order, bounded by COUNT and effectiveEnd. It buffers at most one period's
// worth of candidates at a time (a week, a month, or a year), matching the
// "lazy per-period generation" design in spec.md §4.7 rather than
// materializing the whole expansion up front.
type ruleIterator struct {
	rule         *RRule
	countLimit   *int
	emitted      int
	dtstart      time.Time
	effectiveEnd time.Time

	queue     []time.Time
	qi        int
	exhausted bool

	periodNext func() ([]time.Time, bool)
}

func newRuleIterator(rule *RRule, dtstart, effectiveEnd time.Time) *ruleIterator {
	it := &ruleIterator{
		rule:         rule,
		countLimit:   rule.Count,
		dtstart:      dtstart,
		effectiveEnd: effectiveEnd,
	}
	switch rule.Frequency {
	case FrequencySecondly, FrequencyMinutely, FrequencyHourly, FrequencyDaily:
		it.periodNext = dailyLikePeriods(rule, dtstart, effectiveEnd)
	case FrequencyWeekly:
		it.periodNext = weeklyPeriods(rule, dtstart, effectiveEnd)
	case FrequencyMonthly:
		it.periodNext = monthlyPeriods(rule, dtstart, effectiveEnd)
	case FrequencyYearly:
		it.periodNext = yearlyPeriods(rule, dtstart, effectiveEnd)
	}
	return it
}

func (it *ruleIterator) next() (time.Time, bool) {
	for {
		if it.countLimit != nil && it.emitted >= *it.countLimit {
			return time.Time{}, false
		}
		if it.qi < len(it.queue) {
			t := it.queue[it.qi]
			it.qi++
			if t.Before(it.dtstart) {
				continue
			}
			if t.After(it.effectiveEnd) {
				it.exhausted = true
				it.queue = nil
				continue
			}
			it.emitted++
			return t, true
		}
		if it.exhausted || it.periodNext == nil {
			return time.Time{}, false
		}
		cands, ok := it.periodNext()
		if !ok {
			it.exhausted = true
			continue
		}
		it.queue = cands
		it.qi = 0
	}
}

func dailyLikePeriods(rule *RRule, dtstart, effectiveEnd time.Time) func() ([]time.Time, bool) {
	cursor := dtstart
	step := dailyLikeStep(rule.Frequency) * time.Duration(rule.Interval)
	return func() ([]time.Time, bool) {
		if cursor.After(effectiveEnd) {
			return nil, false
		}
		t := cursor
		cursor = cursor.Add(step)
		if !passesByMonthFilter(t, rule) {
			return nil, true
		}
		if !passesByMonthDayFilter(t, rule) {
			return nil, true
		}
		if !passesByDayAnyOrdinal(t, rule) {
			return nil, true
		}
		if !passesHMSFilter(t, rule) {
			return nil, true
		}
		return []time.Time{t}, true
	}
}

func passesByMonthDayFilter(t time.Time, rule *RRule) bool {
	if len(rule.ByMonthDay) == 0 {
		return true
	}
	dim := daysInMonth(t.Year(), t.Month())
	for _, n := range rule.ByMonthDay {
		if d, ok := resolveOrdinalDay(n, dim); ok && d == t.Day() {
			return true
		}
	}
	return false
}

func passesByDayAnyOrdinal(t time.Time, rule *RRule) bool {
	if len(rule.ByDay) == 0 {
		return true
	}
	return weekdayInList(t.Weekday(), rule.ByDay)
}

func weeklyPeriods(rule *RRule, dtstart, effectiveEnd time.Time) func() ([]time.Time, bool) {
	cursor := weekStart(dtstart, rule.WKST)
	return func() ([]time.Time, bool) {
		if cursor.After(effectiveEnd) {
			return nil, false
		}
		var days []time.Time
		for i := 0; i < 7; i++ {
			d := cursor.AddDate(0, 0, i)
			if len(rule.ByMonth) > 0 && !containsInt(rule.ByMonth, int(d.Month())) {
				continue
			}
			if len(rule.ByDay) > 0 {
				if !weekdayInList(d.Weekday(), rule.ByDay) {
					continue
				}
			} else if d.Weekday() != dtstart.Weekday() {
				continue
			}
			days = append(days, combineTimesOfDay(d.Year(), d.Month(), d.Day(), rule, dtstart)...)
		}
		sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
		days = applySetPos(days, rule.BySetPos)
		cursor = cursor.AddDate(0, 0, 7*rule.Interval)
		return days, true
	}
}

func monthlyPeriods(rule *RRule, dtstart, effectiveEnd time.Time) func() ([]time.Time, bool) {
	year := dtstart.Year()
	month := dtstart.Month()
	return func() ([]time.Time, bool) {
		periodStart := time.Date(year, month, 1, 0, 0, 0, 0, dtstart.Location())
		if periodStart.After(effectiveEnd) {
			return nil, false
		}
		var out []time.Time
		if len(rule.ByMonth) == 0 || containsInt(rule.ByMonth, int(month)) {
			days := monthDayCandidates(year, month, rule, dtstart)
			days = applyByDayInMonth(days, year, month, rule.ByDay)
			for _, d := range days {
				out = append(out, combineTimesOfDay(year, month, d, rule, dtstart)...)
			}
			sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
			out = applySetPos(out, rule.BySetPos)
		}
		m := int(month) - 1 + rule.Interval
		year = year + m/12
		month = time.Month(m%12 + 1)
		return out, true
	}
}

func yearlyPeriods(rule *RRule, dtstart, effectiveEnd time.Time) func() ([]time.Time, bool) {
	year := dtstart.Year()
	return func() ([]time.Time, bool) {
		periodStart := time.Date(year, time.January, 1, 0, 0, 0, 0, dtstart.Location())
		if periodStart.After(effectiveEnd) {
			return nil, false
		}
		pairs, scope, expanded := yearlyCandidateDays(year, rule, dtstart)
		if !expanded {
			dim := daysInMonth(year, dtstart.Month())
			if dtstart.Day() <= dim {
				pairs = []yearMonthDay{{Month: dtstart.Month(), Day: dtstart.Day()}}
			}
		} else if scope == "month" {
			pairs = applyByDayMonthScopeGrouped(pairs, year, rule.ByDay)
		} else if scope == "plain" {
			pairs = applyByDayYearScope(pairs, year, rule.ByDay)
		}
		var out []time.Time
		for _, p := range pairs {
			out = append(out, combineTimesOfDay(year, p.Month, p.Day, rule, dtstart)...)
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
		out = applySetPos(out, rule.BySetPos)
		year += rule.Interval
		return out, true
	}
}
