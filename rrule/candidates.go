package rrule

import (
	"sort"
	"time"
)

// civilTime combines a calendar date with a candidate's time-of-day pieces,
// used while a period's day set is still being assembled.
func civilTime(year int, month time.Month, day, hour, min, sec int, loc *time.Location) time.Time {
	return time.Date(year, month, day, hour, min, sec, 0, loc)
}

// daysInMonth returns the number of days in the given month.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// daysInYear returns 365 or 366.
func daysInYear(year int) int {
	if time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay() == 366 {
		return 366
	}
	return 365
}

// resolveOrdinalDay resolves a BYMONTHDAY/BYYEARDAY-style signed ordinal (1..n
// or -1..-n) against a period of `size` days, returning the 1-based day and
// whether it is in range.
func resolveOrdinalDay(n, size int) (int, bool) {
	if n > 0 {
		if n > size {
			return 0, false
		}
		return n, true
	}
	if n < 0 {
		day := size + n + 1
		if day < 1 {
			return 0, false
		}
		return day, true
	}
	return 0, false
}

// weekdayDaysInMonth returns the ascending day-of-month numbers whose weekday
// matches wd.
func weekdayDaysInMonth(year int, month time.Month, wd time.Weekday) []int {
	dim := daysInMonth(year, month)
	var out []int
	for d := 1; d <= dim; d++ {
		if time.Date(year, month, d, 0, 0, 0, 0, time.UTC).Weekday() == wd {
			out = append(out, d)
		}
	}
	return out
}

// nthFromOrdinal picks the n-th (1-based, or negative for from-the-end) entry
// of an ascending list.
func nthFromOrdinal(days []int, n int) (int, bool) {
	if len(days) == 0 {
		return 0, false
	}
	if n > 0 {
		if n > len(days) {
			return 0, false
		}
		return days[n-1], true
	}
	if n < 0 {
		idx := len(days) + n
		if idx < 0 {
			return 0, false
		}
		return days[idx], true
	}
	return 0, false
}

// combineTimesOfDay expands a civil date into one or more instants by
// combining it with BYHOUR/BYMINUTE/BYSECOND (defaulting each to dtstart's
// corresponding field when the BY-part is absent).
func combineTimesOfDay(year int, month time.Month, day int, rule *RRule, dtstart time.Time) []time.Time {
	hours := rule.ByHour
	if len(hours) == 0 {
		hours = []int{dtstart.Hour()}
	}
	mins := rule.ByMinute
	if len(mins) == 0 {
		mins = []int{dtstart.Minute()}
	}
	secs := rule.BySecond
	if len(secs) == 0 {
		secs = []int{dtstart.Second()}
	}
	loc := dtstart.Location()
	out := make([]time.Time, 0, len(hours)*len(mins)*len(secs))
	for _, h := range hours {
		for _, m := range mins {
			for _, s := range secs {
				out = append(out, civilTime(year, month, day, h, m, s, loc))
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// passesHMSFilter reports whether t's hour/minute/second match the rule's
// BYHOUR/BYMINUTE/BYSECOND constraints, if any are present.
func passesHMSFilter(t time.Time, rule *RRule) bool {
	if len(rule.ByHour) > 0 && !containsInt(rule.ByHour, t.Hour()) {
		return false
	}
	if len(rule.ByMinute) > 0 && !containsInt(rule.ByMinute, t.Minute()) {
		return false
	}
	if len(rule.BySecond) > 0 && !containsInt(rule.BySecond, t.Second()) {
		return false
	}
	return true
}

func containsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

// passesByMonthFilter reports whether t's month matches BYMONTH, if present.
func passesByMonthFilter(t time.Time, rule *RRule) bool {
	if len(rule.ByMonth) == 0 {
		return true
	}
	return containsInt(rule.ByMonth, int(t.Month()))
}

// applySetPos keeps only the entries of an ascending, already-filtered
// candidate list whose 1-based (or negative) position appears in BySetPos.
// When BySetPos is empty the list passes through unchanged.
func applySetPos(candidates []time.Time, setpos []int) []time.Time {
	if len(setpos) == 0 {
		return candidates
	}
	n := len(candidates)
	keep := make(map[int]bool, len(setpos))
	for _, p := range setpos {
		if p > 0 && p <= n {
			keep[p-1] = true
		} else if p < 0 && -p <= n {
			keep[n+p] = true
		}
	}
	out := make([]time.Time, 0, len(keep))
	for i, c := range candidates {
		if keep[i] {
			out = append(out, c)
		}
	}
	return out
}

// dailyLikeStep is the fixed-duration unit used by SECONDLY/MINUTELY/HOURLY/DAILY.
func dailyLikeStep(freq Frequency) time.Duration {
	switch freq {
	case FrequencySecondly:
		return time.Second
	case FrequencyMinutely:
		return time.Minute
	case FrequencyHourly:
		return time.Hour
	case FrequencyDaily:
		return 24 * time.Hour
	}
	return 0
}

// weekStart returns the start-of-week (at midnight, dtstart's time-of-day is
// applied later) containing t, aligned so the week begins on wkst.
func weekStart(t time.Time, wkst Weekday) time.Time {
	target := goWeekday[wkst]
	cur := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	delta := (int(cur.Weekday()) - int(target) + 7) % 7
	return cur.AddDate(0, 0, -delta)
}

// monthDayCandidates computes the day-of-month pool for a MONTHLY rule's
// period, before BYDAY ordinal filtering, per spec.md §4.7.
func monthDayCandidates(year int, month time.Month, rule *RRule, dtstart time.Time) []int {
	dim := daysInMonth(year, month)
	if len(rule.ByMonthDay) > 0 {
		seen := map[int]bool{}
		var out []int
		for _, n := range rule.ByMonthDay {
			if d, ok := resolveOrdinalDay(n, dim); ok && !seen[d] {
				seen[d] = true
				out = append(out, d)
			}
		}
		sort.Ints(out)
		return out
	}
	if len(rule.ByDay) > 0 || len(rule.BySetPos) > 0 {
		out := make([]int, dim)
		for i := range out {
			out[i] = i + 1
		}
		return out
	}
	if dtstart.Day() <= dim {
		return []int{dtstart.Day()}
	}
	return nil
}

// applyByDayInMonth filters a day-of-month candidate pool by BYDAY, honoring
// per-entry ordinals scoped to the month (RFC 5545 MONTHLY semantics).
func applyByDayInMonth(candidates []int, year int, month time.Month, byDay []ByDay) []int {
	if len(byDay) == 0 {
		return candidates
	}
	allowed := map[int]bool{}
	for _, bd := range byDay {
		wd := goWeekday[bd.Weekday]
		if bd.Ordinal == 0 {
			for _, d := range weekdayDaysInMonth(year, month, wd) {
				allowed[d] = true
			}
			continue
		}
		if d, ok := nthFromOrdinal(weekdayDaysInMonth(year, month, wd), bd.Ordinal); ok {
			allowed[d] = true
		}
	}
	var out []int
	for _, d := range candidates {
		if allowed[d] {
			out = append(out, d)
		}
	}
	return out
}

// yearMonthDay is a resolved calendar date within a YEARLY expansion.
type yearMonthDay struct {
	Month time.Month
	Day   int
}

// yearlyCandidateDays computes the (month, day) pool for a YEARLY rule's
// year and the BYDAY ordinal scope it implies, per spec.md §4.7:
//
//	BYWEEKNO present       -> days of the listed ISO weeks, weekday-filtered
//	                          (ordinal-agnostic; "week" scope)
//	BYYEARDAY present      -> the listed year-days, no BYDAY interaction
//	BYMONTH present        -> all days of the listed months, BYDAY ordinals
//	                          scoped to the month ("month" scope)
//	BYDAY present alone    -> all days of the year, BYDAY ordinals scoped
//	                          to the year ("plain" scope)
//	none of the above      -> no expansion; caller falls back to DTSTART's
//	                          (month, day) (expanded=false)
func yearlyCandidateDays(year int, rule *RRule, dtstart time.Time) (days []yearMonthDay, scope string, expanded bool) {
	switch {
	case len(rule.ByWeekNo) > 0:
		var out []yearMonthDay
		for _, wk := range rule.ByWeekNo {
			for _, d := range isoWeekDates(year, wk) {
				if len(rule.ByDay) > 0 && !weekdayInList(d.Weekday(), rule.ByDay) {
					continue
				}
				out = append(out, yearMonthDay{Month: d.Month(), Day: d.Day()})
			}
		}
		return out, "week", true
	case len(rule.ByYearDay) > 0:
		size := daysInYear(year)
		var out []yearMonthDay
		for _, n := range rule.ByYearDay {
			if yd, ok := resolveOrdinalDay(n, size); ok {
				d := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, yd-1)
				out = append(out, yearMonthDay{Month: d.Month(), Day: d.Day()})
			}
		}
		return out, "yearday", true
	case len(rule.ByMonth) > 0:
		var out []yearMonthDay
		for _, m := range rule.ByMonth {
			month := time.Month(m)
			dim := daysInMonth(year, month)
			for d := 1; d <= dim; d++ {
				out = append(out, yearMonthDay{Month: month, Day: d})
			}
		}
		return out, "month", true
	case len(rule.ByDay) > 0:
		var out []yearMonthDay
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		for d := start; d.Year() == year; d = d.AddDate(0, 0, 1) {
			out = append(out, yearMonthDay{Month: d.Month(), Day: d.Day()})
		}
		return out, "plain", true
	default:
		return nil, "", false
	}
}

// applyByDayMonthScopeGrouped applies applyByDayInMonth independently within
// each month present in candidates, for the YEARLY+BYMONTH ordinal scope.
func applyByDayMonthScopeGrouped(candidates []yearMonthDay, year int, byDay []ByDay) []yearMonthDay {
	if len(byDay) == 0 {
		return candidates
	}
	byMonth := map[time.Month][]int{}
	var order []time.Month
	for _, c := range candidates {
		if _, ok := byMonth[c.Month]; !ok {
			order = append(order, c.Month)
		}
		byMonth[c.Month] = append(byMonth[c.Month], c.Day)
	}
	var out []yearMonthDay
	for _, m := range order {
		for _, d := range applyByDayInMonth(byMonth[m], year, m, byDay) {
			out = append(out, yearMonthDay{Month: m, Day: d})
		}
	}
	return out
}

// weekdayInList reports whether wd matches any (ordinal-agnostic) entry.
func weekdayInList(wd time.Weekday, byDay []ByDay) bool {
	for _, bd := range byDay {
		if goWeekday[bd.Weekday] == wd {
			return true
		}
	}
	return false
}

// isoWeekDates returns the 7 calendar dates making up ISO week `week` of
// `isoYear`, which may spill into the adjacent Gregorian year.
func isoWeekDates(isoYear, week int) []time.Time {
	// The Thursday of ISO week 1 always falls in isoYear.
	jan4 := time.Date(isoYear, time.January, 4, 0, 0, 0, 0, time.UTC)
	isoWd := int(jan4.Weekday())
	if isoWd == 0 {
		isoWd = 7
	}
	week1Monday := jan4.AddDate(0, 0, -(isoWd - 1))
	if week < 0 {
		_, weeksInYear := time.Date(isoYear, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
		week = weeksInYear + week + 1
	}
	start := week1Monday.AddDate(0, 0, (week-1)*7)
	out := make([]time.Time, 7)
	for i := range out {
		out[i] = start.AddDate(0, 0, i)
	}
	return out
}

// applyByDayYearScope filters a year-scoped candidate pool by BYDAY with
// ordinals scoped to the whole year (plain YEARLY, no BYMONTH).
func applyByDayYearScope(candidates []yearMonthDay, year int, byDay []ByDay) []yearMonthDay {
	if len(byDay) == 0 {
		return candidates
	}
	// Build, per weekday, the ascending list of year-days matching it so
	// ordinals (nth / -nth in the year) can be resolved.
	byWeekday := map[time.Weekday][]yearMonthDay{}
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	for d := start; d.Year() == year; d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()
		byWeekday[wd] = append(byWeekday[wd], yearMonthDay{Month: d.Month(), Day: d.Day()})
	}
	allowed := map[yearMonthDay]bool{}
	for _, bd := range byDay {
		wd := goWeekday[bd.Weekday]
		if bd.Ordinal == 0 {
			for _, ymd := range byWeekday[wd] {
				allowed[ymd] = true
			}
			continue
		}
		all := byWeekday[wd]
		idx := bd.Ordinal
		var picked yearMonthDay
		ok := false
		if idx > 0 && idx <= len(all) {
			picked, ok = all[idx-1], true
		} else if idx < 0 && -idx <= len(all) {
			picked, ok = all[len(all)+idx], true
		}
		if ok {
			allowed[picked] = true
		}
	}
	var out []yearMonthDay
	for _, c := range candidates {
		if allowed[c] {
			out = append(out, c)
		}
	}
	return out
}
