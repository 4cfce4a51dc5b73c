package cyclecast

import "time"

// ProjectCycleStart rolls lastPeriodStart forward by whole cycle lengths to
// the start of the cycle containing today, returning that start and today's
// 1-based day within it. ok is false when the anchor or cycle length is
// unusable; a future anchor projects to day 0 at the anchor itself.
//
// This is the stale-data recovery path: when the user stopped logging some
// cycles ago, the raw anchor would report an absurd cycle day, while the
// projected one stays within [1, cycleLength].
func (p *Predictor) ProjectCycleStart(lastPeriodStart time.Time, cycleLength int) (time.Time, int, bool) {
	if lastPeriodStart.IsZero() || cycleLength <= 0 {
		return time.Time{}, 0, false
	}

	today := p.calendar.StartOfDay(p.now())
	start := p.calendar.StartOfDay(lastPeriodStart)
	if today.Before(start) {
		return start, 0, true
	}

	elapsedDays := p.calendar.DayDifference(start, today)
	cyclesElapsed := elapsedDays / cycleLength
	projectedStart := p.calendar.AddDays(start, cyclesElapsed*cycleLength)
	projectedCycleDay := elapsedDays%cycleLength + 1
	return projectedStart, projectedCycleDay, true
}

// LooksStale reports whether the logged anchor is older than one reference
// cycle, i.e. at least one expected period has passed unrecorded.
func (p *Predictor) LooksStale(lastPeriodStart time.Time, referenceLength int) bool {
	if lastPeriodStart.IsZero() || referenceLength <= 0 {
		return false
	}
	today := p.calendar.StartOfDay(p.now())
	start := p.calendar.StartOfDay(lastPeriodStart)
	if today.Before(start) {
		return false
	}
	rawCycleDay := p.calendar.DayDifference(start, today) + 1
	return rawCycleDay > referenceLength
}

// CycleDayLooksLong reports whether the current cycle has run noticeably past
// the reference length, the cue for a "cycle running long" hint.
func CycleDayLooksLong(currentDay int, referenceLength int) bool {
	if currentDay <= 0 || referenceLength <= 0 {
		return false
	}
	return currentDay > referenceLength+7
}
