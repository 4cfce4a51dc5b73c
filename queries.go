package cyclecast

import "time"

// CycleDay returns today's 1-based day within the cycle that began at
// lastPeriodStart. The start day itself is day 1; dates in the future clamp
// to 1.
func (p *Predictor) CycleDay(lastPeriodStart time.Time) int {
	today := p.calendar.StartOfDay(p.now())
	start := p.calendar.StartOfDay(lastPeriodStart)
	day := p.calendar.DayDifference(start, today) + 1
	if day < 1 {
		return 1
	}
	return day
}

// DaysLate reports how many days overdue the predicted period is. The second
// return is false while today is on or before the predicted start.
func (p *Predictor) DaysLate(prediction CyclePrediction) (int, bool) {
	today := p.calendar.StartOfDay(p.now())
	late := p.calendar.DayDifference(prediction.PredictedNextStart, today)
	if late <= 0 {
		return 0, false
	}
	return late, true
}

// FertileWindow returns the predicted fertile range. The third return is
// false only when confidence is low without irregularity, i.e. there is
// genuinely no signal; a widened window from an irregular history is still
// considered actionable even though its confidence is low.
func (p *Predictor) FertileWindow(prediction CyclePrediction) (time.Time, time.Time, bool) {
	if prediction.Confidence == ConfidenceLow && !prediction.IsIrregular {
		return time.Time{}, time.Time{}, false
	}
	return prediction.FertileWindowStart, prediction.FertileWindowEnd, true
}

// IsIrregular reruns the variability classification over the full filtered
// history. Unlike PredictNextPeriod, which looks at only the MaxHistory most
// recent gaps, this considers every usable gap, so the two can disagree for
// long histories with a regime change.
func (p *Predictor) IsIrregular(records []CycleRecord) bool {
	return irregularLengths(deriveCycleLengths(p.calendar, records))
}
