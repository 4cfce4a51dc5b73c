package cyclecast

import "time"

// CurrentPhase classifies today against the running cycle that began at
// lastPeriodStart, using the predicted cycle and period lengths.
func (p *Predictor) CurrentPhase(lastPeriodStart time.Time, prediction CyclePrediction) Phase {
	return phaseOnCycleDay(p.CycleDay(lastPeriodStart), prediction, p.lutealPhaseDays)
}

// PhaseOnCycleDay classifies a 1-based day within the cycle described by
// prediction, with the standard 14-day luteal phase.
func PhaseOnCycleDay(cycleDay int, prediction CyclePrediction) Phase {
	return phaseOnCycleDay(cycleDay, prediction, defaultLutealPhaseDays)
}

// phaseOnCycleDay places ovulation lutealPhaseDays before the predicted cycle
// end, clamped past the period so a short predicted cycle cannot put
// ovulation inside menstruation. Menstrual is checked first: where the bands
// overlap, bleeding wins.
func phaseOnCycleDay(cycleDay int, prediction CyclePrediction, lutealPhaseDays int) Phase {
	ovulationDay := prediction.PredictedCycleLengthDays - lutealPhaseDays
	if ovulationDay < prediction.PredictedPeriodLengthDays+1 {
		ovulationDay = prediction.PredictedPeriodLengthDays + 1
	}

	switch {
	case cycleDay <= prediction.PredictedPeriodLengthDays:
		return PhaseMenstrual
	case cycleDay >= ovulationDay-1 && cycleDay <= ovulationDay+1:
		return PhaseOvulation
	case cycleDay < ovulationDay-1:
		return PhaseFollicular
	default:
		return PhaseLuteal
	}
}
