package cyclecast

import "time"

const (
	defaultLutealPhaseDays = 14
	defaultDecayFactor     = 0.85
	defaultMaxHistory      = 12
	defaultMinSamples      = 3

	// highConfidenceSamples is the regular-sample count from which a
	// prediction earns high confidence.
	highConfidenceSamples = 6
	// fertileWindowDays spans the 5 pre-ovulatory days plus ovulation day.
	fertileWindowDays = 6
	// irregularWidening extends the fertile window on both sides when the
	// history is irregular, trading precision for coverage.
	irregularWidening = 2
	// recentPeriodSamples caps how many completed periods feed the period
	// length estimate.
	recentPeriodSamples = 6
)

// Config configures a Predictor. Zero values produce the engine defaults;
// out-of-range values fall back to the defaults rather than erroring.
type Config struct {
	Calendar        Calendar         // nil → LocationCalendar in UTC
	Now             func() time.Time // nil → time.Now
	LutealPhaseDays int              // zero → 14
	DecayFactor     float64          // zero → 0.85; must lie in (0, 1]
	MaxHistory      int              // zero → 12 most recent gap samples
	MinSamples      int              // zero → 3 samples below which confidence is low
}

// Predictor computes cycle predictions. It holds only configuration, never
// history: every method is a pure function of its arguments and the clock,
// safe for concurrent use.
type Predictor struct {
	calendar        Calendar
	now             func() time.Time
	lutealPhaseDays int
	decayFactor     float64
	maxHistory      int
	minSamples      int
}

// NewPredictor creates a Predictor from the given config, filling zero or
// invalid fields with defaults.
func NewPredictor(cfg Config) *Predictor {
	calendar := cfg.Calendar
	if calendar == nil {
		calendar = LocationCalendar{}
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	lutealPhaseDays := cfg.LutealPhaseDays
	if lutealPhaseDays <= 0 {
		lutealPhaseDays = defaultLutealPhaseDays
	}

	decayFactor := cfg.DecayFactor
	if decayFactor <= 0 || decayFactor > 1 {
		decayFactor = defaultDecayFactor
	}

	maxHistory := cfg.MaxHistory
	if maxHistory <= 0 {
		maxHistory = defaultMaxHistory
	}

	minSamples := cfg.MinSamples
	if minSamples <= 0 {
		minSamples = defaultMinSamples
	}

	return &Predictor{
		calendar:        calendar,
		now:             now,
		lutealPhaseDays: lutealPhaseDays,
		decayFactor:     decayFactor,
		maxHistory:      maxHistory,
		minSamples:      minSamples,
	}
}

// PredictNextPeriod builds a fresh prediction from the supplied history
// snapshot. Empty history yields the default prediction anchored at today.
// The cycle length estimate uses at most the MaxHistory most recent gap
// samples; see IsIrregular for the unwindowed counterpart.
func (p *Predictor) PredictNextPeriod(records []CycleRecord) CyclePrediction {
	today := p.calendar.StartOfDay(p.now())
	if len(records) == 0 {
		return p.assemble(today, DefaultCycleLength, DefaultPeriodLength, ConfidenceLow, false)
	}

	sorted := sortedByStart(records)
	windowed := tailInts(deriveCycleLengths(p.calendar, sorted), p.maxHistory)

	cycleLength := weightedAverageLength(windowed, p.decayFactor)
	irregular := irregularLengths(windowed)

	var confidence Confidence
	switch {
	case len(windowed) < p.minSamples:
		// Too little signal to claim anything, including irregularity.
		confidence = ConfidenceLow
		cycleLength = DefaultCycleLength
		irregular = false
	case len(windowed) >= highConfidenceSamples && !irregular:
		confidence = ConfidenceHigh
	case irregular:
		// Irregularity caps confidence at low regardless of sample count.
		confidence = ConfidenceLow
	default:
		confidence = ConfidenceMedium
	}

	lastStart := p.calendar.StartOfDay(sorted[len(sorted)-1].Start)
	return p.assemble(lastStart, cycleLength, p.estimatePeriodLength(sorted), confidence, irregular)
}

func (p *Predictor) assemble(anchor time.Time, cycleLength int, periodLength int, confidence Confidence, irregular bool) CyclePrediction {
	nextStart := p.calendar.AddDays(anchor, cycleLength)
	ovulation := p.calendar.AddDays(nextStart, -p.lutealPhaseDays)

	widening := 0
	if irregular {
		widening = irregularWidening
	}

	return CyclePrediction{
		PredictedNextStart:        nextStart,
		PredictedPeriodLengthDays: periodLength,
		PredictedCycleLengthDays:  cycleLength,
		EstimatedOvulationDate:    ovulation,
		FertileWindowStart:        p.calendar.AddDays(ovulation, -(fertileWindowDays - 1 + widening)),
		FertileWindowEnd:          p.calendar.AddDays(ovulation, widening),
		Confidence:                confidence,
		IsIrregular:               irregular,
	}
}

// estimatePeriodLength averages the durations of the most recent completed
// periods, newest first, up to recentPeriodSamples of them. Records without
// an end date or with a non-positive duration are skipped.
func (p *Predictor) estimatePeriodLength(sorted []CycleRecord) int {
	var total, count int
	for i := len(sorted) - 1; i >= 0 && count < recentPeriodSamples; i-- {
		record := sorted[i]
		if !record.HasEnded() {
			continue
		}
		duration := p.calendar.DayDifference(record.Start, record.End)
		if duration <= 0 {
			continue
		}
		total += duration
		count++
	}
	if count == 0 {
		return DefaultPeriodLength
	}
	return int(float64(total)/float64(count) + 0.5)
}
