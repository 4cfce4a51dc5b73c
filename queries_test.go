package cyclecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCycleDayCountsFromOne(t *testing.T) {
	p := predictorAt(t, "2024-03-20")

	require.Equal(t, 1, p.CycleDay(mustParseDay(t, "2024-03-20")))
	require.Equal(t, 11, p.CycleDay(mustParseDay(t, "2024-03-10")))
}

func TestCycleDayClampsFutureStartToOne(t *testing.T) {
	p := predictorAt(t, "2024-03-20")

	require.Equal(t, 1, p.CycleDay(mustParseDay(t, "2024-04-02")))
}

func TestDaysLateBeforeAndOnPredictedStart(t *testing.T) {
	p := predictorAt(t, "2024-04-20")
	prediction := CyclePrediction{PredictedNextStart: mustParseDay(t, "2024-04-20")}

	late, ok := p.DaysLate(prediction)
	require.False(t, ok)
	require.Zero(t, late)

	early := predictorAt(t, "2024-04-15")
	late, ok = early.DaysLate(prediction)
	require.False(t, ok)
	require.Zero(t, late)
}

func TestDaysLateAfterPredictedStart(t *testing.T) {
	p := predictorAt(t, "2024-04-25")
	prediction := CyclePrediction{PredictedNextStart: mustParseDay(t, "2024-04-20")}

	late, ok := p.DaysLate(prediction)
	require.True(t, ok)
	require.Equal(t, 5, late)
}

func TestFertileWindowHiddenWithoutSignal(t *testing.T) {
	p := predictorAt(t, "2024-03-01")

	// Low confidence without irregularity means no usable signal at all.
	prediction := p.PredictNextPeriod(nil)
	require.Equal(t, ConfidenceLow, prediction.Confidence)
	require.False(t, prediction.IsIrregular)

	_, _, ok := p.FertileWindow(prediction)
	require.False(t, ok)
}

func TestFertileWindowShownForIrregularLowConfidence(t *testing.T) {
	p := predictorAt(t, "2024-07-01")
	records := recordsWithGaps(t, "2024-01-01", 20, 40, 22, 38, 21, 39)

	prediction := p.PredictNextPeriod(records)
	require.Equal(t, ConfidenceLow, prediction.Confidence)
	require.True(t, prediction.IsIrregular)

	start, end, ok := p.FertileWindow(prediction)
	require.True(t, ok)
	require.Equal(t, prediction.FertileWindowStart, start)
	require.Equal(t, prediction.FertileWindowEnd, end)
}

func TestFertileWindowShownForMediumConfidence(t *testing.T) {
	p := predictorAt(t, "2023-03-30")
	records := recordsWithGaps(t, "2023-01-01", 28, 29, 25)

	prediction := p.PredictNextPeriod(records)
	require.Equal(t, ConfidenceMedium, prediction.Confidence)

	_, _, ok := p.FertileWindow(prediction)
	require.True(t, ok)
}

func TestIsIrregularUsesFullUnwindowedHistory(t *testing.T) {
	p := predictorAt(t, "2025-06-01")

	// Three erratic gaps followed by twelve steady ones: the windowed
	// prediction sees only the steady regime, the standalone query sees
	// everything.
	gaps := []int{20, 45, 20}
	for i := 0; i < 12; i++ {
		gaps = append(gaps, 28)
	}
	records := recordsWithGaps(t, "2024-01-01", gaps...)

	require.False(t, p.PredictNextPeriod(records).IsIrregular)
	require.True(t, p.IsIrregular(records))
}

func TestIsIrregularSparseHistoryIsRegular(t *testing.T) {
	p := predictorAt(t, "2024-03-01")

	require.False(t, p.IsIrregular(nil))
	require.False(t, p.IsIrregular([]CycleRecord{{Start: mustParseDay(t, "2024-01-01")}}))
}

func TestQueriesNormalizeTimeOfDay(t *testing.T) {
	now := time.Date(2024, 3, 20, 23, 45, 0, 0, time.UTC)
	p := NewPredictor(Config{Now: func() time.Time { return now }})

	start := time.Date(2024, 3, 10, 1, 30, 0, 0, time.UTC)
	require.Equal(t, 11, p.CycleDay(start))
}
