package cyclecast

import "math"

// irregularityThreshold is the coefficient-of-variation cutoff above which a
// history counts as irregular. A fixed clinical-style constant, not learned.
const irregularityThreshold = 0.15

// CycleLengths derives the day gaps between consecutive cycle starts in
// records, oldest pair first, using UTC calendar days. Gaps outside
// [MinCycleLength, MaxCycleLength] are dropped as data-entry noise. Fewer
// than two records yield an empty list.
func CycleLengths(records []CycleRecord) []int {
	return deriveCycleLengths(LocationCalendar{}, records)
}

func deriveCycleLengths(calendar Calendar, records []CycleRecord) []int {
	if len(records) < 2 {
		return nil
	}

	sorted := sortedByStart(records)
	lengths := make([]int, 0, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		gap := calendar.DayDifference(sorted[i-1].Start, sorted[i].Start)
		if gap < MinCycleLength || gap > MaxCycleLength {
			continue
		}
		lengths = append(lengths, gap)
	}
	return lengths
}

// tailInts keeps the trailing n values, the most recent part of a series.
func tailInts(values []int, n int) []int {
	if n <= 0 || len(values) <= n {
		return values
	}
	return values[len(values)-n:]
}

// weightedAverageLength computes the recency-weighted mean of lengths with
// weight decay^(n-1-i), so the newest sample always carries weight 1.0.
// Exponential decay interpolates between "most recent cycle only" and a plain
// mean, controlled by the single decay constant. Returns DefaultCycleLength
// when there is nothing to weigh.
func weightedAverageLength(lengths []int, decay float64) int {
	var weightedSum, totalWeight float64
	for i, length := range lengths {
		weight := math.Pow(decay, float64(len(lengths)-1-i))
		weightedSum += weight * float64(length)
		totalWeight += weight
	}
	if totalWeight == 0 {
		return DefaultCycleLength
	}
	return int(weightedSum/totalWeight + 0.5)
}

// meanAndStdDev returns the arithmetic mean and population standard deviation
// of lengths.
func meanAndStdDev(lengths []int) (float64, float64) {
	if len(lengths) == 0 {
		return 0, 0
	}

	var total int
	for _, length := range lengths {
		total += length
	}
	mean := float64(total) / float64(len(lengths))

	var squaredDiffs float64
	for _, length := range lengths {
		diff := float64(length) - mean
		squaredDiffs += diff * diff
	}
	return mean, math.Sqrt(squaredDiffs / float64(len(lengths)))
}

// coefficientOfVariation is stddev/mean, a scale-free dispersion measure;
// 0 when the mean is 0.
func coefficientOfVariation(lengths []int) float64 {
	mean, stdDev := meanAndStdDev(lengths)
	if mean == 0 {
		return 0
	}
	return stdDev / mean
}

func irregularLengths(lengths []int) bool {
	return coefficientOfVariation(lengths) > irregularityThreshold
}
