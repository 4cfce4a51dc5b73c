package cyclecast

import (
	"sort"
	"time"
)

// summaryRecentSamples bounds the average/median windows in Summarize to the
// most recent observations, matching the period estimate window.
const summaryRecentSamples = 6

// reliableTrendPoints is the completed-cycle count from which the trend
// series counts as reliable.
const reliableTrendPoints = 3

// CycleSummary is the descriptive-statistics companion to CyclePrediction:
// what a stats screen shows rather than what a forecast needs.
type CycleSummary struct {
	CycleCount          int       `json:"cycle_count"`
	AverageCycleLength  float64   `json:"average_cycle_length"`
	MedianCycleLength   int       `json:"median_cycle_length"`
	AveragePeriodLength float64   `json:"average_period_length"`
	ShortestCycle       int       `json:"shortest_cycle"`
	LongestCycle        int       `json:"longest_cycle"`
	LastPeriodStart     time.Time `json:"last_period_start"`
	TrendLengths        []int     `json:"trend_lengths"`
	HasTrendData        bool      `json:"has_trend_data"`
	HasReliableTrend    bool      `json:"has_reliable_trend"`
}

// Summarize computes descriptive statistics over the full filtered history.
// Averages and the median cover the most recent summaryRecentSamples gaps;
// shortest/longest and the trend series cover every usable gap.
func Summarize(records []CycleRecord) CycleSummary {
	return summarize(LocationCalendar{}, records)
}

func summarize(calendar Calendar, records []CycleRecord) CycleSummary {
	summary := CycleSummary{}
	if len(records) == 0 {
		return summary
	}

	sorted := sortedByStart(records)
	lengths := deriveCycleLengths(calendar, sorted)

	summary.CycleCount = len(lengths)
	summary.LastPeriodStart = calendar.StartOfDay(sorted[len(sorted)-1].Start)
	summary.TrendLengths = lengths
	summary.HasTrendData = len(lengths) > 0
	summary.HasReliableTrend = len(lengths) >= reliableTrendPoints

	recent := tailInts(lengths, summaryRecentSamples)
	if len(recent) > 0 {
		summary.AverageCycleLength = averageInts(recent)
		summary.MedianCycleLength = medianInt(recent)
	}

	if len(lengths) > 0 {
		shortest, longest := lengths[0], lengths[0]
		for _, length := range lengths[1:] {
			if length < shortest {
				shortest = length
			}
			if length > longest {
				longest = length
			}
		}
		summary.ShortestCycle = shortest
		summary.LongestCycle = longest
	}

	periodLengths := make([]int, 0, summaryRecentSamples)
	for i := len(sorted) - 1; i >= 0 && len(periodLengths) < summaryRecentSamples; i-- {
		record := sorted[i]
		if !record.HasEnded() {
			continue
		}
		duration := calendar.DayDifference(record.Start, record.End)
		if duration > 0 {
			periodLengths = append(periodLengths, duration)
		}
	}
	if len(periodLengths) > 0 {
		summary.AveragePeriodLength = averageInts(periodLengths)
	}

	return summary
}

// TrimTrailingTrendLengths keeps at most maxPoints of the newest trend
// values, for charts with a bounded horizontal axis.
func TrimTrailingTrendLengths(lengths []int, maxPoints int) []int {
	if maxPoints <= 0 || len(lengths) <= maxPoints {
		return lengths
	}
	return lengths[len(lengths)-maxPoints:]
}

func averageInts(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	var total int
	for _, value := range values {
		total += value
	}
	return float64(total) / float64(len(values))
}

func medianInt(values []int) int {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]int, 0, len(values))
	sorted = append(sorted, values...)
	sort.Ints(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}

	left := sorted[mid-1]
	right := sorted[mid]
	return int(float64(left+right)/2 + 0.5)
}
